package tileset

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

var (
	ErrInvalidLayout = errors.New("tileset rows, columns and cell size must be positive")
	ErrNilImage      = errors.New("tileset image is nil")
)

// Source records where a catalog came from so it can be reloaded.
type Source struct {
	Path string
	Rows int
	Cols int
}

// Catalog is an ordered list of cell-sized tile images. Index 0 is always the
// synthesized empty placeholder; indices 1..Len()-1 are slices of the source
// image in row-major order. A nil *Catalog is a valid, unloaded catalog.
type Catalog struct {
	Source   Source
	cellSize int
	tiles    []*image.RGBA
}

// Load slices src into tileRows x tileCols tiles and scales each one to
// cellSize x cellSize with nearest-neighbor sampling.
//
// Tile boundaries are computed with floating-point division and rounded to
// the nearest source pixel, ties to even, so a source whose size is not a
// multiple of the layout still loads with slightly uneven tiles.
func Load(src image.Image, tileRows, tileCols, cellSize int) (*Catalog, error) {
	if src == nil {
		return nil, fmt.Errorf("tileset: load: %w", ErrNilImage)
	}
	if tileRows <= 0 || tileCols <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("tileset: load %dx%d @%d: %w", tileRows, tileCols, cellSize, ErrInvalidLayout)
	}

	b := src.Bounds()
	tileW := float64(b.Dx()) / float64(tileCols)
	tileH := float64(b.Dy()) / float64(tileRows)

	tiles := make([]*image.RGBA, 0, tileRows*tileCols+1)
	tiles = append(tiles, Placeholder(cellSize))
	for r := 0; r < tileRows; r++ {
		for c := 0; c < tileCols; c++ {
			left := float64(c) * tileW
			top := float64(r) * tileH
			rect := sliceRect(b, left, top, left+tileW, top+tileH)

			dst := image.NewRGBA(image.Rect(0, 0, cellSize, cellSize))
			draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, rect, draw.Src, nil)
			tiles = append(tiles, dst)
		}
	}

	return &Catalog{
		Source:   Source{Rows: tileRows, Cols: tileCols},
		cellSize: cellSize,
		tiles:    tiles,
	}, nil
}

// sliceRect rounds a fractional crop box to source pixels, keeping at least
// one pixel in each direction and staying inside bounds.
func sliceRect(bounds image.Rectangle, left, top, right, bottom float64) image.Rectangle {
	x0 := bounds.Min.X + int(math.RoundToEven(left))
	y0 := bounds.Min.Y + int(math.RoundToEven(top))
	x1 := bounds.Min.X + int(math.RoundToEven(right))
	y1 := bounds.Min.Y + int(math.RoundToEven(bottom))
	x0 = min(x0, bounds.Max.X-1)
	y0 = min(y0, bounds.Max.Y-1)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return image.Rect(x0, y0, x1, y1).Intersect(bounds)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tiles)
}

func (c *Catalog) Loaded() bool { return c.Len() > 0 }

func (c *Catalog) CellSize() int {
	if c == nil {
		return 0
	}
	return c.cellSize
}

// Tile returns the image for identifier i.
func (c *Catalog) Tile(i int) (*image.RGBA, bool) {
	if i < 0 || i >= c.Len() {
		return nil, false
	}
	return c.tiles[i], true
}

// Tiles returns the catalog images in identifier order.
func (c *Catalog) Tiles() []*image.RGBA {
	if c == nil {
		return nil
	}
	return c.tiles
}
