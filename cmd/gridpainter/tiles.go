package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpainter/tileset"
)

var (
	canvasBackground  = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	paletteBackground = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	cellOutline       = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	selectionOutline  = color.RGBA{R: 0xff, A: 0xff}
)

// TileImages holds GPU copies of the catalog tiles, indexed by tile ID.
type TileImages struct {
	imgs []*ebiten.Image
}

// Set replaces the cached images with the tiles of cat.
func (t *TileImages) Set(cat *tileset.Catalog) {
	for _, img := range t.imgs {
		img.Deallocate()
	}
	t.imgs = t.imgs[:0]
	for _, tile := range cat.Tiles() {
		t.imgs = append(t.imgs, ebiten.NewImageFromImage(tile))
	}
}

func (t *TileImages) Len() int { return len(t.imgs) }

func (t *TileImages) Get(id int) (*ebiten.Image, bool) {
	if id < 0 || id >= len(t.imgs) {
		return nil, false
	}
	return t.imgs[id], true
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// fillRect draws a solid rectangle by scaling a single white pixel.
func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(whitePixel, op)
}

// strokeRect draws a rectangle outline of the given thickness inside the
// bounds x, y, w, h.
func strokeRect(dst *ebiten.Image, x, y, w, h, thickness float64, clr color.Color) {
	fillRect(dst, x, y, w, thickness, clr)
	fillRect(dst, x, y+h-thickness, w, thickness, clr)
	fillRect(dst, x, y+thickness, thickness, h-2*thickness, clr)
	fillRect(dst, x+w-thickness, y+thickness, thickness, h-2*thickness, clr)
}

// drawTile draws the image for id scaled to size at (x, y).
func drawTile(dst, img *ebiten.Image, x, y float64, size int) {
	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	if b.Dx() != size || b.Dy() != size {
		op.GeoM.Scale(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
	}
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}
