package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gridpainter/painter"
	"github.com/milk9111/gridpainter/tilemap"
)

// Palette shows every catalog tile in a scrollable column of rows.
type Palette struct {
	X, Y, W, H int
	Scroll     float64

	mapper painter.Mapper
	tiles  *TileImages
	face   text.Face
}

func NewPalette(m painter.Mapper, tiles *TileImages, face text.Face) *Palette {
	return &Palette{mapper: m, tiles: tiles, face: face}
}

func (p *Palette) SetBounds(x, y, w, h int) {
	p.X, p.Y, p.W, p.H = x, y, w, h
	p.clamp()
}

func (p *Palette) ResetScroll() { p.Scroll = 0 }

func (p *Palette) contains(mx, my int) bool {
	return mx >= p.X && my >= p.Y && mx < p.X+p.W && my < p.Y+p.H
}

func (p *Palette) clamp() {
	p.Scroll = clampScroll(p.Scroll, p.mapper.PaletteHeight(p.tiles.Len()), p.H)
}

func (p *Palette) Update(mx, my int, s *painter.Session) {
	if !p.contains(mx, my) {
		return
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		p.Scroll -= wy * scrollStep
		p.clamp()
	}
	// Clicks right of the last column would alias into the next row.
	m := p.mapper
	if mx-p.X >= m.Pad+m.PaletteCols*(m.CellSize+m.Pad) {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.SelectAt(float64(mx-p.X), float64(my-p.Y)+p.Scroll)
	}
}

func (p *Palette) Draw(screen *ebiten.Image, s *painter.Session) {
	view, ok := screen.SubImage(image.Rect(p.X, p.Y, p.X+p.W, p.Y+p.H)).(*ebiten.Image)
	if !ok {
		return
	}
	fillRect(view, float64(p.X), float64(p.Y), float64(p.W), float64(p.H), paletteBackground)

	if !s.TilesetLoaded() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(p.X+8), float64(p.Y+8))
		op.ColorScale.ScaleWithColor(panelText)
		text.Draw(view, "No tileset loaded", p.face, op)
		return
	}

	size := p.mapper.CellSize
	for i := 0; i < p.tiles.Len(); i++ {
		tx, ty := p.mapper.PalettePosition(i)
		x := float64(p.X + tx)
		y := float64(p.Y+ty) - p.Scroll
		if y+float64(size) < float64(p.Y) || y > float64(p.Y+p.H) {
			continue
		}
		img, _ := p.tiles.Get(i)
		drawTile(view, img, x, y, size)
		if i == tilemap.Empty {
			p.drawAirLabel(view, x, y, size)
		}
		if i == s.Selected() {
			strokeRect(view, x-3, y-3, float64(size+6), float64(size+6), 3, selectionOutline)
		}
	}
}

func (p *Palette) drawAirLabel(dst *ebiten.Image, x, y float64, size int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+float64(size)/2, y+float64(size)/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(selectionOutline)
	text.Draw(dst, "AIR", p.face, op)
}
