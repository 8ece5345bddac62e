package main

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gridpainter/painter"
)

const (
	scrollStep    = 40.0
	keyScrollStep = 8.0
)

// Canvas is the scrollable grid view on the left of the window. Screen
// positions are shifted by the scroll offset before they reach the session,
// so painting always lands on the cell under the pointer.
type Canvas struct {
	ScrollX float64
	ScrollY float64
	ViewW   int
	ViewH   int

	cellSize int
	tiles    *TileImages

	panning bool
	lastMX  int
	lastMY  int
}

func NewCanvas(cellSize int, tiles *TileImages) *Canvas {
	return &Canvas{cellSize: cellSize, tiles: tiles}
}

func (c *Canvas) SetViewport(w, h int) {
	c.ViewW, c.ViewH = w, h
}

func (c *Canvas) contains(mx, my int) bool {
	return mx >= 0 && my >= 0 && mx < c.ViewW && my < c.ViewH
}

// Update handles scrolling and painting for one frame.
func (c *Canvas) Update(mx, my int, s *painter.Session) {
	inside := c.contains(mx, my)

	if inside {
		if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
			if ebiten.IsKeyPressed(ebiten.KeyShift) {
				wx, wy = wy, 0
			}
			c.ScrollX -= wx * scrollStep
			c.ScrollY -= wy * scrollStep
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		c.ScrollX -= keyScrollStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		c.ScrollX += keyScrollStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		c.ScrollY -= keyScrollStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		c.ScrollY += keyScrollStep
	}

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		c.panning = true
		c.lastMX, c.lastMY = mx, my
	}
	if c.panning {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
			c.panning = false
		} else {
			c.ScrollX -= float64(mx - c.lastMX)
			c.ScrollY -= float64(my - c.lastMY)
			c.lastMX, c.lastMY = mx, my
		}
	}
	c.ClampScroll(s)

	if !inside {
		return
	}
	x := float64(mx) + c.ScrollX
	y := float64(my) + c.ScrollY
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.Paint(x, y, painter.ButtonPrimary)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		s.Paint(x, y, painter.ButtonSecondary)
	}
}

// ClampScroll keeps the scroll offset within the grid's extent.
func (c *Canvas) ClampScroll(s *painter.Session) {
	g := s.Grid()
	w, h := s.Mapper().GridSize(g.Rows(), g.Cols())
	c.ScrollX = clampScroll(c.ScrollX, w, c.ViewW)
	c.ScrollY = clampScroll(c.ScrollY, h, c.ViewH)
}

func clampScroll(v float64, content, view int) float64 {
	limit := float64(content - view)
	if limit < 0 {
		limit = 0
	}
	return math.Max(0, math.Min(v, limit))
}

// Draw renders the visible part of the grid.
func (c *Canvas) Draw(screen *ebiten.Image, s *painter.Session) {
	view, ok := screen.SubImage(image.Rect(0, 0, c.ViewW, c.ViewH)).(*ebiten.Image)
	if !ok {
		return
	}

	g := s.Grid()
	m := s.Mapper()
	policy := s.Policy()
	size := float64(c.cellSize)

	r0 := int(math.Floor(c.ScrollY / size))
	c0 := int(math.Floor(c.ScrollX / size))
	r1 := min(g.Rows(), int(math.Ceil((c.ScrollY+float64(c.ViewH))/size)))
	c1 := min(g.Cols(), int(math.Ceil((c.ScrollX+float64(c.ViewW))/size)))

	for r := max(r0, 0); r < r1; r++ {
		for col := max(c0, 0); col < c1; col++ {
			id, err := g.Get(r, col)
			if err != nil {
				continue
			}
			ox, oy := m.CellOrigin(r, col)
			x := float64(ox) - c.ScrollX
			y := float64(oy) - c.ScrollY

			app := policy.Appearance(id)
			if app.Image != nil {
				if img, ok := c.tiles.Get(id); ok {
					drawTile(view, img, x, y, c.cellSize)
					continue
				}
			}
			fillRect(view, x, y, size, size, app.Color)
			strokeRect(view, x, y, size, size, 1, cellOutline)
		}
	}
}
