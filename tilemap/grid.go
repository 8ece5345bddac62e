package tilemap

import (
	"errors"
	"fmt"
)

// Empty is the identifier stored in unpainted cells.
const Empty = 0

var (
	ErrInvalidSize = errors.New("grid dimensions must be >= 1")
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// Grid is a rows x cols array of tile identifiers. Every row always holds
// exactly cols entries and both dimensions are at least 1.
type Grid struct {
	rows  int
	cols  int
	cells [][]int
}

func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("tilemap: new %dx%d: %w", rows, cols, ErrInvalidSize)
	}
	return &Grid{rows: rows, cols: cols, cells: makeCells(rows, cols)}, nil
}

func makeCells(rows, cols int) [][]int {
	cells := make([][]int, rows)
	for y := range cells {
		cells[y] = make([]int, cols)
	}
	return cells
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the identifier stored at (row, col).
func (g *Grid) Get(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("tilemap: get (%d,%d) in %dx%d: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
	}
	return g.cells[row][col], nil
}

// Set writes id at (row, col). It reports whether the cell changed, which is
// the caller's cue to redraw that cell. Out-of-bounds positions, negative
// identifiers and writes of the value already present are no-ops.
func (g *Grid) Set(row, col, id int) bool {
	if id < 0 || !g.InBounds(row, col) {
		return false
	}
	if g.cells[row][col] == id {
		return false
	}
	g.cells[row][col] = id
	return true
}

// Resize replaces the grid with a zero-filled rows x cols array and copies the
// top-left aligned overlap of the old contents into it.
func (g *Grid) Resize(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("tilemap: resize %dx%d: %w", rows, cols, ErrInvalidSize)
	}
	next := makeCells(rows, cols)
	for y := 0; y < min(g.rows, rows); y++ {
		copy(next[y], g.cells[y][:min(g.cols, cols)])
	}
	g.rows, g.cols, g.cells = rows, cols, next
	return nil
}

// Fill sets every cell to id and reports whether anything changed.
func (g *Grid) Fill(id int) bool {
	if id < 0 {
		return false
	}
	changed := false
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != id {
				g.cells[y][x] = id
				changed = true
			}
		}
	}
	return changed
}

// Rows2D returns a deep copy of the cell contents in row-major order.
func (g *Grid) Rows2D() [][]int {
	out := make([][]int, g.rows)
	for y := range g.cells {
		out[y] = make([]int, g.cols)
		copy(out[y], g.cells[y])
	}
	return out
}
