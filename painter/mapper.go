package painter

import "math"

// Mapper converts scroll-corrected pixel positions into grid cells and
// palette indices, and back.
type Mapper struct {
	CellSize    int
	Pad         int
	PaletteCols int
}

// Cell maps a canvas position to the (row, col) it falls in. The result may
// lie outside the grid; callers check it with Grid.InBounds.
func (m Mapper) Cell(x, y float64) (row, col int) {
	cs := float64(m.CellSize)
	return int(math.Floor(y / cs)), int(math.Floor(x / cs))
}

// CellOrigin is the top-left pixel of a grid cell.
func (m Mapper) CellOrigin(row, col int) (x, y int) {
	return col * m.CellSize, row * m.CellSize
}

// PaletteIndex maps a palette position to a tile index. The index may be
// negative or past the end of the catalog.
func (m Mapper) PaletteIndex(x, y float64) int {
	stride := float64(m.CellSize + m.Pad)
	pad := float64(m.Pad)
	col := int(math.Floor((x - pad) / stride))
	row := int(math.Floor((y - pad) / stride))
	return row*m.PaletteCols + col
}

// PalettePosition is the top-left pixel of tile i in the palette, which wraps
// every PaletteCols tiles.
func (m Mapper) PalettePosition(i int) (x, y int) {
	stride := m.CellSize + m.Pad
	return m.Pad + (i%m.PaletteCols)*stride, m.Pad + (i/m.PaletteCols)*stride
}

// PaletteHeight is the scrollable height needed to show n tiles, with some
// room below the last row so it is never cut off.
func (m Mapper) PaletteHeight(n int) int {
	rows := (n + m.PaletteCols - 1) / m.PaletteCols
	return m.Pad + rows*(m.CellSize+m.Pad) + m.CellSize + 20
}

// GridSize is the pixel size of a rows x cols grid.
func (m Mapper) GridSize(rows, cols int) (w, h int) {
	return cols * m.CellSize, rows * m.CellSize
}
