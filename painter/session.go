package painter

import (
	"errors"
	"fmt"

	"github.com/milk9111/gridpainter/config"
	"github.com/milk9111/gridpainter/tilemap"
	"github.com/milk9111/gridpainter/tileset"
)

// DefaultSelection is the first real tile; 0 is reserved for empty.
const DefaultSelection = 1

var ErrEmptyCatalog = errors.New("catalog has no tiles")

// Button identifies which pointer button produced a paint event.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Dirty names a single grid cell that needs redrawing.
type Dirty struct {
	Row int
	Col int
}

// Session owns all editor state: the grid being authored, the loaded
// tileset, and the current selection. Every operation runs on the caller's
// goroutine and reports what changed instead of redrawing anything.
type Session struct {
	grid     *tilemap.Grid
	catalog  *tileset.Catalog
	selected int
	mapper   Mapper
	maxDim   int
	fallback ColorFallback
}

func NewSession(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := tilemap.New(cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return nil, err
	}
	colors, def := cfg.Colors()
	return &Session{
		grid:     grid,
		selected: DefaultSelection,
		mapper: Mapper{
			CellSize:    cfg.CellSize,
			Pad:         cfg.Palette.Padding,
			PaletteCols: cfg.Palette.Columns,
		},
		maxDim:   cfg.Grid.MaxDimension,
		fallback: ColorFallback{Colors: colors, Default: def},
	}, nil
}

func (s *Session) Grid() *tilemap.Grid { return s.grid }
func (s *Session) Catalog() *tileset.Catalog { return s.catalog }
func (s *Session) Mapper() Mapper { return s.mapper }
func (s *Session) Selected() int { return s.selected }
func (s *Session) MaxDimension() int { return s.maxDim }
func (s *Session) TilesetLoaded() bool { return s.catalog.Loaded() }
func (s *Session) Fallback() ColorFallback { return s.fallback }
func (s *Session) CellSize() int { return s.mapper.CellSize }
func (s *Session) TilesetSource() tileset.Source {
	if s.catalog == nil {
		return tileset.Source{}
	}
	return s.catalog.Source
}

// Paint applies a pointer event at a scroll-corrected canvas position. The
// primary button writes the selection, the secondary button erases. It
// returns the cell to redraw and whether the grid changed; positions off the
// grid are ignored.
func (s *Session) Paint(x, y float64, button Button) (Dirty, bool) {
	row, col := s.mapper.Cell(x, y)
	if !s.PaintCell(row, col, button) {
		return Dirty{}, false
	}
	return Dirty{Row: row, Col: col}, true
}

func (s *Session) PaintCell(row, col int, button Button) bool {
	id := s.selected
	if button == ButtonSecondary {
		id = tilemap.Empty
	}
	return s.grid.Set(row, col, id)
}

// SelectAt picks the palette tile under a scroll-corrected palette
// position. It reports whether the palette needs redrawing and does nothing
// while no tileset is loaded.
func (s *Session) SelectAt(x, y float64) bool {
	if !s.catalog.Loaded() {
		return false
	}
	idx := s.mapper.PaletteIndex(x, y)
	if idx < 0 || idx >= s.catalog.Len() {
		return false
	}
	s.selected = idx
	return true
}

// Select sets the selection directly. With a tileset loaded the id must be
// a catalog index; otherwise any non-negative id is accepted.
func (s *Session) Select(id int) bool {
	if id < 0 {
		return false
	}
	if s.catalog.Loaded() && id >= s.catalog.Len() {
		return false
	}
	s.selected = id
	return true
}

// CycleSelection moves the selection by delta, wrapping within the catalog.
func (s *Session) CycleSelection(delta int) bool {
	n := s.catalog.Len()
	if n == 0 {
		return s.Select(s.selected + delta)
	}
	next := ((s.selected+delta)%n + n) % n
	return s.Select(next)
}

// LoadTileset installs a freshly loaded catalog, replacing the previous one,
// and resets the selection to the first real tile.
func (s *Session) LoadTileset(cat *tileset.Catalog) error {
	if !cat.Loaded() {
		return fmt.Errorf("painter: load tileset: %w", ErrEmptyCatalog)
	}
	s.catalog = cat
	s.selected = DefaultSelection
	if s.selected >= cat.Len() {
		s.selected = tilemap.Empty
	}
	return nil
}

// Resize changes the grid dimensions, keeping the overlapping cells. The
// grid is untouched when either dimension is outside [1, MaxDimension].
func (s *Session) Resize(rows, cols int) error {
	if rows < 1 || cols < 1 || rows > s.maxDim || cols > s.maxDim {
		return fmt.Errorf("painter: resize %dx%d: %w", rows, cols, ErrOutOfRange)
	}
	return s.grid.Resize(rows, cols)
}

// Clear erases every cell.
func (s *Session) Clear() bool {
	return s.grid.Fill(tilemap.Empty)
}

func (s *Session) Export(f tilemap.Formatter) (string, error) {
	if f == nil {
		f = tilemap.CFormatter{}
	}
	return f.Format(s.grid)
}

// Policy returns the render policy for the current frame.
func (s *Session) Policy() RenderPolicy {
	if s.catalog.Loaded() {
		return ImageBacked{Catalog: s.catalog, Fallback: s.fallback}
	}
	return s.fallback
}

// SelectionLabel describes the selection for the side panel.
func (s *Session) SelectionLabel() string {
	if !s.catalog.Loaded() {
		return fmt.Sprintf("Selected ID: %d", s.selected)
	}
	name := fmt.Sprintf("Tile %d", s.selected)
	if s.selected == tilemap.Empty {
		name = "Air/Empty"
	}
	return fmt.Sprintf("Selected ID: %d (%s)", s.selected, name)
}
