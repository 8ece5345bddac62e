package painter

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/gridpainter/config"
	"github.com/milk9111/gridpainter/tilemap"
	"github.com/milk9111/gridpainter/tileset"
)

func newTestSession(t *testing.T, rows, cols int) *Session {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default: %v", err)
	}
	cfg.Grid.Rows = rows
	cfg.Grid.Cols = cols
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func testCatalog(t *testing.T, rows, cols int) *tileset.Catalog {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16*cols, 16*rows))
	cat, err := tileset.Load(img, rows, cols, 40)
	if err != nil {
		t.Fatalf("tileset.Load: %v", err)
	}
	return cat
}

func cell(t *testing.T, s *Session, r, c int) int {
	t.Helper()
	v, err := s.Grid().Get(r, c)
	if err != nil {
		t.Fatalf("Get(%d,%d): %v", r, c, err)
	}
	return v
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession(t, 8, 14)
	if s.Selected() != 1 {
		t.Fatalf("initial selection = %d, want 1", s.Selected())
	}
	if s.TilesetLoaded() {
		t.Fatalf("no tileset should be loaded initially")
	}
	if s.Grid().Rows() != 8 || s.Grid().Cols() != 14 {
		t.Fatalf("unexpected grid %dx%d", s.Grid().Rows(), s.Grid().Cols())
	}
}

func TestPaint(t *testing.T) {
	s := newTestSession(t, 3, 4)
	s.Select(2)

	d, changed := s.Paint(85, 45, ButtonPrimary)
	if !changed || d != (Dirty{Row: 1, Col: 2}) {
		t.Fatalf("expected change at (1,2), got %+v %v", d, changed)
	}
	if cell(t, s, 1, 2) != 2 {
		t.Fatalf("cell not painted")
	}

	if _, changed := s.Paint(85, 45, ButtonPrimary); changed {
		t.Fatalf("painting the same id twice should not report a change")
	}
	if cell(t, s, 1, 2) != 2 {
		t.Fatalf("second paint altered the cell")
	}

	d, changed = s.Paint(85, 45, ButtonSecondary)
	if !changed || d != (Dirty{Row: 1, Col: 2}) {
		t.Fatalf("erase should report a change at (1,2), got %+v %v", d, changed)
	}
	if cell(t, s, 1, 2) != 0 {
		t.Fatalf("erase left %d", cell(t, s, 1, 2))
	}
	if _, changed := s.Paint(85, 45, ButtonSecondary); changed {
		t.Fatalf("erasing an empty cell should not report a change")
	}
}

func TestEraseIgnoresSelection(t *testing.T) {
	s := newTestSession(t, 1, 1)
	s.Select(5)
	s.Paint(0, 0, ButtonPrimary)
	s.Select(0)
	s.Select(9)
	s.Paint(0, 0, ButtonSecondary)
	if cell(t, s, 0, 0) != 0 {
		t.Fatalf("secondary button must write 0")
	}
}

func TestPaintOutOfBounds(t *testing.T) {
	s := newTestSession(t, 2, 3)
	positions := [][2]float64{
		{-1, 0}, {0, -0.1}, {120, 0}, {0, 80}, {119.9, 80}, {500, 500},
	}
	for _, p := range positions {
		for _, b := range []Button{ButtonPrimary, ButtonSecondary} {
			if _, changed := s.Paint(p[0], p[1], b); changed {
				t.Fatalf("paint at %v should be ignored", p)
			}
		}
	}
	for r, row := range s.Grid().Rows2D() {
		for c, v := range row {
			if v != 0 {
				t.Fatalf("cell (%d,%d) mutated to %d", r, c, v)
			}
		}
	}
	if _, changed := s.Paint(119.9, 79.9, ButtonPrimary); !changed {
		t.Fatalf("last in-bounds pixel should paint")
	}
}

func TestSelectAtWithoutCatalog(t *testing.T) {
	s := newTestSession(t, 2, 2)
	if s.SelectAt(50, 5) {
		t.Fatalf("palette selection without a tileset must be a no-op")
	}
	if s.Selected() != 1 {
		t.Fatalf("selection changed to %d", s.Selected())
	}
}

func TestSelectAt(t *testing.T) {
	s := newTestSession(t, 2, 2)
	if err := s.LoadTileset(testCatalog(t, 2, 2)); err != nil {
		t.Fatalf("LoadTileset: %v", err)
	}
	m := s.Mapper()

	x, y := m.PalettePosition(4)
	if !s.SelectAt(float64(x)+1, float64(y)+1) {
		t.Fatalf("selecting tile 4 failed")
	}
	if s.Selected() != 4 {
		t.Fatalf("selected %d, want 4", s.Selected())
	}

	x, y = m.PalettePosition(0)
	if !s.SelectAt(float64(x), float64(y)) || s.Selected() != 0 {
		t.Fatalf("air tile should be selectable, got %d", s.Selected())
	}

	x, y = m.PalettePosition(5)
	if s.SelectAt(float64(x), float64(y)) {
		t.Fatalf("index past the catalog should be ignored")
	}
	if s.SelectAt(1, 1) {
		t.Fatalf("negative index should be ignored")
	}
	if s.Selected() != 0 {
		t.Fatalf("ignored clicks changed the selection to %d", s.Selected())
	}
}

func TestLoadTilesetResetsSelection(t *testing.T) {
	s := newTestSession(t, 2, 2)
	s.Select(7)

	cat := testCatalog(t, 2, 2)
	if err := s.LoadTileset(cat); err != nil {
		t.Fatalf("LoadTileset: %v", err)
	}
	if s.Catalog().Len() != 5 {
		t.Fatalf("catalog size = %d, want 5", s.Catalog().Len())
	}
	if s.Selected() != 1 {
		t.Fatalf("selection = %d, want 1", s.Selected())
	}

	s.Select(4)
	if err := s.LoadTileset(testCatalog(t, 1, 3)); err != nil {
		t.Fatalf("LoadTileset: %v", err)
	}
	if s.Selected() != 1 || s.Catalog().Len() != 4 {
		t.Fatalf("reload: selection %d, size %d", s.Selected(), s.Catalog().Len())
	}
}

func TestLoadTilesetRejectsEmptyCatalog(t *testing.T) {
	s := newTestSession(t, 2, 2)
	prev := testCatalog(t, 1, 2)
	if err := s.LoadTileset(prev); err != nil {
		t.Fatalf("LoadTileset: %v", err)
	}
	s.Select(2)
	if err := s.LoadTileset(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
	if s.Catalog() != prev || s.Selected() != 2 {
		t.Fatalf("failed load changed session state")
	}
}

func TestSelectConstrainedByCatalog(t *testing.T) {
	s := newTestSession(t, 1, 1)
	if !s.Select(42) {
		t.Fatalf("without a catalog any non-negative id is allowed")
	}
	if s.Select(-1) {
		t.Fatalf("negative ids are never allowed")
	}
	if err := s.LoadTileset(testCatalog(t, 1, 2)); err != nil {
		t.Fatalf("LoadTileset: %v", err)
	}
	if s.Select(3) {
		t.Fatalf("id past the catalog should be rejected")
	}
	if !s.Select(2) || s.Selected() != 2 {
		t.Fatalf("valid id rejected")
	}
}

func TestCycleSelection(t *testing.T) {
	s := newTestSession(t, 1, 1)
	if err := s.LoadTileset(testCatalog(t, 1, 2)); err != nil {
		t.Fatalf("LoadTileset: %v", err)
	}
	s.CycleSelection(1)
	if s.Selected() != 2 {
		t.Fatalf("expected 2, got %d", s.Selected())
	}
	s.CycleSelection(1)
	if s.Selected() != 0 {
		t.Fatalf("expected wrap to 0, got %d", s.Selected())
	}
	s.CycleSelection(-1)
	if s.Selected() != 2 {
		t.Fatalf("expected wrap back to 2, got %d", s.Selected())
	}
}

func TestSessionResize(t *testing.T) {
	s := newTestSession(t, 2, 2)
	s.Paint(45, 45, ButtonPrimary)

	for _, dims := range [][2]int{{0, 5}, {5, 0}, {1001, 1}, {1, 1001}} {
		if err := s.Resize(dims[0], dims[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Resize(%v) expected ErrOutOfRange, got %v", dims, err)
		}
	}
	if s.Grid().Rows() != 2 || s.Grid().Cols() != 2 || cell(t, s, 1, 1) != 1 {
		t.Fatalf("rejected resize changed the grid")
	}

	if err := s.Resize(1000, 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if cell(t, s, 1, 1) != 1 || cell(t, s, 999, 2) != 0 {
		t.Fatalf("resize lost the overlap")
	}
}

func TestSessionExport(t *testing.T) {
	s := newTestSession(t, 2, 3)
	values := [][]int{{0, 1, 2}, {3, 0, 1}}
	for r, row := range values {
		for c, v := range row {
			s.Select(v)
			s.PaintCell(r, c, ButtonPrimary)
		}
	}
	got, err := s.Export(nil)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	want := "{\n    0, 1, 2,\n    3, 0, 1,\n};"
	if got != want {
		t.Fatalf("export mismatch:\n got: %q\nwant: %q", got, want)
	}
	if _, err := s.Export(tilemap.JSONFormatter{}); err != nil {
		t.Fatalf("json export: %v", err)
	}
}

func TestClear(t *testing.T) {
	s := newTestSession(t, 2, 2)
	if s.Clear() {
		t.Fatalf("clearing an empty grid should not report a change")
	}
	s.Paint(0, 0, ButtonPrimary)
	if !s.Clear() || cell(t, s, 0, 0) != 0 {
		t.Fatalf("Clear did not erase the grid")
	}
}

func TestPolicy(t *testing.T) {
	s := newTestSession(t, 1, 1)

	fallback, ok := s.Policy().(ColorFallback)
	if !ok {
		t.Fatalf("expected ColorFallback without a tileset, got %T", s.Policy())
	}
	if got := fallback.Appearance(1).Color; got != (color.RGBA{0x00, 0xcc, 0xff, 0xff}) {
		t.Fatalf("color for 1 = %v", got)
	}
	if got := fallback.Appearance(99).Color; got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("unknown ids should use the neutral color, got %v", got)
	}

	if err := s.LoadTileset(testCatalog(t, 1, 2)); err != nil {
		t.Fatalf("LoadTileset: %v", err)
	}
	backed, ok := s.Policy().(ImageBacked)
	if !ok {
		t.Fatalf("expected ImageBacked with a tileset, got %T", s.Policy())
	}
	if backed.Appearance(0).Image == nil || backed.Appearance(2).Image == nil {
		t.Fatalf("catalog ids should render as images")
	}
	if a := backed.Appearance(3); a.Image != nil || a.Color != (color.RGBA{0xff, 0x99, 0x00, 0xff}) {
		t.Fatalf("ids past the catalog should fall back to colors, got %+v", a)
	}
}

func TestSelectionLabel(t *testing.T) {
	s := newTestSession(t, 1, 1)
	if got := s.SelectionLabel(); got != "Selected ID: 1" {
		t.Fatalf("label = %q", got)
	}
	if err := s.LoadTileset(testCatalog(t, 1, 2)); err != nil {
		t.Fatalf("LoadTileset: %v", err)
	}
	if got := s.SelectionLabel(); got != "Selected ID: 1 (Tile 1)" {
		t.Fatalf("label = %q", got)
	}
	s.Select(0)
	if got := s.SelectionLabel(); got != "Selected ID: 0 (Air/Empty)" {
		t.Fatalf("label = %q", got)
	}
}
