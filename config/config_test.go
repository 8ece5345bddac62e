package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if cfg.CellSize != 40 {
		t.Fatalf("cell size = %d, want 40", cfg.CellSize)
	}
	if cfg.Palette.Columns != 3 || cfg.Palette.Padding != 5 {
		t.Fatalf("unexpected palette %+v", cfg.Palette)
	}
	if cfg.Grid.Rows != 8 || cfg.Grid.Cols != 14 || cfg.Grid.MaxDimension != 1000 {
		t.Fatalf("unexpected grid %+v", cfg.Grid)
	}
	if len(cfg.FallbackColors) != 11 {
		t.Fatalf("expected 11 fallback colors, got %d", len(cfg.FallbackColors))
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "painter.yaml")
	data := []byte("cell_size: 32\ngrid:\n  rows: 20\nfallback_colors:\n  11: \"#123456\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CellSize != 32 {
		t.Fatalf("cell size = %d, want 32", cfg.CellSize)
	}
	if cfg.Grid.Rows != 20 || cfg.Grid.Cols != 14 {
		t.Fatalf("grid override not merged: %+v", cfg.Grid)
	}
	if cfg.FallbackColors[11] != "#123456" || cfg.FallbackColors[1] != "#00ccff" {
		t.Fatalf("fallback colors not merged: %v", cfg.FallbackColors)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		content string
		invalid bool
	}{
		{"bad_yaml", "cell_size: [", false},
		{"zero_cell", "cell_size: 0", true},
		{"rows_over_max", "grid:\n  rows: 1001", true},
		{"zero_palette_columns", "palette:\n  columns: 0", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".yaml")
			if err := os.WriteFile(path, []byte(c.content), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if c.invalid && !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestColors(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	cfg.FallbackColors[12] = "not-a-color"
	colors, def := cfg.Colors()
	if def != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("default color = %v", def)
	}
	if colors[1] != (color.RGBA{0x00, 0xcc, 0xff, 0xff}) {
		t.Fatalf("color 1 = %v", colors[1])
	}
	if colors[12] != def {
		t.Fatalf("malformed entry should use the default color, got %v", colors[12])
	}
}

func TestParseColor(t *testing.T) {
	fallback := color.RGBA{1, 2, 3, 0xff}
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff9900", color.RGBA{0xff, 0x99, 0x00, 0xff}},
		{"#000000", color.RGBA{0, 0, 0, 0xff}},
		{"ff9900", fallback},
		{"#fff", fallback},
		{"#zzzzzz", fallback},
		{"gray", color.RGBA{0x80, 0x80, 0x80, 0xff}},
		{" Red ", color.RGBA{0xff, 0, 0, 0xff}},
		{"notacolor", fallback},
	}
	for _, c := range cases {
		if got := ParseColor(c.in, fallback); got != c.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestColorsByName(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	cfg.DefaultColor = "navy"
	cfg.FallbackColors[3] = "Teal"
	cfg.FallbackColors[12] = "not-a-color"
	colors, def := cfg.Colors()
	if def != (color.RGBA{0x00, 0x00, 0x80, 0xff}) {
		t.Fatalf("default color = %v, want navy", def)
	}
	if colors[3] != (color.RGBA{0x00, 0x80, 0x80, 0xff}) {
		t.Fatalf("color 3 = %v, want teal", colors[3])
	}
	if colors[12] != def {
		t.Fatalf("unknown name should use the default color, got %v", colors[12])
	}
}
