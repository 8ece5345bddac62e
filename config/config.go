package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("invalid config")

type Config struct {
	CellSize       int            `yaml:"cell_size"`
	Grid           GridSpec       `yaml:"grid"`
	Palette        PaletteSpec    `yaml:"palette"`
	Window         WindowSpec     `yaml:"window"`
	Export         ExportSpec     `yaml:"export"`
	FallbackColors map[int]string `yaml:"fallback_colors"`
	DefaultColor   string         `yaml:"default_color"`
}

type GridSpec struct {
	Rows         int `yaml:"rows"`
	Cols         int `yaml:"cols"`
	MaxDimension int `yaml:"max_dimension"`
}

type PaletteSpec struct {
	Columns int `yaml:"columns"`
	Padding int `yaml:"padding"`
	Width   int `yaml:"width"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ExportSpec struct {
	Format string `yaml:"format"`
	Script string `yaml:"script"`
}

// Default returns the embedded configuration.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal default.yaml: %w", err)
	}
	return cfg, nil
}

// Load reads the embedded defaults and, if path is set, overlays the fields
// present in that file.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("config: cell_size %d: %w", c.CellSize, ErrInvalid)
	case c.Palette.Columns <= 0:
		return fmt.Errorf("config: palette.columns %d: %w", c.Palette.Columns, ErrInvalid)
	case c.Palette.Padding < 0:
		return fmt.Errorf("config: palette.padding %d: %w", c.Palette.Padding, ErrInvalid)
	case c.Grid.MaxDimension < 1:
		return fmt.Errorf("config: grid.max_dimension %d: %w", c.Grid.MaxDimension, ErrInvalid)
	case c.Grid.Rows < 1 || c.Grid.Rows > c.Grid.MaxDimension:
		return fmt.Errorf("config: grid.rows %d: %w", c.Grid.Rows, ErrInvalid)
	case c.Grid.Cols < 1 || c.Grid.Cols > c.Grid.MaxDimension:
		return fmt.Errorf("config: grid.cols %d: %w", c.Grid.Cols, ErrInvalid)
	}
	return nil
}

// Colors resolves the fallback table into RGBA values. Entries that fail to
// parse use the default color.
func (c Config) Colors() (map[int]color.RGBA, color.RGBA) {
	def := ParseColor(c.DefaultColor, color.RGBA{0xff, 0xff, 0xff, 0xff})
	out := make(map[int]color.RGBA, len(c.FallbackColors))
	for id, v := range c.FallbackColors {
		out[id] = ParseColor(v, def)
	}
	return out, def
}

// ParseColor parses a color given as #rrggbb or an SVG color name such as
// "gray", returning fallback if it is neither.
func ParseColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimSpace(s)
	if len(s) == 7 && s[0] == '#' {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
			return fallback
		}
		return color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c
	}
	return fallback
}
