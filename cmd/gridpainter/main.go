package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpainter/config"
	"github.com/milk9111/gridpainter/painter"
	"github.com/milk9111/gridpainter/tilemap"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML file overriding the built-in editor settings")
	rows := flag.Int("rows", 0, "Initial grid rows (overrides config)")
	cols := flag.Int("cols", 0, "Initial grid columns (overrides config)")
	tilesetPath := flag.String("tileset", "", "Tileset image to load on start")
	tilesetRows := flag.Int("tileset-rows", 1, "Tile rows in -tileset")
	tilesetCols := flag.Int("tileset-cols", 1, "Tile columns in -tileset")
	format := flag.String("format", "", "Export format: c, json or script (overrides config)")
	scriptPath := flag.String("script", "", "Tengo script used by the script export format")
	watch := flag.Bool("watch", true, "Reload the tileset when its file changes on disk")
	flag.Parse()

	log.Println("Grid painter starting...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *rows > 0 {
		cfg.Grid.Rows = *rows
	}
	if *cols > 0 {
		cfg.Grid.Cols = *cols
	}
	if *format != "" {
		cfg.Export.Format = *format
	}
	if *scriptPath != "" {
		cfg.Export.Script = *scriptPath
	}

	var script []byte
	if cfg.Export.Script != "" {
		script, err = os.ReadFile(cfg.Export.Script)
		if err != nil {
			log.Fatalf("Failed to read export script: %v", err)
		}
	}
	formatter, err := tilemap.FormatterFor(cfg.Export.Format, cfg.Export.Script, script)
	if err != nil {
		log.Fatalf("Failed to set up export: %v", err)
	}

	session, err := painter.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	editor := NewEditor(cfg, session, formatter, *watch)
	if *tilesetPath != "" {
		editor.loadTileset(*tilesetPath, *tilesetRows, *tilesetCols)
	}
	defer editor.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
