package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gridpainter/config"
	"github.com/milk9111/gridpainter/painter"
	"github.com/milk9111/gridpainter/tilemap"
	"github.com/milk9111/gridpainter/tileset"
)

// paletteTop is where the palette starts below the control buttons.
const paletteTop = 250

var (
	errDialogCanceled    = errors.New("file dialog canceled")
	errDialogUnavailable = errors.New("native file dialog unavailable; build with -tags dialog to enable")
)

// Editor is the Ebiten game hosting the grid canvas, the control panel and
// the tileset palette. All state lives in the painter session; the editor
// only turns input into session calls and draws the result.
type Editor struct {
	cfg       config.Config
	session   *painter.Session
	formatter tilemap.Formatter

	watchEnabled bool
	watcher      *tileset.Watcher

	ui      *ebitenui.UI
	panel   *ControlPanel
	prompt  *Prompt
	tiles   *TileImages
	canvas  *Canvas
	palette *Palette

	screenW int
	screenH int
	status  string
}

func NewEditor(cfg config.Config, session *painter.Session, formatter tilemap.Formatter, watch bool) *Editor {
	face := loadFace(14)
	e := &Editor{
		cfg:          cfg,
		session:      session,
		formatter:    formatter,
		watchEnabled: watch,
		prompt:       NewPrompt(),
		tiles:        &TileImages{},
		screenW:      cfg.Window.Width,
		screenH:      cfg.Window.Height,
		status:       "Left-click: paint   Right-click: erase   [ ]: cycle tile   Wheel/arrows: scroll",
	}
	e.canvas = NewCanvas(session.CellSize(), e.tiles)
	e.palette = NewPalette(session.Mapper(), e.tiles, loadFace(10))
	e.ui, e.panel = BuildEditorUI(&face, cfg.Palette.Width, paletteTop, PanelActions{
		LoadTileset: e.promptTileset,
		Resize:      e.promptResize,
		Export:      e.export,
		Clear:       e.clear,
	})
	e.layout()
	return e
}

func (e *Editor) Update() error {
	e.pollWatcher()

	if e.prompt.Update() {
		return nil
	}

	e.ui.Update()

	mx, my := ebiten.CursorPosition()
	e.canvas.Update(mx, my, e.session)
	e.palette.Update(mx, my, e.session)

	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		e.session.CycleSelection(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		e.session.CycleSelection(-1)
	}

	e.panel.SetSelection(e.session.SelectionLabel())
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(canvasBackground)
	e.canvas.Draw(screen, e.session)
	e.palette.Draw(screen, e.session)
	e.ui.Draw(screen)

	g := e.session.Grid()
	info := fmt.Sprintf("%s\nGrid %dx%d", e.status, g.Rows(), g.Cols())
	ebitenutil.DebugPrintAt(screen, info, 8, e.screenH-16*(strings.Count(info, "\n")+1)-4)

	e.prompt.Draw(screen)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.screenW || outsideHeight != e.screenH {
		e.screenW, e.screenH = outsideWidth, outsideHeight
		e.layout()
	}
	return outsideWidth, outsideHeight
}

func (e *Editor) layout() {
	panelW := e.cfg.Palette.Width
	e.canvas.SetViewport(max(e.screenW-panelW, 1), e.screenH)
	e.palette.SetBounds(e.screenW-panelW, paletteTop, panelW, max(e.screenH-paletteTop, 1))
}

func (e *Editor) setStatus(format string, args ...any) {
	e.status = fmt.Sprintf(format, args...)
}

// promptTileset asks for a tileset image and its layout, then loads it.
func (e *Editor) promptTileset() {
	path, err := openTilesetDialog()
	switch {
	case errors.Is(err, errDialogCanceled):
		return
	case err != nil:
		e.prompt.Open("Tileset image path:", e.session.TilesetSource().Path, e.promptTilesetLayout)
	default:
		e.promptTilesetLayout(path)
	}
}

func (e *Editor) promptTilesetLayout(path string) {
	if path == "" {
		return
	}
	if !tileset.IsImageFile(path) {
		e.setStatus("Failed to load tileset: %s is not a supported image", filepath.Base(path))
		return
	}
	e.prompt.Open("How many ROWS in this tileset?", "1", func(rowsText string) {
		if strings.TrimSpace(rowsText) == "" {
			e.setStatus("Tileset load canceled")
			return
		}
		e.prompt.Open("How many COLUMNS in this tileset?", "1", func(colsText string) {
			rows, cols, err := painter.ParseTilesetLayout(rowsText, colsText)
			if err != nil {
				if errors.Is(err, painter.ErrCanceled) {
					e.setStatus("Tileset load canceled")
					return
				}
				e.setStatus("Failed to load tileset: %v", err)
				return
			}
			e.loadTileset(path, rows, cols)
		})
	})
}

// loadTileset slices the image at path into the session catalog. On failure
// the previous tileset stays in place.
func (e *Editor) loadTileset(path string, rows, cols int) {
	cat, err := tileset.LoadFile(path, rows, cols, e.session.CellSize())
	if err != nil {
		log.Printf("Failed to load tileset: %v", err)
		e.setStatus("Failed to load tileset: %v", err)
		return
	}
	if err := e.session.LoadTileset(cat); err != nil {
		log.Printf("Failed to load tileset: %v", err)
		e.setStatus("Failed to load tileset: %v", err)
		return
	}
	e.tiles.Set(cat)
	e.palette.ResetScroll()
	e.watch(path)
	log.Printf("Tileset loaded: %s (%dx%d, %d tiles)", filepath.Base(path), rows, cols, cat.Len()-1)
	e.setStatus("Loaded %s: %d tiles", filepath.Base(path), cat.Len()-1)
}

func (e *Editor) promptResize() {
	g := e.session.Grid()
	e.prompt.Open("Number of rows:", strconv.Itoa(g.Rows()), func(rowsText string) {
		if strings.TrimSpace(rowsText) == "" {
			return
		}
		e.prompt.Open("Number of columns:", strconv.Itoa(g.Cols()), func(colsText string) {
			rows, cols, err := painter.ParseResize(rowsText, colsText, e.session.MaxDimension())
			if err != nil {
				if !errors.Is(err, painter.ErrCanceled) {
					e.setStatus("Resize ignored: %v", err)
				}
				return
			}
			if err := e.session.Resize(rows, cols); err != nil {
				e.setStatus("Resize ignored: %v", err)
				return
			}
			e.canvas.ClampScroll(e.session)
			e.setStatus("Grid resized to %dx%d", rows, cols)
		})
	})
}

func (e *Editor) export() {
	f := e.formatter
	if sf, ok := f.(tilemap.ScriptFormatter); ok {
		sf.Globals = map[string]any{"tileset": e.session.TilesetSource().Path}
		f = sf
	}
	out, err := e.session.Export(f)
	if err != nil {
		log.Printf("Export failed: %v", err)
		e.setStatus("Export failed: %v", err)
		return
	}
	if err := copyToClipboard(out); err != nil {
		log.Printf("Clipboard unavailable, writing export to stdout: %v", err)
		fmt.Println(out)
		e.setStatus("Clipboard unavailable; export written to stdout")
		return
	}
	log.Println("Map array copied to clipboard")
	e.setStatus("%s", tilemap.ExportNotice)
}

func (e *Editor) clear() {
	if e.session.Clear() {
		e.setStatus("Grid cleared")
	}
}

// watch starts following path for changes, replacing any previous watcher.
func (e *Editor) watch(path string) {
	if !e.watchEnabled {
		return
	}
	if e.watcher != nil {
		abs, err := filepath.Abs(path)
		if err == nil && abs == e.watcher.Target() {
			return
		}
		_ = e.watcher.Close()
		e.watcher = nil
	}
	w, err := tileset.NewWatcher(path)
	if err != nil {
		log.Printf("Failed to watch tileset: %v", err)
		return
	}
	e.watcher = w
}

func (e *Editor) pollWatcher() {
	if e.watcher == nil {
		return
	}
	select {
	case path := <-e.watcher.Events:
		src := e.session.TilesetSource()
		prev := e.session.Selected()
		log.Printf("Tileset changed on disk, reloading: %s", filepath.Base(path))
		e.loadTileset(path, src.Rows, src.Cols)
		e.session.Select(prev)
	case err := <-e.watcher.Errors:
		log.Printf("Tileset watcher error: %v", err)
	default:
	}
}

func (e *Editor) Close() {
	if e.watcher != nil {
		_ = e.watcher.Close()
	}
}
