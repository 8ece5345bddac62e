package main

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Prompt is a modal single-line text input. Enter submits the text to the
// callback; Escape submits an empty string so callers see a cancellation.
type Prompt struct {
	open     bool
	label    string
	input    string
	onSubmit func(string)
	chars    []rune
	backdrop *ebiten.Image
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

// Open shows the prompt. Calling Open from inside a callback chains a
// follow-up question.
func (p *Prompt) Open(label, initial string, onSubmit func(string)) {
	p.label = label
	p.input = initial
	p.onSubmit = onSubmit
	p.open = true
}

func (p *Prompt) Close() {
	p.open = false
	p.label = ""
	p.input = ""
	p.onSubmit = nil
}

// Update consumes keyboard input while the prompt is open and reports
// whether it did, so the caller can skip its own input handling.
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		if r == '\n' || r == '\r' {
			continue
		}
		p.input += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && p.input != "" {
		_, size := utf8.DecodeLastRuneInString(p.input)
		p.input = p.input[:len(p.input)-size]
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		p.submit(p.input)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		p.submit("")
	}
	return true
}

func (p *Prompt) submit(text string) {
	cb := p.onSubmit
	p.Close()
	if cb != nil {
		cb(text)
	}
}

func (p *Prompt) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	if p.backdrop == nil || p.backdrop.Bounds().Dx() != sw {
		p.backdrop = ebiten.NewImage(sw, 48)
		p.backdrop.Fill(color.RGBA{A: 0xcc})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(sh/2-24))
	screen.DrawImage(p.backdrop, op)
	ebitenutil.DebugPrintAt(screen, p.label+" "+p.input+"_", 16, sh/2-14)
	ebitenutil.DebugPrintAt(screen, "Enter to confirm, Esc to cancel", 16, sh/2+2)
}
