package main

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Control colors follow a classic desktop toolkit look: light grey panel,
// raised buttons with a darker rim.
var (
	panelBackground = color.RGBA{0xd9, 0xd9, 0xd9, 0xff}
	panelText       = color.RGBA{0x20, 0x20, 0x20, 0xff}
	buttonRim       = color.RGBA{0x8a, 0x8a, 0x8a, 0xff}
	buttonIdle      = color.RGBA{0xec, 0xec, 0xec, 0xff}
	buttonHover     = color.RGBA{0xf7, 0xf7, 0xf7, 0xff}
	buttonPressed   = color.RGBA{0xc4, 0xc4, 0xc4, 0xff}
)

// rimmedNineSlice builds a 3x3 nine-slice: a one pixel rim around a
// stretchable fill.
func rimmedNineSlice(fill, rim color.Color) *image.NineSlice {
	img := ebiten.NewImage(3, 3)
	img.Fill(rim)
	img.Set(1, 1, fill)
	return image.NewNineSlice(img, [3]int{1, 1, 1}, [3]int{1, 1, 1})
}

var goRegular *text.GoTextFaceSource

// loadFace returns a Go Regular face of the given size.
func loadFace(size float64) text.Face {
	if goRegular == nil {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		goRegular = s
	}
	return &text.GoTextFace{Source: goRegular, Size: size}
}

func newControlTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: image.NewNineSliceColor(panelBackground),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    rimmedNineSlice(buttonIdle, buttonRim),
				Hover:   rimmedNineSlice(buttonHover, buttonRim),
				Pressed: rimmedNineSlice(buttonPressed, buttonRim),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: panelText,
			},
		},
	}
}
