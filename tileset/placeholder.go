package tileset

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	placeholderFill   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	placeholderCross  = color.RGBA{0xff, 0xcc, 0xcc, 0xff}
	placeholderBorder = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
)

// Placeholder builds the "air" tile stored at catalog index 0: a white cell
// with a light red two-pixel cross and a one-pixel grey border.
func Placeholder(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{placeholderFill}, image.Point{}, draw.Src)

	last := size - 1
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == y || x == y+1 || x+y == last || x+y == last+1 {
				img.SetRGBA(x, y, placeholderCross)
			}
		}
	}

	for i := 0; i < size; i++ {
		img.SetRGBA(i, 0, placeholderBorder)
		img.SetRGBA(i, last, placeholderBorder)
		img.SetRGBA(0, i, placeholderBorder)
		img.SetRGBA(last, i, placeholderBorder)
	}
	return img
}
