package painter

import (
	"image"
	"image/color"

	"github.com/milk9111/gridpainter/tileset"
)

// Appearance is how a single cell should be drawn: either a tile image or,
// when Image is nil, a solid color.
type Appearance struct {
	Image *image.RGBA
	Color color.RGBA
}

// RenderPolicy decides how identifiers are drawn. The session picks one per
// frame depending on whether a tileset is loaded.
type RenderPolicy interface {
	Appearance(id int) Appearance
}

// ColorFallback draws identifiers from a fixed color table.
type ColorFallback struct {
	Colors  map[int]color.RGBA
	Default color.RGBA
}

func (p ColorFallback) Appearance(id int) Appearance {
	if c, ok := p.Colors[id]; ok {
		return Appearance{Color: c}
	}
	return Appearance{Color: p.Default}
}

// ImageBacked draws identifiers with catalog tiles, using Fallback for
// identifiers the catalog does not cover.
type ImageBacked struct {
	Catalog  *tileset.Catalog
	Fallback ColorFallback
}

func (p ImageBacked) Appearance(id int) Appearance {
	if img, ok := p.Catalog.Tile(id); ok {
		return Appearance{Image: img}
	}
	return p.Fallback.Appearance(id)
}
