package tileset

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
)

// Extensions lists the image types offered when picking a tileset.
var Extensions = []string{"png", "jpg", "jpeg", "bmp", "gif"}

// IsImageFile reports whether path has one of the supported extensions.
func IsImageFile(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tileset: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("tileset: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadFile decodes the image at path and slices it into a catalog.
func LoadFile(path string, tileRows, tileCols, cellSize int) (*Catalog, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	cat, err := Load(img, tileRows, tileCols, cellSize)
	if err != nil {
		return nil, err
	}
	cat.Source.Path = path
	return cat, nil
}
