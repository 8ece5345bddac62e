//go:build dialog
// +build dialog

package main

import (
	"errors"

	"github.com/milk9111/gridpainter/tileset"
	"github.com/sqweek/dialog"
)

// openTilesetDialog opens the native file picker filtered to tileset images.
func openTilesetDialog() (string, error) {
	path, err := dialog.File().Filter("Image files", tileset.Extensions...).Title("Select Tileset Image").Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", errDialogCanceled
	}
	return path, err
}
