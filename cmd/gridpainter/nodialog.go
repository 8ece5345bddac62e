//go:build !dialog
// +build !dialog

package main

// openTilesetDialog is a stub used when the native dialog build tag isn't set;
// the editor falls back to a typed path.
func openTilesetDialog() (string, error) {
	return "", errDialogUnavailable
}
