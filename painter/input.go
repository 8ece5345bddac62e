package painter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrCanceled   = errors.New("input canceled")
	ErrOutOfRange = errors.New("value out of range")
)

// ParseDimension parses a prompt answer that must be an integer in
// [lo, hi]. hi <= 0 means no upper bound. An empty answer is a cancel.
func ParseDimension(label, text string, lo, hi int) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("painter: %s: %w", label, ErrCanceled)
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("painter: %s %q: %w", label, text, err)
	}
	if v < lo || (hi > 0 && v > hi) {
		return 0, fmt.Errorf("painter: %s %d: %w", label, v, ErrOutOfRange)
	}
	return v, nil
}

// ParseTilesetLayout parses the tile row and column counts of a tileset.
func ParseTilesetLayout(rowsText, colsText string) (rows, cols int, err error) {
	if rows, err = ParseDimension("tileset rows", rowsText, 1, 0); err != nil {
		return 0, 0, err
	}
	if cols, err = ParseDimension("tileset columns", colsText, 1, 0); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// ParseResize parses a new grid size, each dimension bounded to [1, maxDim].
func ParseResize(rowsText, colsText string, maxDim int) (rows, cols int, err error) {
	if rows, err = ParseDimension("rows", rowsText, 1, maxDim); err != nil {
		return 0, 0, err
	}
	if cols, err = ParseDimension("columns", colsText, 1, maxDim); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}
