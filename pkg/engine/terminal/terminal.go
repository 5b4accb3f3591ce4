// Package terminal reports the size of the attached terminal so maps can be
// generated to fit it.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// reservedLines is the space left below the map for the summary line and prompt
const reservedLines = 2

// GetSize returns the current terminal width and height.
// Falls back to defaults if stdout is not a terminal or the size cannot be determined.
func GetSize() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// MapSize returns the largest map, one character per cell, that fits the
// terminal with room for a summary line. Both values are at least 3 so the
// map always has an interior.
func MapSize() (width, height int) {
	w, h := GetSize()
	return FitMap(w, h)
}

// FitMap converts a terminal size into a map size
func FitMap(termWidth, termHeight int) (width, height int) {
	width = max(termWidth, 3)
	height = max(termHeight-reservedLines, 3)
	return width, height
}
