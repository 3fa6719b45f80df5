package util

import (
	"golang.org/x/term"
)

// DefaultTermWidth is assumed when the output is not a terminal.
const DefaultTermWidth = 80

// TermWidth returns the column width of the terminal behind fd, or
// DefaultTermWidth when fd is not a terminal or its size cannot be read.
func TermWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return DefaultTermWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultTermWidth
	}
	return width
}
