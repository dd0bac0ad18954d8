package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const defaultWidth = 80

// isTerminal reports whether w is a terminal that can take ANSI colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// painter returns a color for w, disabled unless w is a color terminal.
func painter(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if color.NoColor || !isTerminal(w) {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

// terminalWidth returns the width of w when it is a terminal, capped to keep
// rules readable on wide screens.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	if width > 120 {
		return 120
	}
	return width
}
