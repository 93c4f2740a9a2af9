package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// isStderrTTY reports whether stderr is attached to a terminal.
func isStderrTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// applyColor turns off lipgloss colors when noColor is set or NO_COLOR is
// present in the environment.
func applyColor(noColor bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		noColor = true
	}
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return !noColor
}
