// Package ui styles the non-interactive output of the CLI
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each colour.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

// Highlight renders headings in the strongest colour of the theme.
func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(pterm.Bold.Sprint(a))
	}

	return pterm.Bold.Sprint(a)
}
