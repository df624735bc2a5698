// Package color names the terminal colors tscribe prints with.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	HiRed  = New("9")
	Orange = New("#ffb703")
	Gray   = New("#808080")
)

// Progress bar gradient endpoints.
var (
	GradientStart = "#5A56E0"
	GradientEnd   = "#EE6FF8"
)
