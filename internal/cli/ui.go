package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleKey for labels in key/value listings.
	StyleKey = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// field is one row of a key/value listing.
type field struct {
	key   string
	value string
}

// printFields writes a title followed by aligned key/value rows.
func printFields(w io.Writer, title string, fields []field) {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.key))
	}

	fmt.Fprintln(w, StyleTitle.Render(title))
	for _, f := range fields {
		pad := strings.Repeat(" ", width-len(f.key))
		fmt.Fprintf(w, "  %s%s  %s\n", StyleKey.Render(f.key), pad, StyleValue.Render(f.value))
	}
}

// printWritten reports a file written by a command.
func printWritten(w io.Writer, what, path string) {
	fmt.Fprintf(w, "%s %s %s %s\n", StyleSuccess.Render(iconSuccess), what, iconArrow, path)
}
