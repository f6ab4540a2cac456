// Package util holds small string helpers shared by the TUI and the CLI.
package util

import (
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// TruncateANSI truncates a styled string to maxWidth visual columns, adding
// "..." if truncated. Escape sequences are preserved.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "...")
}

// TruncateWidth truncates plain text to width terminal cells, ending in "…"
// when cut. Wide runes count as two cells.
func TruncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadWidth right-pads plain text with spaces to exactly width cells,
// truncating first if needed.
func PadWidth(s string, width int) string {
	return runewidth.FillRight(TruncateWidth(s, width), width)
}

// Capitalize upper-cases the first letter of s and leaves the rest alone:
// "mr-mime" becomes "Mr-mime".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upper.String(s[:size]) + s[size:]
}

// Upper upper-cases all of s.
func Upper(s string) string {
	return upper.String(s)
}
