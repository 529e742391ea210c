package common

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// WrapText word-wraps text to width cells. Widths below 1 leave text as is.
func WrapText(text string, width int) string {
	if width < 1 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// ClampLines truncates every line of text to width cells, ANSI-aware.
func ClampLines(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Truncate(ln, width, "…")
	}
	return strings.Join(lines, "\n")
}

// Plural returns singular when n is 1, otherwise plural.
func Plural(n int, singular, plural string) string {
	if n == 1 || n == -1 {
		return singular
	}
	return plural
}
