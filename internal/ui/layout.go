// Package ui provides shared TUI styling, layout helpers, and theme definitions.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Window computes the visible slice [start, end) of a list of n items in a
// viewport h rows tall, keeping the focused index centred where possible and
// clamping at both edges. When everything fits the whole list is returned;
// when h is not positive the window is empty.
func Window(n, focus, h int) (start, end int) {
	if n <= 0 || h <= 0 {
		return 0, 0
	}
	if n <= h {
		return 0, n
	}
	if focus < 0 {
		focus = 0
	} else if focus >= n {
		focus = n - 1
	}
	start = focus - h/2
	if start < 0 {
		start = 0
	}
	if start > n-h {
		start = n - h
	}
	return start, start + h
}

// PlaceCentre centres content both horizontally and vertically within the given dimensions.
func PlaceCentre(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Truncate truncates s to maxLen runes, appending "…" if truncated.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// PadRight pads s with spaces to the given width.
func PadRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// JoinHints joins non-empty hint fragments with a separator.
func JoinHints(sep string, items ...string) string {
	var filtered []string
	for _, item := range items {
		if item != "" {
			filtered = append(filtered, item)
		}
	}
	return strings.Join(filtered, sep)
}
