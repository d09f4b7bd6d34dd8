// Package util holds the text fitting helpers shared by the renderers.
package util

import (
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks text that was cut to fit.
const Ellipsis = "…"

// Truncate cuts s to at most width terminal cells, ending in Ellipsis when
// anything was removed. Styling escapes are kept intact and wide runes are
// counted by their cell width. A width below one yields the empty string.
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, Ellipsis)
}

// TruncateMiddle cuts plain text to at most width cells by replacing its
// middle with Ellipsis, so the start and the extension of a file name both
// stay visible.
func TruncateMiddle(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width < 3 {
		return Truncate(s, width)
	}

	keep := width - ansi.StringWidth(Ellipsis)
	tailWidth := keep / 2
	head := ansi.Truncate(s, keep-tailWidth, "")

	runes := []rune(s)
	start := len(runes)
	used := 0
	for start > 0 {
		w := ansi.StringWidth(string(runes[start-1]))
		if used+w > tailWidth {
			break
		}
		used += w
		start--
	}
	return head + Ellipsis + string(runes[start:])
}
