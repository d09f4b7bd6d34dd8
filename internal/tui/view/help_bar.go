package view

import (
	"strings"

	"github.com/Iron-Ham/studyplan/internal/tui/keymap"
	"github.com/Iron-Ham/studyplan/internal/tui/styles"
	"github.com/Iron-Ham/studyplan/internal/util"
)

// RenderHelpBar draws the key hints of mode on one line of width columns.
// A non-empty status is shown first.
func RenderHelpBar(km *keymap.Keymap, mode keymap.Mode, width int, status string, th *styles.Theme) string {
	var parts []string
	if status != "" {
		parts = append(parts, th.Warning.Render(status))
	}
	for _, h := range km.Hints(mode) {
		parts = append(parts, th.KeyHint.Render("["+h.Key+"]")+" "+h.Description)
	}
	line := strings.Join(parts, "  ")
	if width > 0 {
		line = util.Truncate(line, width)
	}
	return th.StatusBar.Render(line)
}

// RenderHelp draws every binding of mode grouped by category.
func RenderHelp(km *keymap.Keymap, mode keymap.Mode, th *styles.Theme) string {
	var b strings.Builder
	b.WriteString(th.Title.Render("Keys"))
	var category string
	for _, kb := range km.GetModeBindings(mode) {
		if kb.Category != category {
			category = kb.Category
			b.WriteString("\n\n")
			b.WriteString(th.Label.Render(category))
		}
		b.WriteString("\n  ")
		b.WriteString(th.KeyHint.Render(padRight(kb.String(), 10)))
		b.WriteString(kb.Description)
	}
	return b.String()
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
