package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/studyplan/internal/calendar"
	"github.com/Iron-Ham/studyplan/internal/tui/styles"
)

const overlayMaxWidth = 50

// RenderOverlay draws the event detail box centered in a width by height
// area.
func RenderOverlay(d calendar.Detail, width, height int, th *styles.Theme) string {
	boxW := min(overlayMaxWidth, max(width-4, 20))

	var b strings.Builder
	b.WriteString(th.Title.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(th.Subtitle.Render(d.Date))
	b.WriteString("\n\n")
	b.WriteString(d.Body)
	b.WriteString("\n\n")
	b.WriteString(th.KeyHint.Render("[esc]") + th.Muted.Render(" close"))

	box := th.Overlay.Width(boxW).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
