package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/studyplan/internal/agenda"
	"github.com/Iron-Ham/studyplan/internal/plan"
	"github.com/Iron-Ham/studyplan/internal/tui/styles"
	"github.com/Iron-Ham/studyplan/internal/util"
)

const progressWidth = 10

// EmptyAgendaText is shown before the first plan arrives.
const EmptyAgendaText = "No plan yet. Select files and press ctrl+g to generate one."

// RenderAgenda draws the day list of a. downloadKey names the key that
// saves the plan document, shown when the plan carries one.
func RenderAgenda(a agenda.Agenda, width int, downloadKey string, th *styles.Theme) string {
	if a.Empty() {
		return th.Muted.Render(EmptyAgendaText)
	}

	var b strings.Builder
	for i, d := range a.Days {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(th.DayHeading.Render(d.Heading()))
		b.WriteString("\n")
		b.WriteString(th.Muted.Render(fmt.Sprintf("%s · %s · ", d.Status, plan.FormatHoursMinutes(d.TotalHours))))
		b.WriteString(progressBar(d.Progress, th))
		for _, r := range d.Rows {
			b.WriteString("\n")
			b.WriteString(renderRow(r, width, th))
		}
	}

	if a.HasDownload() {
		b.WriteString("\n\n")
		b.WriteString(th.KeyHint.Render("["+downloadKey+"]") + " Download PDF")
	}
	return b.String()
}

func renderRow(r agenda.Row, width int, th *styles.Theme) string {
	var tags []string
	for _, t := range r.Tags {
		tags = append(tags, th.Tag.Render(t))
	}
	line := "  • " + r.Name + "  " + th.Muted.Render(r.Duration)
	if len(tags) > 0 {
		line += "  " + strings.Join(tags, " ")
	}
	if width > 0 {
		line = util.Truncate(line, width)
	}
	return line
}

// progressBar renders a fraction between 0 and 1 as a fixed-width bar
// followed by its percentage.
func progressBar(fraction float64, th *styles.Theme) string {
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction * progressWidth)
	bar := th.Success.Render(strings.Repeat("█", filled)) +
		th.Progress.Render(strings.Repeat("░", progressWidth-filled))
	return bar + th.Muted.Render(fmt.Sprintf(" %d%%", int(fraction*100)))
}
