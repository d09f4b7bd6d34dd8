package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/studyplan/internal/calendar"
	"github.com/Iron-Ham/studyplan/internal/tui/styles"
	"github.com/Iron-Ham/studyplan/internal/util"
)

const (
	minCellWidth        = 6
	monthEventsPerCell  = 2
	weekEventsPerCell   = 6
	eventMarker         = "●"
	selectedEventMarker = "▸"
)

// RenderCalendar draws the toolbar title and the visible grid of cal.
func RenderCalendar(cal *calendar.Calendar, today time.Time, width int, th *styles.Theme) string {
	cellW := max(minCellWidth, width/7)
	perCell := monthEventsPerCell
	if cal.View() == calendar.ViewWeek {
		perCell = weekEventsPerCell
	}

	var b strings.Builder
	b.WriteString(th.Title.Render(cal.Title()))
	b.WriteString("  ")
	b.WriteString(th.Muted.Render("[" + cal.View().String() + "]"))
	b.WriteString("\n")

	header := make([]string, 0, 7)
	for _, wd := range cal.Weekdays() {
		header = append(header, th.Weekday.Width(cellW).Render(wd.String()[:3]))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))

	selected, hasSelected := cal.Selected()
	for _, week := range cal.Weeks() {
		cols := make([]string, 0, len(week))
		for _, day := range week {
			cell := cellState{
				day:       day,
				cursor:    sameDay(day, cal.Cursor()),
				today:     sameDay(day, today),
				outside:   cal.View() == calendar.ViewMonth && day.Month() != cal.Cursor().Month(),
				events:    cal.EventsOn(day),
				perCell:   perCell,
				width:     cellW,
				selected:  selected,
				highlight: hasSelected,
			}
			cols = append(cols, cell.render(th))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return b.String()
}

type cellState struct {
	day       time.Time
	cursor    bool
	today     bool
	outside   bool
	events    []calendar.Event
	perCell   int
	width     int
	selected  calendar.Event
	highlight bool
}

func (c cellState) render(th *styles.Theme) string {
	num := th.Cell
	switch {
	case c.cursor:
		num = th.CursorCell
	case c.today:
		num = th.Today
	case c.outside:
		num = th.OtherMonth
	}

	lines := make([]string, 0, c.perCell+1)
	lines = append(lines, num.Render(strconv.Itoa(c.day.Day())))

	shown := c.events
	if len(shown) > c.perCell {
		limit := max(c.perCell-1, 0)
		shown = append([]calendar.Event(nil), c.events[:limit]...)
		// A selected event past the limit takes the last visible slot.
		if c.cursor && c.highlight && limit > 0 && indexOf(c.events, c.selected) >= limit {
			shown[limit-1] = c.selected
		}
	}
	for _, e := range shown {
		marker := eventMarker
		if c.cursor && c.highlight && e == c.selected {
			marker = selectedEventMarker
		}
		title := util.Truncate(e.Title, c.width-3)
		lines = append(lines, styles.EventStyle(e.Color).Render(marker)+" "+title)
	}
	if hidden := len(c.events) - len(shown); hidden > 0 {
		lines = append(lines, th.Muted.Render("+"+strconv.Itoa(hidden)+" more"))
	}
	for len(lines) < c.perCell+1 {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().Width(c.width).Render(strings.Join(lines, "\n"))
}

func indexOf(events []calendar.Event, e calendar.Event) int {
	for i, ev := range events {
		if ev == e {
			return i
		}
	}
	return -1
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
