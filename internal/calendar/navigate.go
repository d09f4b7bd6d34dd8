package calendar

import "time"

// View returns the current grid view.
func (c *Calendar) View() View {
	return c.view
}

// ToggleView switches between month and week views.
func (c *Calendar) ToggleView() {
	if c.view == ViewMonth {
		c.view = ViewWeek
	} else {
		c.view = ViewMonth
	}
}

// Cursor returns the focused day.
func (c *Calendar) Cursor() time.Time {
	return c.cursor
}

// MoveCursor shifts the focused day by n days and resets event selection.
func (c *Calendar) MoveCursor(n int) {
	c.cursor = c.cursor.AddDate(0, 0, n)
	c.selected = 0
}

// Prev moves back one month or one week, depending on the view.
func (c *Calendar) Prev() {
	if c.view == ViewWeek {
		c.MoveCursor(-7)
		return
	}
	c.shiftMonth(-1)
}

// Next moves forward one month or one week, depending on the view.
func (c *Calendar) Next() {
	if c.view == ViewWeek {
		c.MoveCursor(7)
		return
	}
	c.shiftMonth(1)
}

// Today puts the cursor back on today.
func (c *Calendar) Today(now time.Time) {
	c.cursor = midnight(now)
	c.selected = 0
}

// shiftMonth moves to the same day of an adjacent month, clamped to the
// length of that month.
func (c *Calendar) shiftMonth(n int) {
	y, m, d := c.cursor.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, c.cursor.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	c.cursor = time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, c.cursor.Location())
	c.selected = 0
}

// Title is the toolbar heading for the visible range.
func (c *Calendar) Title() string {
	if c.view == ViewWeek {
		days := c.Weeks()[0]
		start, end := days[0], days[6]
		if start.Month() == end.Month() {
			return start.Format("Jan 2") + " - " + end.Format("2, 2006")
		}
		if start.Year() == end.Year() {
			return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
		}
		return start.Format("Jan 2, 2006") + " - " + end.Format("Jan 2, 2006")
	}
	return c.cursor.Format("January 2006")
}

// Weeks returns the visible rows of the grid, each seven consecutive days
// starting on the configured week start. The month view always spans the
// weeks that touch the cursor's month.
func (c *Calendar) Weeks() [][]time.Time {
	if c.view == ViewWeek {
		return [][]time.Time{week(c.startOfWeek(c.cursor))}
	}

	y, m, _ := c.cursor.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, c.cursor.Location())
	last := first.AddDate(0, 1, -1)

	var rows [][]time.Time
	for start := c.startOfWeek(first); !start.After(last); start = start.AddDate(0, 0, 7) {
		rows = append(rows, week(start))
	}
	return rows
}

// Weekdays returns the column headings in grid order.
func (c *Calendar) Weekdays() []time.Weekday {
	out := make([]time.Weekday, 7)
	for i := range out {
		out[i] = time.Weekday((int(c.weekStart) + i) % 7)
	}
	return out
}

func (c *Calendar) startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) - int(c.weekStart) + 7) % 7
	return midnight(t).AddDate(0, 0, -offset)
}

func week(start time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
