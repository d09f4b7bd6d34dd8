package calendar

import "github.com/Iron-Ham/studyplan/internal/plan"

// Detail is the content of the event overlay.
type Detail struct {
	Title string
	Date  string
	Body  string
}

// DetailOf resolves an event into overlay content.
func DetailOf(e Event) Detail {
	body := e.Details
	if body == "" {
		body = NoDetails
	}
	return Detail{
		Title: e.Title,
		Date:  plan.DateLabel(e.Date),
		Body:  body,
	}
}

// Selected returns the highlighted event on the cursor day.
func (c *Calendar) Selected() (Event, bool) {
	events := c.EventsOn(c.cursor)
	if len(events) == 0 {
		return Event{}, false
	}
	if c.selected >= len(events) {
		c.selected = len(events) - 1
	}
	return events[c.selected], true
}

// CycleSelection highlights the next event on the cursor day, wrapping.
func (c *Calendar) CycleSelection() {
	n := len(c.EventsOn(c.cursor))
	if n == 0 {
		return
	}
	c.selected = (c.selected + 1) % n
}

// Open shows the overlay for the highlighted event. It reports whether an
// event was available.
func (c *Calendar) Open() bool {
	e, ok := c.Selected()
	if !ok {
		return false
	}
	c.overlay = &e
	return true
}

// Close dismisses the overlay.
func (c *Calendar) Close() {
	c.overlay = nil
}

// Overlay returns the open overlay content, if any.
func (c *Calendar) Overlay() (Detail, bool) {
	if c.overlay == nil {
		return Detail{}, false
	}
	return DetailOf(*c.overlay), true
}
