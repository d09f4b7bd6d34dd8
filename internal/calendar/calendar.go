// Package calendar projects a study plan onto dated all-day events and
// tracks the navigation state of a month or week grid over those events.
package calendar

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Iron-Ham/studyplan/internal/plan"
)

// Palette holds the decorative event colors.
var Palette = []string{
	"#4299e1",
	"#48bb78",
	"#ed8936",
	"#e53e3e",
	"#805ad5",
	"#d69e2e",
	"#38b2ac",
	"#f56565",
}

// NoDetails is shown for an event without detail text.
const NoDetails = "No additional details available."

// Event is one topic placed on a calendar day.
type Event struct {
	Title   string
	Date    time.Time
	AllDay  bool
	Color   string
	Details string
}

// View selects the visible range of the grid.
type View int

const (
	ViewMonth View = iota
	ViewWeek
)

// String returns the toolbar label of the view.
func (v View) String() string {
	if v == ViewWeek {
		return "week"
	}
	return "month"
}

// Calendar holds the events of the current plan and the grid cursor.
// It is not safe for concurrent use.
type Calendar struct {
	events    []Event
	rng       *rand.Rand
	weekStart time.Weekday
	view      View
	cursor    time.Time
	selected  int
	overlay   *Event
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithSeed makes color choice deterministic. Zero keeps it time-seeded.
func WithSeed(seed int64) Option {
	return func(c *Calendar) {
		if seed != 0 {
			c.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
		}
	}
}

// WithWeekStart sets the first column of the grid.
func WithWeekStart(day time.Weekday) Option {
	return func(c *Calendar) {
		c.weekStart = day
	}
}

// New creates an empty calendar with its cursor on today.
func New(today time.Time, opts ...Option) *Calendar {
	now := uint64(time.Now().UnixNano())
	c := &Calendar{
		rng:       rand.New(rand.NewPCG(now, now>>1)),
		weekStart: time.Sunday,
		cursor:    midnight(today),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rebuild discards every event and places one all-day event per topic,
// dated today plus the day's index. A nil plan leaves the calendar empty.
func (c *Calendar) Rebuild(p *plan.StudyPlan, today time.Time) {
	c.events = c.events[:0]
	c.overlay = nil
	c.selected = 0
	if p == nil {
		return
	}
	for i, day := range p.Days {
		date := plan.DateFor(today, i)
		for _, topic := range day.Topics {
			c.events = append(c.events, Event{
				Title:   topic.Name,
				Date:    date,
				AllDay:  true,
				Color:   Palette[c.rng.IntN(len(Palette))],
				Details: fmt.Sprintf("Hours: %s\nTopics: %s", plan.FormatHours(topic.Hours), topic.Name),
			})
		}
	}
}

// Events returns a copy of all events in plan order.
func (c *Calendar) Events() []Event {
	return append([]Event(nil), c.events...)
}

// Len returns the number of events.
func (c *Calendar) Len() int {
	return len(c.events)
}

// EventsOn returns the events dated on the same calendar day as d.
func (c *Calendar) EventsOn(d time.Time) []Event {
	var out []Event
	for _, e := range c.events {
		if sameDay(e.Date, d) {
			out = append(out, e)
		}
	}
	return out
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
