package plan

import (
	"encoding/json"
	"time"
)

// Topic is a single subject with an allotted duration within one day.
type Topic struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// StudyDay is one labeled day of a plan.
type StudyDay struct {
	Day    string  `json:"day"`
	Topics []Topic `json:"topics"`
}

// TotalHours sums the hours of every topic in the day.
func (d StudyDay) TotalHours() float64 {
	var total float64
	for _, t := range d.Topics {
		total += t.Hours
	}
	return total
}

// StudyPlan is the multi-day schedule returned by the backend.
type StudyPlan struct {
	Days   []StudyDay `json:"study_plan"`
	PDFURL string     `json:"pdf_url,omitempty"`
}

// TopicCount returns the number of topics across all days.
func (p *StudyPlan) TopicCount() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, d := range p.Days {
		n += len(d.Topics)
	}
	return n
}

// HasDocument reports whether the plan links a downloadable document.
func (p *StudyPlan) HasDocument() bool {
	return p != nil && p.PDFURL != ""
}

// Clone returns a deep copy so callers can hand the plan to another
// goroutine without sharing topic slices.
func (p *StudyPlan) Clone() *StudyPlan {
	if p == nil {
		return nil
	}
	out := &StudyPlan{PDFURL: p.PDFURL, Days: make([]StudyDay, len(p.Days))}
	for i, d := range p.Days {
		out.Days[i] = StudyDay{Day: d.Day, Topics: append([]Topic(nil), d.Topics...)}
	}
	return out
}

// MarshalJSON always emits study_plan as an array, never null, since the
// chat endpoint indexes into it.
func (p StudyPlan) MarshalJSON() ([]byte, error) {
	type wire struct {
		Days   []StudyDay `json:"study_plan"`
		PDFURL *string    `json:"pdf_url"`
	}
	w := wire{Days: p.Days}
	if w.Days == nil {
		w.Days = []StudyDay{}
	}
	if p.PDFURL != "" {
		w.PDFURL = &p.PDFURL
	}
	return json.Marshal(w)
}

// DateFor returns the calendar date for the day at index, relative to today.
// The time of day is truncated to local midnight.
func DateFor(today time.Time, index int) time.Time {
	y, m, d := today.Date()
	return time.Date(y, m, d+index, 0, 0, 0, 0, today.Location())
}

// DateLabel formats a projected date the way day headings and the event
// overlay show it.
func DateLabel(t time.Time) string {
	return t.Format("1/2/2006")
}
