// Package agenda projects a study plan onto a linear day-by-day list and
// exports it as Markdown or HTML.
package agenda

import (
	"time"

	"github.com/Iron-Ham/studyplan/internal/plan"
)

// StatusUpcoming is the status every projected day starts with.
const StatusUpcoming = "Upcoming"

// Row is one topic line under a day heading.
type Row struct {
	Name     string
	Hours    float64
	Duration string
	Tags     []string
}

// Day is one section of the list.
type Day struct {
	Label      string
	Date       time.Time
	Status     string
	TotalHours float64
	// Progress is the completed fraction, 0 to 1.
	Progress float64
	Rows     []Row
}

// Heading returns "<label> - <date>".
func (d Day) Heading() string {
	return d.Label + " - " + plan.DateLabel(d.Date)
}

// Agenda is the rendered list for one plan.
type Agenda struct {
	Days        []Day
	DownloadURL string
}

// Build projects p. Day i is dated today plus i. A nil plan yields an empty
// agenda.
func Build(p *plan.StudyPlan, today time.Time) Agenda {
	if p == nil {
		return Agenda{}
	}

	a := Agenda{
		Days:        make([]Day, 0, len(p.Days)),
		DownloadURL: p.PDFURL,
	}
	for i, sd := range p.Days {
		day := Day{
			Label:      sd.Day,
			Date:       plan.DateFor(today, i),
			Status:     StatusUpcoming,
			TotalHours: sd.TotalHours(),
			Rows:       make([]Row, 0, len(sd.Topics)),
		}
		for _, t := range sd.Topics {
			day.Rows = append(day.Rows, Row{
				Name:     t.Name,
				Hours:    t.Hours,
				Duration: plan.FormatHoursMinutes(t.Hours),
				Tags:     plan.TopicTags(t.Name),
			})
		}
		a.Days = append(a.Days, day)
	}
	return a
}

// HasDownload reports whether the plan carries a document link.
func (a Agenda) HasDownload() bool {
	return a.DownloadURL != ""
}

// Empty reports whether there is nothing to list.
func (a Agenda) Empty() bool {
	return len(a.Days) == 0
}
