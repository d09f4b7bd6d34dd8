package agenda

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/studyplan/internal/plan"
)

var today = time.Date(2026, time.March, 30, 18, 0, 0, 0, time.UTC)

func samplePlan() *plan.StudyPlan {
	return &plan.StudyPlan{
		Days: []plan.StudyDay{
			{Day: "Day 1", Topics: []plan.Topic{
				{Name: "Binary Search Algorithm", Hours: 1.5},
				{Name: "Lunch", Hours: 1},
			}},
			{Day: "Day 2", Topics: []plan.Topic{
				{Name: "Dynamic programming | knapsack", Hours: 2.25},
			}},
		},
		PDFURL: "/download/plan_1.pdf",
	}
}

func TestBuild(t *testing.T) {
	a := Build(samplePlan(), today)

	if len(a.Days) != 2 {
		t.Fatalf("len(Days) = %d, want 2", len(a.Days))
	}

	d1 := a.Days[0]
	if got, want := d1.Heading(), "Day 1 - 3/30/2026"; got != want {
		t.Errorf("Heading() = %q, want %q", got, want)
	}
	if d1.Status != StatusUpcoming {
		t.Errorf("Status = %q, want %q", d1.Status, StatusUpcoming)
	}
	if d1.TotalHours != 2.5 {
		t.Errorf("TotalHours = %v, want 2.5", d1.TotalHours)
	}
	if d1.Progress != 0 {
		t.Errorf("Progress = %v, want 0", d1.Progress)
	}
	if got := d1.Rows[0].Duration; got != "1 hour 30 minutes" {
		t.Errorf("Duration = %q", got)
	}
	if got := d1.Rows[0].Tags; !slices.Equal(got, []string{"Algorithm", "Search"}) {
		t.Errorf("Tags = %v", got)
	}
	if len(d1.Rows[1].Tags) != 0 {
		t.Errorf("Lunch should have no tags, got %v", d1.Rows[1].Tags)
	}

	if got, want := a.Days[1].Heading(), "Day 2 - 3/31/2026"; got != want {
		t.Errorf("Heading() = %q, want %q", got, want)
	}
	if !a.HasDownload() {
		t.Error("HasDownload() = false, want true")
	}
}

func TestBuild_NilAndEmpty(t *testing.T) {
	if a := Build(nil, today); !a.Empty() || a.HasDownload() {
		t.Errorf("Build(nil) = %+v, want empty", a)
	}
	if a := Build(&plan.StudyPlan{Days: []plan.StudyDay{}}, today); !a.Empty() {
		t.Errorf("Build(empty) = %+v, want empty", a)
	}
}

func TestMarkdown(t *testing.T) {
	md := Build(samplePlan(), today).Markdown("http://localhost:5000/download/plan_1.pdf")

	for _, want := range []string{
		"# Study Plan\n",
		"## Day 1 - 3/30/2026\n",
		"**Status:** Upcoming · **Total:** 2 hours 30 minutes · **Progress:** 0%",
		"| Binary Search Algorithm | 1 hour 30 minutes | Algorithm, Search |",
		"| Lunch | 1 hour |  |",
		`| Dynamic programming \| knapsack | 2 hours 15 minutes | Dynamic Programming |`,
		"[Download PDF](http://localhost:5000/download/plan_1.pdf)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q\n%s", want, md)
		}
	}
}

func TestMarkdown_FallsBackToPlanLink(t *testing.T) {
	md := Build(samplePlan(), today).Markdown("")
	if !strings.Contains(md, "[Download PDF](/download/plan_1.pdf)") {
		t.Errorf("Markdown() should link the plan's own URL\n%s", md)
	}
}

func TestMarkdown_Empty(t *testing.T) {
	md := Build(nil, today).Markdown("")
	if !strings.Contains(md, "No study days.") {
		t.Errorf("Markdown() = %q", md)
	}
	if strings.Contains(md, "Download PDF") {
		t.Error("empty agenda should not link a document")
	}
}

func TestHTML(t *testing.T) {
	html, err := Build(samplePlan(), today).HTML("")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}

	for _, want := range []string{
		"<h1",
		"Study Plan</h1>",
		"<table>",
		"<td>Binary Search Algorithm</td>",
		`<a href="/download/plan_1.pdf">Download PDF</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() missing %q\n%s", want, html)
		}
	}
}
