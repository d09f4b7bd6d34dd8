package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/Iron-Ham/studyplan/internal/agenda"
	"github.com/Iron-Ham/studyplan/internal/plan"
)

// printer writes the non-interactive transcript. Colors are only used when
// the destination is a terminal.
type printer struct {
	w io.Writer

	bot     *color.Color
	user    *color.Color
	failure *color.Color
	heading *color.Color
	muted   *color.Color
}

func newPrinter(w io.Writer) *printer {
	colored := isTerminal(w) && os.Getenv("NO_COLOR") == ""
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return &printer{
		w:       w,
		bot:     mk(color.FgCyan),
		user:    mk(color.FgGreen),
		failure: mk(color.FgRed),
		heading: mk(color.FgMagenta, color.Bold),
		muted:   mk(color.Faint),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// message prints one chat log entry.
func (p *printer) message(role, text string) {
	if role == "user" {
		fmt.Fprintf(p.w, "%s%s\n", p.user.Sprint("You: "), text)
		return
	}
	body := text
	if strings.HasPrefix(text, "Error: ") {
		body = p.failure.Sprint(text)
	}
	fmt.Fprintf(p.w, "%s%s\n", p.bot.Sprint("Bot: "), body)
}

// agenda prints the day list.
func (p *printer) agenda(a agenda.Agenda, downloadURL string) {
	if a.Empty() {
		fmt.Fprintln(p.w, p.muted.Sprint("The plan has no study days."))
		return
	}
	for _, day := range a.Days {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, p.heading.Sprint(day.Heading()))
		fmt.Fprintln(p.w, p.muted.Sprintf("%s · %s", day.Status, plan.FormatHoursMinutes(day.TotalHours)))
		for _, row := range day.Rows {
			line := fmt.Sprintf("  - %s (%s)", row.Name, row.Duration)
			if len(row.Tags) > 0 {
				line += " " + p.muted.Sprintf("[%s]", strings.Join(row.Tags, " "))
			}
			fmt.Fprintln(p.w, line)
		}
	}
	if downloadURL != "" {
		fmt.Fprintln(p.w)
		fmt.Fprintf(p.w, "Download PDF: %s\n", downloadURL)
	}
}
