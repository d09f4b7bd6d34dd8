package agenda

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/Iron-Ham/studyplan/internal/plan"
)

// Title heads exported documents.
const Title = "Study Plan"

// Markdown renders the agenda as a GitHub-flavored Markdown document.
// downloadURL, when non-empty, is the absolute link written for the
// document; otherwise the plan's own link is used.
func (a Agenda) Markdown(downloadURL string) string {
	var sb strings.Builder
	sb.WriteString("# " + Title + "\n")

	if a.Empty() {
		sb.WriteString("\nNo study days.\n")
	}

	for _, d := range a.Days {
		fmt.Fprintf(&sb, "\n## %s\n\n", escapeInline(d.Heading()))
		fmt.Fprintf(&sb, "**Status:** %s · **Total:** %s · **Progress:** %d%%\n",
			d.Status, plan.FormatHoursMinutes(d.TotalHours), int(d.Progress*100))

		if len(d.Rows) == 0 {
			continue
		}
		sb.WriteString("\n| Topic | Duration | Tags |\n|---|---|---|\n")
		for _, r := range d.Rows {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", escapeCell(r.Name), r.Duration, strings.Join(r.Tags, ", "))
		}
	}

	link := downloadURL
	if link == "" {
		link = a.DownloadURL
	}
	if link != "" {
		fmt.Fprintf(&sb, "\n[Download PDF](%s)\n", link)
	}
	return sb.String()
}

// HTML renders the Markdown export to an HTML fragment.
func (a Agenda) HTML(downloadURL string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(a.Markdown(downloadURL)), &buf); err != nil {
		return "", fmt.Errorf("render agenda html: %w", err)
	}
	return buf.String(), nil
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
)

func escapeInline(s string) string {
	return inlineEscaper.Replace(s)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(escapeInline(s), "|", `\|`)
}
