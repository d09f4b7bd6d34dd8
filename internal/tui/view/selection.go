package view

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Iron-Ham/studyplan/internal/selection"
	"github.com/Iron-Ham/studyplan/internal/tui/styles"
	"github.com/Iron-Ham/studyplan/internal/util"
)

// NoFilesText is shown while nothing is selected.
const NoFilesText = "No files selected"

// RenderSelection lists the selected files with their sizes.
func RenderSelection(files []selection.File, width int, th *styles.Theme) string {
	if len(files) == 0 {
		return th.Muted.Render(NoFilesText)
	}

	var total int64
	lines := make([]string, 0, len(files)+1)
	for _, f := range files {
		total += f.Size
		size := humanize.Bytes(uint64(max(f.Size, 0)))
		name := util.TruncateMiddle(f.Name(), max(width-len(size)-4, 8))
		lines = append(lines, "• "+name+" "+th.Muted.Render(size))
	}
	summary := humanize.Comma(int64(len(files))) + " file"
	if len(files) != 1 {
		summary += "s"
	}
	lines = append(lines, th.Muted.Render(summary+", "+humanize.Bytes(uint64(max(total, 0)))))
	return strings.Join(lines, "\n")
}
