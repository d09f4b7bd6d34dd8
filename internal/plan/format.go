package plan

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatHoursMinutes renders a fractional hour count as a human readable
// duration such as "1 hour 30 minutes". The remainder is rounded to whole
// minutes and never carries into the hour, so 1.999 renders as
// "1 hour 60 minutes". Zero renders as "0 minutes".
func FormatHoursMinutes(hours float64) string {
	h := math.Floor(hours)
	m := int(math.Round((hours - h) * 60))
	whole := int(h)

	var parts []string
	if whole > 0 {
		parts = append(parts, pluralize(whole, "hour"))
	}
	if m > 0 {
		parts = append(parts, pluralize(m, "minute"))
	}
	if len(parts) == 0 {
		return "0 minutes"
	}
	return strings.Join(parts, " ")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatHours renders an hour count in its shortest exact form ("1.5", "2").
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
