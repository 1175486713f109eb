package formatter

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FormatDate renders a nullable date, "—" when unset.
func FormatDate(t *time.Time) string {
	if t == nil {
		return StyleDim.Render("—")
	}
	return t.Format(dateLayout)
}

// FormatHours renders an hour figure without trailing noise: "16h", "2.5h".
func FormatHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

// FormatDays renders a working-day count: "2d", "1.5d".
func FormatDays(d float64) string {
	if d == float64(int(d)) {
		return fmt.Sprintf("%dd", int(d))
	}
	return fmt.Sprintf("%.1fd", d)
}

// FormatMoney renders a cost figure with thousands grouping.
func FormatMoney(v float64) string {
	whole := int64(v)
	frac := v - float64(whole)

	s := fmt.Sprintf("%d", whole)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")

	if frac > 0.005 {
		out += fmt.Sprintf(".%02d", int(frac*100+0.5))
	}
	return out
}

// TruncName pads a string to a minimum width, truncating if needed.
func TruncName(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}

// WeekdayOrder is the display order for calendar listings, Monday first.
var WeekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}
