package report

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders d as hours, minutes and seconds, e.g.
// "2 hours, 1 minute and 5 seconds". Zero units are left out.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	secs := int64(d / time.Second)
	hours := secs / 3600
	secs -= hours * 3600
	minutes := secs / 60
	secs -= minutes * 60

	var parts []string
	for _, unit := range []struct {
		n    int64
		name string
	}{
		{hours, "hour"},
		{minutes, "minute"},
		{secs, "second"},
	} {
		if unit.n != 0 {
			parts = append(parts, plural(unit.n, unit.name))
		}
	}

	switch len(parts) {
	case 0:
		return "0 seconds"
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}

// Timegap renders an elapsed time loosely, e.g. "about 3 hours"
func Timegap(d time.Duration) string {
	mins := int64(d / time.Minute)
	if mins < 0 {
		mins = 0
	}

	switch {
	case mins == 0:
		return "less than a minute"
	case mins == 1:
		return "a minute"
	case mins < 44:
		return fmt.Sprintf("%d minutes", mins)
	case mins < 89:
		return "about an hour"
	case mins < 1439:
		return "about " + plural(roundDiv(mins, 60), "hour")
	case mins < 2519:
		return "about a day"
	case mins < 43199:
		return "about " + plural(roundDiv(mins, 1440), "day")
	case mins < 86399:
		return "about a month"
	case mins < 525599:
		return "about " + plural(roundDiv(mins, 43200), "month")
	default:
		return "more than a year"
	}
}

// roundDiv divides rounding to the nearest whole number
func roundDiv(n, d int64) int64 {
	return (n + d/2) / d
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
