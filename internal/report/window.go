package report

import (
	"fmt"
	"strings"
	"time"
)

// ProcessOffset is the local offset from UTC, captured once at startup so
// every window computed during one invocation agrees.
var ProcessOffset = LocalOffset(time.Now())

// LocalOffset returns the offset of the local zone from UTC at t
func LocalOffset(t time.Time) time.Duration {
	_, offset := t.In(time.Local).Zone()
	return time.Duration(offset) * time.Second
}

// Window is a half-open [Start, End) range of instants. A zero bound is
// unbounded on that side.
type Window struct {
	Start time.Time
	End   time.Time
}

// All is the unbounded window
var All = Window{}

// Clip returns the overlap of [start, end) with the window, and false when
// there is none.
func (w Window) Clip(start, end time.Time) (time.Time, time.Time, bool) {
	if !w.Start.IsZero() {
		if !end.After(w.Start) {
			return time.Time{}, time.Time{}, false
		}
		if start.Before(w.Start) {
			start = w.Start
		}
	}
	if !w.End.IsZero() {
		if !start.Before(w.End) {
			return time.Time{}, time.Time{}, false
		}
		if end.After(w.End) {
			end = w.End
		}
	}
	return start, end, true
}

// Day returns the window covering the local calendar day containing now,
// shifted by days (0 is today, -1 yesterday). Bounds are in UTC.
func Day(now time.Time, offset time.Duration, days int) Window {
	local := now.UTC().Add(offset)
	midnight := time.Date(local.Year(), local.Month(), local.Day()+days, 0, 0, 0, 0, time.UTC)
	start := midnight.Add(-offset)
	return Window{Start: start, End: start.Add(24 * time.Hour)}
}

// Named resolves a period name to a window. Accepted names are
// "today"/"t", "yesterday"/"y" and "all" or empty for everything.
func Named(period string, now time.Time, offset time.Duration) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "", "all", "a":
		return All, nil
	case "today", "t":
		return Day(now, offset, 0), nil
	case "yesterday", "y":
		return Day(now, offset, -1), nil
	default:
		return Window{}, fmt.Errorf("unknown period %q (want today, yesterday or all)", period)
	}
}
