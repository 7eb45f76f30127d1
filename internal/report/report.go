// Package report aggregates sessions into per-task totals over a time window
// and renders durations for humans.
package report

import (
	"sort"
	"time"

	"github.com/aki/ti/internal/sheet"
)

// Row is the total time spent on one task
type Row struct {
	Name  string
	Total time.Duration
	// Active marks the task currently being worked on
	Active bool
}

// Report is a set of per-task totals, largest first
type Report struct {
	Window Window
	Rows   []Row
}

// Total returns the sum of all rows
func (r *Report) Total() time.Duration {
	var total time.Duration
	for _, row := range r.Rows {
		total += row.Total
	}
	return total
}

// Empty reports whether no session overlapped the window
func (r *Report) Empty() bool {
	return len(r.Rows) == 0
}

// FromSheet aggregates the work log and the interrupt stack. Stack entries
// that duplicate a work log entry (same name and start) count once.
func FromSheet(sh *sheet.Sheet, w Window, now time.Time) *Report {
	type key struct {
		name  string
		start time.Time
	}

	all := sh.Sessions()
	seen := make(map[key]bool, len(all))
	sessions := make([]*sheet.Session, 0, len(all))
	for i, s := range all {
		k := key{s.Name, s.Start}
		if i >= len(sh.Work) && seen[k] {
			continue
		}
		seen[k] = true
		sessions = append(sessions, s)
	}

	return Aggregate(sessions, w, now)
}

// Aggregate sums the clipped duration of each session per task name.
// An active session runs until now.
func Aggregate(sessions []*sheet.Session, w Window, now time.Time) *Report {
	totals := make(map[string]time.Duration)
	active := make(map[string]bool)
	var order []string

	for _, s := range sessions {
		start, end, ok := w.Clip(s.Start, s.EndOr(now))
		if !ok {
			continue
		}

		if _, exists := totals[s.Name]; !exists {
			order = append(order, s.Name)
			totals[s.Name] = 0
		}
		if end.After(start) {
			totals[s.Name] += end.Sub(start)
		}
		if s.Active() {
			active[s.Name] = true
		}
	}

	rows := make([]Row, 0, len(order))
	for _, name := range order {
		rows = append(rows, Row{Name: name, Total: totals[name], Active: active[name]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})

	return &Report{Window: w, Rows: rows}
}
