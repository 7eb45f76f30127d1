package ui

import (
	"github.com/aki/ti/internal/report"
)

// LogEntry is the JSON form of a report row
type LogEntry struct {
	Name     string `json:"name"`
	Seconds  int64  `json:"seconds"`
	Duration string `json:"duration"`
	Working  bool   `json:"working"`
}

// PrintLog renders a report as a table, or as JSON
func (p *Printer) PrintLog(rep *report.Report, format OutputFormat) error {
	if format == FormatJSON {
		entries := make([]LogEntry, 0, len(rep.Rows))
		for _, row := range rep.Rows {
			entries = append(entries, LogEntry{
				Name:     row.Name,
				Seconds:  int64(row.Total.Seconds()),
				Duration: report.FormatDuration(row.Total),
				Working:  row.Active,
			})
		}
		return p.JSON(entries)
	}

	if rep.Empty() {
		p.Line("No work logged in this period.")
		return nil
	}

	tbl := p.NewTable(p.out, "TASK", "TIME", "")
	for _, row := range rep.Rows {
		marker := ""
		if row.Active {
			marker = p.styles.Dim.Render(WorkingMarker)
		}
		tbl.AddRow(p.TaskName(row.Name), p.Time(report.FormatDuration(row.Total)), marker)
	}
	tbl.Print()

	if len(rep.Rows) > 1 {
		p.Line("\nTotal: %s", p.Time(report.FormatDuration(rep.Total())))
	}
	return nil
}
