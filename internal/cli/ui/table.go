package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
)

// WorkingMarker flags the task currently being worked on in a log
const WorkingMarker = "← working"

// NewTable creates a table writing to w with consistent styling
func (p *Printer) NewTable(w io.Writer, headers ...interface{}) table.Table {
	tbl := table.New(headers...)
	tbl.WithWriter(w)

	tbl.WithHeaderFormatter(func(format string, vals ...interface{}) string {
		return p.styles.Header.Render(fmt.Sprintf(format, vals...))
	})

	tbl.WithPadding(2)

	// lipgloss.Width ignores ANSI codes when sizing columns
	tbl.WithWidthFunc(lipgloss.Width)

	return tbl
}
