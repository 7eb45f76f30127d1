package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aki/ti/internal/sheet"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatPretty represents human-readable output format
	FormatPretty OutputFormat = "pretty"
	// FormatJSON represents JSON output format
	FormatJSON OutputFormat = "json"
)

// ParseFormat converts a string to OutputFormat
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "pretty", "":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Printer writes command output. Color is decided once by the caller and
// passed in rather than read from global state.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	styles Styles
}

// NewPrinter creates a printer writing to out and errOut
func NewPrinter(out, errOut io.Writer, color bool) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
		styles: newStyles(out, color),
	}
}

// Line prints a formatted line to standard output
func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Error prints a formatted line to standard error
func (p *Printer) Error(format string, args ...interface{}) {
	fmt.Fprintln(p.errOut, fmt.Sprintf(format, args...))
}

// JSON writes v as indented JSON
func (p *Printer) JSON(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Started styles the name of a task being started
func (p *Printer) Started(name string) string {
	return p.styles.Started.Render(name)
}

// Stopped styles the name of a task being stopped
func (p *Printer) Stopped(name string) string {
	return p.styles.Stopped.Render(name)
}

// Warn styles a task name in a warning
func (p *Printer) Warn(name string) string {
	return p.styles.Warning.Render(name)
}

// Time styles a duration
func (p *Printer) Time(s string) string {
	return p.styles.Time.Render(s)
}

// TaskName highlights the interrupt marker inside a task name
func (p *Printer) TaskName(name string) string {
	i := strings.Index(name, sheet.InterruptMarker)
	if i < 0 {
		return name
	}
	return name[:i] + p.Started(sheet.InterruptMarker) + name[i+len(sheet.InterruptMarker):]
}
