// Package ui provides styling and output functions for the CLI.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used for output
type Styles struct {
	Started lipgloss.Style
	Stopped lipgloss.Style
	Warning lipgloss.Style
	Time    lipgloss.Style
	Dim     lipgloss.Style
	Header  lipgloss.Style
}

// newStyles builds styles bound to a renderer for w. With color disabled
// every style renders plain text.
func newStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Started: r.NewStyle().Foreground(lipgloss.Color("2")),
		Stopped: r.NewStyle().Foreground(lipgloss.Color("1")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		Time:    r.NewStyle().Foreground(lipgloss.Color("4")),
		Dim:     r.NewStyle().Foreground(lipgloss.Color("8")),
		Header:  r.NewStyle().Bold(color),
	}
}
