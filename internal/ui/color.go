// Package ui renders the diagnostics and summaries printed by the CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	nameStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
	cellStyle = lipgloss.NewStyle().Width(8).Align(lipgloss.Right)
)

var plain bool

// SetColor turns styling on or off for everything the package prints.
func SetColor(enabled bool) {
	plain = !enabled
}

func render(s lipgloss.Style, text string) string {
	if plain {
		return text
	}
	return s.Render(text)
}

func ErrorLine(w io.Writer, err error) {
	fmt.Fprintln(w, render(errStyle, "error")+"  "+err.Error())
}

// WroteLine reports an output file. cached marks output served from the
// cache.
func WroteLine(w io.Writer, path string, cached bool) {
	tag := render(okStyle, "wrote")
	if cached {
		tag = render(dimStyle, "cache")
	}
	fmt.Fprintln(w, tag+"  "+path)
}
