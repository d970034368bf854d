package ui

import (
	"fmt"
	"io"

	"github.com/t14raptor/regen/transform/regenerator"
)

// StepsTable prints one row per generator with its yield and step counts.
func StepsTable(w io.Writer, report *regenerator.Report) {
	header := fmt.Sprintf("%-24s%s%s", "generator", cell("yields"), cell("steps"))
	fmt.Fprintln(w, render(dimStyle, header))
	for _, g := range report.Generators {
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("<anonymous@%d>", g.Offset)
		}
		fmt.Fprintf(w, "%s%s%s\n", render(nameStyle, fmt.Sprintf("%-24s", name)), cell(fmt.Sprint(g.Yields)), cell(fmt.Sprint(g.Steps)))
	}
	fmt.Fprintf(w, "%d generators, %d steps\n", len(report.Generators), report.TotalSteps())
}

func cell(text string) string {
	if plain {
		return fmt.Sprintf("%8s", text)
	}
	return cellStyle.Render(text)
}
