package regenerator

import "github.com/t14raptor/regen/ast"

// Report describes the generators rewritten by one call to Rewrite, in
// source order with outer generators first.
type Report struct {
	Generators []GeneratorReport
}

type GeneratorReport struct {
	// Name is empty for anonymous generators.
	Name   string
	Offset ast.Idx
	// Yields counts the suspension points.
	Yields int
	// Steps counts the branches of the step function, including the
	// terminal one.
	Steps int
	// ResumeParam and StepParam are the parameter names chosen for the
	// generator.
	ResumeParam string
	StepParam   string
}

// TotalSteps sums Steps over all generators.
func (r *Report) TotalSteps() int {
	n := 0
	for _, g := range r.Generators {
		n += g.Steps
	}
	return n
}
