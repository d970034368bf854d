// Package stepmachine drives functions produced by the regenerator: a step
// function is called with the value passed to Advance and the number of
// previous calls.
package stepmachine

import "fmt"

// Result is the {value, done} pair returned by a step.
type Result[V any] struct {
	Value V
	Done  bool
}

// StepFunc runs the step with index step, receiving the value the caller
// resumed with.
type StepFunc[V any] func(resume V, step int) (Result[V], error)

// Machine is one generator instance. It is not safe for concurrent use.
type Machine[V any] struct {
	f    StepFunc[V]
	step int
	done bool
}

// NewMachine returns a machine at step 0.
func NewMachine[V any](f StepFunc[V]) *Machine[V] {
	return &Machine[V]{f: f}
}

// Advance runs the current step with resume and moves to the next one. The
// step counter moves even when the step fails.
func (m *Machine[V]) Advance(resume V) (Result[V], error) {
	step := m.step
	m.step++
	res, err := m.f(resume, step)
	if err != nil {
		return res, err
	}
	if res.Done {
		m.done = true
	}
	return res, nil
}

// Raise hands err back to the caller as a *ReraiseError. The generator is
// not resumed and the step counter does not move.
func (m *Machine[V]) Raise(err error) error {
	return &ReraiseError{Err: err, Step: m.step}
}

// Step returns the index of the step the next Advance runs.
func (m *Machine[V]) Step() int {
	return m.step
}

// Done reports whether a finished result has been returned.
func (m *Machine[V]) Done() bool {
	return m.done
}

// ReraiseError is returned by Raise.
type ReraiseError struct {
	Err  error
	Step int
}

func (e *ReraiseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generator raised at step %d", e.Step)
	}
	return fmt.Sprintf("generator raised at step %d: %v", e.Step, e.Err)
}

func (e *ReraiseError) Unwrap() error {
	return e.Err
}
