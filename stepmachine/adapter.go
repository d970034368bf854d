package stepmachine

// GeneratorFunction adapts a step function into a factory of generator
// instances. Each Start is what calling the generator function does: it
// returns a fresh instance at step 0.
type GeneratorFunction[V any] struct {
	f StepFunc[V]
}

func New[V any](f StepFunc[V]) *GeneratorFunction[V] {
	return &GeneratorFunction[V]{f: f}
}

// Start returns a new generator instance.
func (g *GeneratorFunction[V]) Start() *Machine[V] {
	return NewMachine(g.f)
}

// Drain advances m with the zero value until a finished result, returning
// every value produced. limit bounds the number of steps; 0 means no bound.
func Drain[V any](m *Machine[V], limit int) ([]V, error) {
	var out []V
	var zero V
	for i := 0; limit == 0 || i < limit; i++ {
		res, err := m.Advance(zero)
		if err != nil {
			return out, err
		}
		if res.Done {
			return out, nil
		}
		out = append(out, res.Value)
	}
	return out, nil
}
