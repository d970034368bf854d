package evaluator

type binding struct {
	value   Value
	mutable bool
}

// env is one lexical environment. Function environments receive var and
// function declarations; block environments only let and const.
type env struct {
	outer    *env
	function bool
	vars     map[string]*binding
}

func newEnv(outer *env, function bool) *env {
	return &env{outer: outer, function: function, vars: make(map[string]*binding)}
}

func (e *env) declare(name string, value Value, mutable bool) {
	e.vars[name] = &binding{value: value, mutable: mutable}
}

// declareVar declares name in the nearest function environment unless it
// already exists there.
func (e *env) declareVar(name string) {
	f := e
	for !f.function && f.outer != nil {
		f = f.outer
	}
	if _, ok := f.vars[name]; !ok {
		f.declare(name, undefinedValue, true)
	}
}

func (e *env) lookup(name string) *binding {
	for s := e; s != nil; s = s.outer {
		if b, ok := s.vars[name]; ok {
			return b
		}
	}
	return nil
}

func (e *env) global() *env {
	g := e
	for g.outer != nil {
		g = g.outer
	}
	return g
}
