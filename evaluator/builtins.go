package evaluator

import (
	"fmt"
	"strings"

	"github.com/t14raptor/regen/stepmachine"
)

func (in *Interpreter) installBuiltins() {
	in.global.declare("undefined", undefinedValue, false)
	in.global.declare("NaN", NaNValue(), false)

	console := newObject()
	console.Set("log", NativeFunction("log", in.consoleLog))
	in.global.declare("console", objectValue(console), true)

	in.global.declare("generatorResult", NativeFunction("generatorResult", func(args []Value) (Value, error) {
		return resultObject(arg(args, 0), arg(args, 1).bool()), nil
	}), true)
	in.global.declare("GeneratorFunction", NativeFunction("GeneratorFunction", in.generatorFunction), true)
}

func (in *Interpreter) consoleLog(args []Value) (Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = inspect(a, false)
	}
	_, err := fmt.Fprintln(in.stdout, strings.Join(parts, " "))
	return undefinedValue, err
}

func resultObject(v Value, done bool) Value {
	o := newObject()
	o.Set("value", v)
	o.Set("done", boolValue(done))
	return objectValue(o)
}

// generatorFunction implements GeneratorFunction(fn). The returned function
// creates a generator object on every call; its next method runs the step
// of fn matching the number of previous calls.
func (in *Interpreter) generatorFunction(args []Value) (Value, error) {
	fn := arg(args, 0)
	if !fn.IsFunction() {
		return undefinedValue, typeError("GeneratorFunction expects a function, got %s", typeOf(fn))
	}
	gen := stepmachine.New(func(resume Value, step int) (stepmachine.Result[Value], error) {
		out, err := in.Call(fn, resume, float64Value(float64(step)))
		if err != nil {
			return stepmachine.Result[Value]{}, err
		}
		o := out.Object()
		if o == nil {
			return stepmachine.Result[Value]{}, typeError("step %d returned %s instead of a result object", step, inspect(out, true))
		}
		return stepmachine.Result[Value]{Value: o.Get("value"), Done: o.Get("done").bool()}, nil
	})

	name := fn.value.(*Function).Name
	return NativeFunction(name, func([]Value) (Value, error) {
		return generatorObject(gen.Start()), nil
	}), nil
}

func generatorObject(m *stepmachine.Machine[Value]) Value {
	o := newObject()
	o.Set("next", NativeFunction("next", func(args []Value) (Value, error) {
		res, err := m.Advance(arg(args, 0))
		if err != nil {
			return undefinedValue, err
		}
		return resultObject(res.Value, res.Done), nil
	}))
	o.Set("throw", NativeFunction("throw", func(args []Value) (Value, error) {
		return undefinedValue, m.Raise(&ThrowError{Value: arg(args, 0)})
	}))
	return objectValue(o)
}
