package evaluator_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/evaluator"
	"github.com/t14raptor/regen/parser"
	"github.com/t14raptor/regen/stepmachine"
	"github.com/t14raptor/regen/transform/regenerator"
)

func compile(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(src)
	require.NoError(t, err)
	_, err = regenerator.Rewrite(p, regenerator.DefaultConfig())
	require.NoError(t, err)
	return p
}

func run(t *testing.T, src string, opts ...evaluator.Option) *evaluator.Interpreter {
	t.Helper()
	in, err := evaluator.Run(compile(t, src), opts...)
	require.NoError(t, err)
	return in
}

func global(t *testing.T, in *evaluator.Interpreter, name string) any {
	t.Helper()
	v, ok := in.Global(name)
	require.True(t, ok, "global %s", name)
	return v.Export()
}

func TestExpressions(t *testing.T) {
	in := run(t, `
var a = 1 + 2 * 3;
let s = 'a' + 1;
const kind = typeof s;
var eq = 1 === 1 && '1' !== 1;
var loose = null == undefined;
var rem = 7 % 4;
var neg = -a;
var none = typeof missing;
var or = 0 || 'fallback';
var trimmed = '\uFEFF 12\t' - 0;
`)
	assert.Equal(t, 7.0, global(t, in, "a"))
	assert.Equal(t, "a1", global(t, in, "s"))
	assert.Equal(t, "string", global(t, in, "kind"))
	assert.Equal(t, true, global(t, in, "eq"))
	assert.Equal(t, true, global(t, in, "loose"))
	assert.Equal(t, 3.0, global(t, in, "rem"))
	assert.Equal(t, -7.0, global(t, in, "neg"))
	assert.Equal(t, "undefined", global(t, in, "none"))
	assert.Equal(t, "fallback", global(t, in, "or"))
	assert.Equal(t, 12.0, global(t, in, "trimmed"))
}

func TestFunctionsAndLoops(t *testing.T) {
	in := run(t, `
var early = answer();
function answer() { return 42; }

function makeCounter() {
  let n = 0;
  return function () {
    n++;
    return n;
  };
}
const next = makeCounter();
next();
var second = next();

var sum = 0;
for (let i = 0; i < 5; i++) {
  sum += i;
}
var j = 3;
while (j > 0) {
  j = j - 1;
}
const list = [];
list[list.length] = 'x';
list[list.length] = 'y';
const obj = { a: 1, b: 'two' };
obj.c = obj.a + 1;
`)
	assert.Equal(t, 42.0, global(t, in, "early"))
	assert.Equal(t, 2.0, global(t, in, "second"))
	assert.Equal(t, 10.0, global(t, in, "sum"))
	assert.Equal(t, 0.0, global(t, in, "j"))
	assert.Equal(t, []any{"x", "y"}, global(t, in, "list"))
	assert.Equal(t, map[string]any{"a": 1.0, "b": "two", "c": 2.0}, global(t, in, "obj"))
}

func TestConsoleLog(t *testing.T) {
	var out bytes.Buffer
	run(t, `console.log('x', 1, [1, 'a'], { a: true }, undefined);`, evaluator.WithStdout(&out))
	assert.Equal(t, "x 1 [ 1, 'a' ] { a: true } undefined\n", out.String())
}

func TestGeneratorObjects(t *testing.T) {
	in := run(t, `
const g = function* () {
  yield 'Hello, World!';
};
const it = g();
const a = it.next();
const b = it.next();
const c = it.next();
`)
	assert.Equal(t, map[string]any{"value": "Hello, World!", "done": false}, global(t, in, "a"))
	assert.Equal(t, map[string]any{"value": nil, "done": true}, global(t, in, "b"))
	assert.Equal(t, map[string]any{"value": nil, "done": true}, global(t, in, "c"))
}

func TestGeneratorResume(t *testing.T) {
	in := run(t, `
var x;
function* echo() {
  x = yield 1;
  return x;
}
const it = echo();
const first = it.next();
const last = it.next(5);
`)
	assert.Equal(t, map[string]any{"value": 1.0, "done": false}, global(t, in, "first"))
	assert.Equal(t, map[string]any{"value": 5.0, "done": true}, global(t, in, "last"))
	assert.Equal(t, 5.0, global(t, in, "x"))
}

func TestGeneratorInstancesAreIndependent(t *testing.T) {
	in := run(t, `
var state = { n: 0 };
const counter = function* () {
  state.n = state.n + 1;
  yield state.n;
  state.n = state.n + 1;
  yield state.n;
};
const it = counter();
const seen = [];
var r = it.next();
while (!r.done) {
  seen[seen.length] = r.value;
  r = it.next();
}
const other = counter().next();
`)
	assert.Equal(t, []any{1.0, 2.0}, global(t, in, "seen"))
	assert.Equal(t, map[string]any{"value": 3.0, "done": false}, global(t, in, "other"))
}

func TestFinishedGeneratorStaysFinished(t *testing.T) {
	var out bytes.Buffer
	in := run(t, `
const trailing = function* () {
  yield 1;
  console.log('after yield');
};
const it = trailing();
const results = [it.next(), it.next(), it.next(), it.next()];

const plain = function* () {
  console.log('body');
};
const p = plain();
p.next();
const again = p.next();
`, evaluator.WithStdout(&out))

	assert.Equal(t, "after yield\nbody\n", out.String())
	assert.Equal(t, []any{
		map[string]any{"value": 1.0, "done": false},
		map[string]any{"value": nil, "done": true},
		map[string]any{"value": nil, "done": true},
		map[string]any{"value": nil, "done": true},
	}, global(t, in, "results"))
	assert.Equal(t, map[string]any{"value": nil, "done": true}, global(t, in, "again"))
}

func TestThrow(t *testing.T) {
	_, err := evaluator.Run(compile(t, `throw 'boom';`))
	var thrown *evaluator.ThrowError
	require.ErrorAs(t, err, &thrown)
	assert.Equal(t, "boom", thrown.Value.Export())
}

func TestGeneratorThrow(t *testing.T) {
	_, err := evaluator.Run(compile(t, `
const g = function* () { yield 1; };
const it = g();
it.throw('stop');
`))
	var reraise *stepmachine.ReraiseError
	require.ErrorAs(t, err, &reraise)
	assert.Equal(t, 0, reraise.Step)

	var thrown *evaluator.ThrowError
	require.ErrorAs(t, err, &thrown)
	assert.Equal(t, "stop", thrown.Value.Export())
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		target error
	}{
		{"undefined name", `missing + 1;`, evaluator.ErrReference},
		{"const assignment", `const a = 1; a = 2;`, evaluator.ErrType},
		{"call non function", `var f = 1; f();`, evaluator.ErrType},
		{"property of undefined", `var o; o.x;`, evaluator.ErrType},
		{"endless recursion", `function f() { return f(); } f();`, evaluator.ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluator.Run(compile(t, tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestUnrewrittenGenerator(t *testing.T) {
	p, err := parser.ParseFile(`const g = function* () { yield 1; }; g();`)
	require.NoError(t, err)

	_, err = evaluator.Run(p)
	require.ErrorIs(t, err, evaluator.ErrType)
	assert.Contains(t, err.Error(), "must be rewritten")
}

func TestCallFromGo(t *testing.T) {
	in := run(t, `function add(a, b) { return a + b; }`)
	add, ok := in.Global("add")
	require.True(t, ok)

	v, err := in.Call(add, evaluator.ToValue(2), evaluator.ToValue(3))
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.Export())

	v, err = in.Call(add, evaluator.ToValue("a"))
	require.NoError(t, err)
	assert.Equal(t, "aundefined", v.Export())
}
