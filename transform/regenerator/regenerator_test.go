package regenerator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/ast/ext"
	"github.com/t14raptor/regen/generator"
	"github.com/t14raptor/regen/parser"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(src)
	require.NoError(t, err)
	return p
}

func rewrite(t *testing.T, src string) (string, *Report) {
	t.Helper()
	p := parse(t, src)
	report, err := Rewrite(p, DefaultConfig())
	require.NoError(t, err)
	return strings.TrimSpace(generator.Generate(p)), report
}

func TestRewrite(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "assigned yield",
			src: `const variables = [];
const generatorFunction = function*() {
  variables['res'] = yield superagent.get('http://www.google.com');
  return variables['res'];
};`,
			want: `const variables = [];
const generatorFunction = GeneratorFunction(function (v, step) {
    if (step === 0) {
        return generatorResult(superagent.get('http://www.google.com'), false);
    }
    if (step === 1) {
        variables['res'] = v;
        return generatorResult(variables['res'], true);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "single yield",
			src:  `const g = function* () { yield 'Hello, World!'; };`,
			want: `const g = GeneratorFunction(function (v, step) {
    if (step === 0) {
        return generatorResult('Hello, World!', false);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "yield then return",
			src:  `var h = function* () { yield f(); return g(); };`,
			want: `var h = GeneratorFunction(function (v, step) {
    if (step === 0) {
        return generatorResult(f(), false);
    }
    if (step === 1) {
        return generatorResult(g(), true);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "declared resume variable",
			src:  `var h = function* () { var x = yield 1; return x; };`,
			want: `var h = GeneratorFunction(function (v, step) {
    if (step === 0) {
        return generatorResult(1, false);
    }
    if (step === 1) {
        var x = v;
        return generatorResult(x, true);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "compound assignment keeps its operator",
			src:  `var h = function* () { total += yield 1; };`,
			want: `var h = GeneratorFunction(function (v, step) {
    if (step === 0) {
        return generatorResult(1, false);
    }
    if (step === 1) {
        total += v;
        return generatorResult(undefined, true);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "bare yield and bare return",
			src:  `var h = function* () { yield; return; };`,
			want: `var h = GeneratorFunction(function (v, step) {
    if (step === 0) {
        return generatorResult(undefined, false);
    }
    if (step === 1) {
        return generatorResult(undefined, true);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "trailing statements get their own step",
			src:  `var h = function* () { yield 1; log(); };`,
			want: `var h = GeneratorFunction(function (v, step) {
    if (step === 0) {
        return generatorResult(1, false);
    }
    if (step === 1) {
        log();
        return generatorResult(undefined, true);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "generator without yields",
			src:  `var h = function* () { log(); };`,
			want: `var h = GeneratorFunction(function (v, step) {
    if (step === 0) {
        log();
        return generatorResult(undefined, true);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "statements after return are dropped",
			src:  `var h = function* () { return 1; log(); };`,
			want: `var h = GeneratorFunction(function (v, step) {
    if (step === 0) {
        return generatorResult(1, true);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "nested return is wrapped without a new step",
			src:  `var h = function* () { if (a) { return 1; } yield 2; };`,
			want: `var h = GeneratorFunction(function (v, step) {
    if (step === 0) {
        if (a) {
            return generatorResult(1, true);
        }
        return generatorResult(2, false);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "plain functions are left alone",
			src:  `var h = function* () { yield function () { return 1; }; };`,
			want: `var h = GeneratorFunction(function (v, step) {
    if (step === 0) {
        return generatorResult(function () {
            return 1;
        }, false);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "nested generators",
			src: `function* outer() {
  yield function* () { yield 1; };
  yield 2;
}`,
			want: `var outer = GeneratorFunction(function outer(v, step) {
    if (step === 0) {
        return generatorResult(GeneratorFunction(function (v, step) {
            if (step === 0) {
                return generatorResult(1, false);
            }
            return generatorResult(undefined, true);
        }), false);
    }
    if (step === 1) {
        return generatorResult(2, false);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "parameter names avoid collisions",
			src:  `var g = function* (v) { x = yield v; return step; };`,
			want: `var g = GeneratorFunction(function (v, v$1, step$1) {
    if (step$1 === 0) {
        return generatorResult(v, false);
    }
    if (step$1 === 1) {
        x = v$1;
        return generatorResult(step, true);
    }
    return generatorResult(undefined, true);
});`,
		},
		{
			name: "no generators",
			src:  `function f() { return 1; }`,
			want: "function f() {\n    return 1;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := rewrite(t, tt.src)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewriteReport(t *testing.T) {
	_, report := rewrite(t, `function* outer() {
  yield function* () { yield 'Hello, World!'; };
  yield 'Hello, World!';
}`)
	require.Len(t, report.Generators, 2)

	outer, inner := report.Generators[0], report.Generators[1]
	assert.Equal(t, "outer", outer.Name)
	assert.Equal(t, 2, outer.Yields)
	assert.Equal(t, 3, outer.Steps)
	assert.Equal(t, ast.Idx(0), outer.Offset)
	assert.Equal(t, "", inner.Name)
	assert.Equal(t, 1, inner.Yields)
	assert.Equal(t, 2, inner.Steps)
	assert.Equal(t, "v", inner.ResumeParam)
	assert.Equal(t, "step", inner.StepParam)
	assert.Equal(t, 5, report.TotalSteps())
}

func TestRewriteReportCountsTrailingStep(t *testing.T) {
	_, report := rewrite(t, `var g = function* () { yield 1; log(); };`)
	require.Len(t, report.Generators, 1)
	assert.Equal(t, 1, report.Generators[0].Yields)
	assert.Equal(t, 3, report.Generators[0].Steps)
}

// Every boundary gets one branch and the terminal branch comes last.
func TestRewriteBranchCount(t *testing.T) {
	for k := 1; k <= 4; k++ {
		src := "var g = function* () {" + strings.Repeat(" yield 1;", k) + " };"
		p := parse(t, src)
		_, err := Rewrite(p, DefaultConfig())
		require.NoError(t, err)

		fn, ok := p.Body[0].Stmt.(*ast.VariableDeclaration).List[0].Initializer.Expr.(*ast.CallExpression).ArgumentList[0].Func()
		require.True(t, ok)
		assert.False(t, fn.Generator)
		assert.Len(t, fn.ParameterList.List, 2)

		body := fn.Body.List
		require.Len(t, body, k+1)
		for i, s := range body[:k] {
			_, isIf := s.Stmt.(*ast.IfStatement)
			assert.True(t, isIf, "statement %d", i)
		}
		_, isReturn := body[k].Stmt.(*ast.ReturnStatement)
		assert.True(t, isReturn)
	}
}

func TestRewriteOutputReparses(t *testing.T) {
	first, _ := rewrite(t, `var g = function* (a) { x = yield a; var y = yield x + 1; return y; };`)

	p := parse(t, first)
	assert.Empty(t, ext.Generators(p))
	assert.Equal(t, first, strings.TrimSpace(generator.Generate(p)))

	again, report := rewrite(t, first)
	assert.Equal(t, first, again)
	assert.Empty(t, report.Generators)
}

func TestCustomConfig(t *testing.T) {
	p := parse(t, `var g = function* () { yield 1; };`)
	_, err := Rewrite(p, Config{Adapter: "wrap", Result: "res", ResumeParam: "input", StepParam: "index"})
	require.NoError(t, err)

	want := `var g = wrap(function (input, index) {
    if (index === 0) {
        return res(1, false);
    }
    return res(undefined, true);
});`
	assert.Equal(t, want, strings.TrimSpace(generator.Generate(p)))
}

func TestInvalidConfig(t *testing.T) {
	for _, cfg := range []Config{
		{Adapter: "1wrap"},
		{Result: "gen-result"},
		{ResumeParam: "var"},
		{ResumeParam: "x", StepParam: "x"},
	} {
		_, err := Rewrite(parse(t, `1;`), cfg)
		assert.Error(t, err, "%+v", cfg)
	}
}

func TestUnsupportedConstructs(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		construct string
		offset    ast.Idx
	}{
		{"while", `function* g() { while (a) { yield 1; } }`, "yield inside a while loop", 28},
		{"if", `function* g() { if (a) yield 1; }`, "yield inside an if statement", 23},
		{"for", `function* g() { for (;;) { yield 1; } }`, "yield inside a for loop", 27},
		{"block", `function* g() { { yield 1; } }`, "yield inside a nested block", 18},
		{"call argument", `function* g() { f(yield 1); }`, "yield inside an expression", 18},
		{"nested yield", `function* g() { yield (yield 1); }`, "yield inside an expression", 23},
		{"declaration list", `function* g() { var a = yield 1, b; }`, "yield inside an expression", 24},
		{"delegation", `function* g() { yield* h(); }`, "yield* delegation", 16},
		{"nested generator", `function* g() { yield 1; var h = function* () { if (a) { yield 2; } }; }`, "yield inside an if statement", 57},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parse(t, tt.src)
			before := generator.Generate(p)

			_, err := Rewrite(p, DefaultConfig())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedConstruct))

			var unsupported *UnsupportedConstructError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.construct, unsupported.Construct)
			assert.Equal(t, tt.offset, unsupported.Offset)

			assert.Equal(t, before, generator.Generate(p), "tree modified on failure")
		})
	}
}

func TestRewriteContextIsolation(t *testing.T) {
	a := parse(t, `var g = function* () { yield 1; };`)
	b := a.Clone()

	ctx, err := NewRewriteContext(DefaultConfig())
	require.NoError(t, err)
	_, err = ctx.Rewrite(a)
	require.NoError(t, err)

	assert.Len(t, ext.Generators(b), 1, "clone is unaffected by rewriting the original")
	report, err := Rewrite(b, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, generator.Generate(a), generator.Generate(b))
	assert.Equal(t, 2, report.TotalSteps())
}
