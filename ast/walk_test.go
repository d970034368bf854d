package ast_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/generator"
	"github.com/t14raptor/regen/parser"
)

func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

func describe(n ast.Node) string {
	if id, ok := n.(*ast.Identifier); ok {
		return "Identifier(" + id.Name + ")"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

func TestTraverseOrder(t *testing.T) {
	p := mustParse(t, "a = b + c;")

	var enter, leave []string
	ast.Traverse(p, ast.Hooks{
		Enter: func(node, _ ast.Node) { enter = append(enter, describe(node)) },
		Leave: func(node, _ ast.Node) { leave = append(leave, describe(node)) },
	})

	wantEnter := "Program ExpressionStatement AssignExpression Identifier(a) BinaryExpression Identifier(b) Identifier(c)"
	wantLeave := "Identifier(a) Identifier(b) Identifier(c) BinaryExpression AssignExpression ExpressionStatement Program"
	if got := strings.Join(enter, " "); got != wantEnter {
		t.Errorf("enter order\n  got:  %s\n  want: %s", got, wantEnter)
	}
	if got := strings.Join(leave, " "); got != wantLeave {
		t.Errorf("leave order\n  got:  %s\n  want: %s", got, wantLeave)
	}
}

func TestTraverseParents(t *testing.T) {
	p := mustParse(t, "function* g(x) { yield x; }")

	parents := map[string]string{}
	ast.Traverse(p, ast.Hooks{
		Enter: func(node, parent ast.Node) {
			if parent == nil {
				parents[describe(node)] = "<nil>"
				return
			}
			parents[describe(node)] = describe(parent)
		},
	})

	want := map[string]string{
		"Program":             "<nil>",
		"FunctionDeclaration": "Program",
		"FunctionLiteral":     "FunctionDeclaration",
		"Identifier(g)":       "FunctionLiteral",
		"BlockStatement":      "FunctionLiteral",
		"ExpressionStatement": "BlockStatement",
		"YieldExpression":     "ExpressionStatement",
	}
	for node, parent := range want {
		if parents[node] != parent {
			t.Errorf("parent of %s = %s; want %s", node, parents[node], parent)
		}
	}
}

func TestReplaceLeave(t *testing.T) {
	p := mustParse(t, "x = x + f(x);")
	ast.Replace(p, ast.ReplaceHooks{
		Leave: func(node, _ ast.Node) ast.Node {
			if id, ok := node.(*ast.Identifier); ok && id.Name == "x" {
				return &ast.Identifier{Name: "y"}
			}
			return nil
		},
	})
	if got := strings.TrimSpace(generator.Generate(p)); got != "y = y + f(y);" {
		t.Errorf("got %s", got)
	}
}

func TestReplaceEnterVisitsReplacement(t *testing.T) {
	p := mustParse(t, "a;")

	var seen []string
	ast.Replace(p, ast.ReplaceHooks{
		Enter: func(node, _ ast.Node) ast.Node {
			seen = append(seen, describe(node))
			if id, ok := node.(*ast.Identifier); ok && id.Name == "a" {
				return &ast.CallExpression{Callee: &ast.Expression{Expr: &ast.Identifier{Name: "b"}}}
			}
			return nil
		},
	})

	want := "Program ExpressionStatement Identifier(a) Identifier(b)"
	if got := strings.Join(seen, " "); got != want {
		t.Errorf("visited\n  got:  %s\n  want: %s", got, want)
	}
	if got := strings.TrimSpace(generator.Generate(p)); got != "b();" {
		t.Errorf("got %s", got)
	}
}

func TestReplaceStatement(t *testing.T) {
	p := mustParse(t, "function f() { a(); b(); }")
	ast.Replace(p, ast.ReplaceHooks{
		Leave: func(node, _ ast.Node) ast.Node {
			if s, ok := node.(*ast.ExpressionStatement); ok {
				return &ast.ReturnStatement{Argument: s.Expression}
			}
			return nil
		},
	})
	want := "function f() {\n    return a();\n    return b();\n}"
	if got := strings.TrimSpace(generator.Generate(p)); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestReplaceCategoryMismatchPanics(t *testing.T) {
	p := mustParse(t, "a;")
	defer func() {
		if recover() == nil {
			t.Error("replacing an expression with a statement did not panic")
		}
	}()
	ast.Replace(p, ast.ReplaceHooks{
		Leave: func(node, _ ast.Node) ast.Node {
			if _, ok := node.(*ast.Identifier); ok {
				return &ast.EmptyStatement{}
			}
			return nil
		},
	})
}

func TestClone(t *testing.T) {
	src := "var o = {\n    a,\n    b: [1, 'x']\n};\nfunction* g(v) {\n    for (let i = 0; i < 2; i++) {\n        o.a = yield i;\n    }\n}\n"
	p := mustParse(t, src)
	c := p.Clone()

	ast.Traverse(c, ast.Hooks{
		Enter: func(node, _ ast.Node) {
			switch n := node.(type) {
			case *ast.Identifier:
				n.Name += "_"
			case *ast.FunctionLiteral:
				n.Generator = false
			}
		},
	})

	if got := generator.Generate(p); got != src {
		t.Errorf("original changed:\n%s", got)
	}
	if got := generator.Generate(c); !strings.Contains(got, "function g_(v_)") {
		t.Errorf("clone not rewritten:\n%s", got)
	}
}
