package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/generator"
	"github.com/t14raptor/regen/parser"
	"github.com/t14raptor/regen/token"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// roundTrip parses code, regenerates it, and returns the output.
func roundTrip(t *testing.T, code string) string {
	t.Helper()
	p := mustParse(t, code)
	return strings.TrimSpace(generator.Generate(p))
}

// assertRoundTrip parses code, regenerates it, and checks that the output
// matches the expected string.
func assertRoundTrip(t *testing.T, code, want string) {
	t.Helper()
	got := roundTrip(t, code)
	if got != want {
		t.Errorf("roundTrip(%q)\n  got:  %s\n  want: %s", code, got, want)
	}
}

// firstStmt returns the concrete statement node from the i-th top-level statement.
func firstStmt(p *ast.Program, i int) ast.Stmt {
	return p.Body[i].Unwrap()
}

// exprOf extracts the inner concrete expression from an ExpressionStatement.
func exprOf(s ast.Stmt) ast.Expr {
	return s.(*ast.ExpressionStatement).Expression.Unwrap()
}

// initializerExpr extracts the initializer expression from the first
// VariableDeclarator of a VariableDeclaration statement.
func initializerExpr(s ast.Stmt) ast.Expr {
	init := s.(*ast.VariableDeclaration).List[0].Initializer
	if init == nil {
		return nil
	}
	return init.Unwrap()
}

// bodyOf extracts the BlockStatement body from a FunctionDeclaration.
func bodyOf(s ast.Stmt) *ast.BlockStatement {
	return s.(*ast.FunctionDeclaration).Function.Body
}

// ===========================================================================
// AST STRUCTURE VERIFICATION TESTS
// ===========================================================================

func TestGeneratorFunctionExpressionAST(t *testing.T) {
	p := mustParse(t, "const g = function* () { yield 'Hello, World!'; }")
	fn, ok := initializerExpr(firstStmt(p, 0)).(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("initializer is %T; want *ast.FunctionLiteral", initializerExpr(firstStmt(p, 0)))
	}
	if !fn.Generator {
		t.Errorf("Generator = false; want true")
	}
	if fn.Name != nil {
		t.Errorf("Name = %v; want nil", fn.Name.Name)
	}
	if got := len(fn.Body.List); got != 1 {
		t.Fatalf("body length = %d; want 1", got)
	}
	y, ok := exprOf(fn.Body.List[0].Stmt).(*ast.YieldExpression)
	if !ok {
		t.Fatalf("statement is %T; want yield", exprOf(fn.Body.List[0].Stmt))
	}
	if y.Delegate {
		t.Errorf("Delegate = true; want false")
	}
	if s, ok := y.Argument.Expr.(*ast.StringLiteral); !ok || s.Value != "Hello, World!" {
		t.Errorf("argument = %#v; want 'Hello, World!'", y.Argument.Expr)
	}
}

func TestGeneratorDeclarationAST(t *testing.T) {
	p := mustParse(t, "function* g(a, b) { x = yield a; var y = yield; return y; }")
	decl, ok := firstStmt(p, 0).(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("statement is %T; want *ast.FunctionDeclaration", firstStmt(p, 0))
	}
	if !decl.Function.Generator || decl.Function.Name.Name != "g" {
		t.Errorf("got generator=%v name=%q; want generator g", decl.Function.Generator, decl.Function.Name.Name)
	}
	if got := len(decl.Function.ParameterList.List); got != 2 {
		t.Errorf("parameter count = %d; want 2", got)
	}

	body := bodyOf(firstStmt(p, 0))
	assign, ok := exprOf(body.List[0].Stmt).(*ast.AssignExpression)
	if !ok {
		t.Fatalf("statement 0 is %T; want assignment", exprOf(body.List[0].Stmt))
	}
	if _, ok := assign.Right.Yield(); !ok {
		t.Errorf("assignment right = %T; want yield", assign.Right.Expr)
	}

	y, ok := initializerExpr(body.List[1].Stmt).(*ast.YieldExpression)
	if !ok {
		t.Fatalf("initializer is %T; want yield", initializerExpr(body.List[1].Stmt))
	}
	if y.Argument != nil {
		t.Errorf("bare yield has argument %T", y.Argument.Expr)
	}
	if _, ok := body.List[2].Stmt.(*ast.ReturnStatement); !ok {
		t.Errorf("statement 2 is %T; want return", body.List[2].Stmt)
	}
}

func TestYieldDelegateAST(t *testing.T) {
	p := mustParse(t, "function* g() { yield* other(); }")
	y := exprOf(bodyOf(firstStmt(p, 0)).List[0].Stmt).(*ast.YieldExpression)
	if !y.Delegate {
		t.Errorf("Delegate = false; want true")
	}
	if _, ok := y.Argument.Expr.(*ast.CallExpression); !ok {
		t.Errorf("argument = %T; want call", y.Argument.Expr)
	}
}

func TestYieldIsIdentifierOutsideGenerators(t *testing.T) {
	p := mustParse(t, "var yield = 1; function* g() { function f() { return yield; } }")
	decl := firstStmt(p, 0).(*ast.VariableDeclaration)
	if decl.List[0].Target.Name != "yield" {
		t.Errorf("target = %q; want yield", decl.List[0].Target.Name)
	}

	outer := bodyOf(firstStmt(p, 1))
	inner := outer.List[0].Stmt.(*ast.FunctionDeclaration).Function
	ret := inner.Body.List[0].Stmt.(*ast.ReturnStatement)
	if id, ok := ret.Argument.Ident(); !ok || id.Name != "yield" {
		t.Errorf("return argument = %T; want identifier yield", ret.Argument.Expr)
	}
}

func TestMemberAndCallAST(t *testing.T) {
	p := mustParse(t, "superagent.get('http://www.google.com'); variables['res'] = 1;")

	call := exprOf(firstStmt(p, 0)).(*ast.CallExpression)
	member := call.Callee.Expr.(*ast.MemberExpression)
	if member.Computed {
		t.Errorf("dot access marked computed")
	}
	if id, _ := member.Property.Ident(); id == nil || id.Name != "get" {
		t.Errorf("property = %#v; want get", member.Property.Expr)
	}
	if got := len(call.ArgumentList); got != 1 {
		t.Errorf("argument count = %d; want 1", got)
	}

	assign := exprOf(firstStmt(p, 1)).(*ast.AssignExpression)
	computed := assign.Left.Expr.(*ast.MemberExpression)
	if !computed.Computed {
		t.Errorf("bracket access not marked computed")
	}
	if s, ok := computed.Property.Expr.(*ast.StringLiteral); !ok || s.Value != "res" {
		t.Errorf("property = %#v; want 'res'", computed.Property.Expr)
	}
}

func TestObjectLiteralAST(t *testing.T) {
	p := mustParse(t, "var o = { a: 1, 'b': 2, 3: c, d }")
	obj := initializerExpr(firstStmt(p, 0)).(*ast.ObjectLiteral)
	if got := len(obj.Value); got != 4 {
		t.Fatalf("property count = %d; want 4", got)
	}
	short := obj.Value[3]
	key, _ := short.Key.Ident()
	value, _ := short.Value.Ident()
	if key == nil || value == nil || key.Name != "d" || value.Name != "d" {
		t.Errorf("shorthand property = %#v: %#v; want d: d", short.Key.Expr, short.Value.Expr)
	}
	if key == value {
		t.Errorf("shorthand key and value share one identifier node")
	}
}

func TestOperatorPrecedenceAST(t *testing.T) {
	p := mustParse(t, "x = a || b && c === d + e * f;")
	assign := exprOf(firstStmt(p, 0)).(*ast.AssignExpression)

	want := []token.Token{token.LogicalOr, token.LogicalAnd, token.StrictEqual, token.Plus, token.Multiply}
	e := assign.Right
	for _, op := range want {
		bin, ok := e.Expr.(*ast.BinaryExpression)
		if !ok {
			t.Fatalf("got %T; want binary %s", e.Expr, op)
		}
		if bin.Operator != op {
			t.Fatalf("operator = %s; want %s", bin.Operator, op)
		}
		e = bin.Right
	}
}

func TestLeftAssociativity(t *testing.T) {
	p := mustParse(t, "x = a - b - c;")
	bin := exprOf(firstStmt(p, 0)).(*ast.AssignExpression).Right.Expr.(*ast.BinaryExpression)
	if _, ok := bin.Left.Expr.(*ast.BinaryExpression); !ok {
		t.Errorf("left operand = %T; want (a - b)", bin.Left.Expr)
	}
	if id, ok := bin.Right.Ident(); !ok || id.Name != "c" {
		t.Errorf("right operand = %T; want c", bin.Right.Expr)
	}
}

func TestUpdateAndUnaryAST(t *testing.T) {
	p := mustParse(t, "i++; --j; x = !typeof y;")

	post := exprOf(firstStmt(p, 0)).(*ast.UpdateExpression)
	if !post.Postfix || post.Operator != token.Increment {
		t.Errorf("i++ parsed as postfix=%v op=%s", post.Postfix, post.Operator)
	}
	pre := exprOf(firstStmt(p, 1)).(*ast.UpdateExpression)
	if pre.Postfix || pre.Operator != token.Decrement {
		t.Errorf("--j parsed as postfix=%v op=%s", pre.Postfix, pre.Operator)
	}
	not := exprOf(firstStmt(p, 2)).(*ast.AssignExpression).Right.Expr.(*ast.UnaryExpression)
	if not.Operator != token.Not {
		t.Errorf("operator = %s; want !", not.Operator)
	}
	if inner := not.Operand.Expr.(*ast.UnaryExpression); inner.Operator != token.Typeof {
		t.Errorf("inner operator = %s; want typeof", inner.Operator)
	}
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	p := mustParse(t, "var a = 1\nvar b = 2\na\n++b\nfunction f() { return }")
	if got := len(p.Body); got != 5 {
		t.Fatalf("statement count = %d; want 5", got)
	}
	if _, ok := exprOf(firstStmt(p, 3)).(*ast.UpdateExpression); !ok {
		t.Errorf("statement 3 = %T; want prefix ++b", exprOf(firstStmt(p, 3)))
	}
	ret := bodyOf(firstStmt(p, 4)).List[0].Stmt.(*ast.ReturnStatement)
	if ret.Argument != nil {
		t.Errorf("return has argument %T", ret.Argument.Expr)
	}
}

func TestComments(t *testing.T) {
	p := mustParse(t, "// leading\nvar a = /* inline */ 1; /* trailing\nblock */")
	if got := len(p.Body); got != 1 {
		t.Fatalf("statement count = %d; want 1", got)
	}
}

func TestOffsets(t *testing.T) {
	p := mustParse(t, "var a = 1;\nfunction* g() {}")
	decl := firstStmt(p, 0).(*ast.VariableDeclaration)
	if got := decl.Idx0(); got != 0 {
		t.Errorf("declaration Idx0 = %d; want 0", got)
	}
	if got := decl.List[0].Target.Idx0(); got != 4 {
		t.Errorf("identifier Idx0 = %d; want 4", got)
	}
	if got := firstStmt(p, 1).Idx0(); got != 11 {
		t.Errorf("function Idx0 = %d; want 11", got)
	}
}

// ===========================================================================
// ERROR TESTS
// ===========================================================================

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		line    int
		column  int
	}{
		{"return outside function", "return 1;", "Illegal return statement", 1, 1},
		{"missing expression", "var a = ;", "Unexpected token ;", 1, 9},
		{"const without initializer", "const a;", "Missing initializer in const declaration", 1, 8},
		{"comma expression", "a, b;", "Comma expressions are not supported", 1, 2},
		{"yield as binding in generator", "function* g() { var yield = 1; }", "Unexpected yield", 1, 21},
		{"reserved word", "class A {}", `Unexpected reserved word "class"`, 1, 1},
		{"break statement", "break;", `Unexpected reserved word "break"`, 1, 1},
		{"switch statement", "switch (a) {}", `Unexpected reserved word "switch"`, 1, 1},
		{"try statement", "try {} catch (e) {}", `Unexpected reserved word "try"`, 1, 1},
		{"reserved word after statement", "a();\ndo {} while (a);", `Unexpected reserved word "do"`, 2, 1},
		{"reserved word in function body", "function f() { break; }", `Unexpected reserved word "break"`, 1, 16},
		{"array hole", "x = [1,,2];", "Array holes are not supported", 1, 8},
		{"invalid assignment target", "1 = 2;", "Invalid left-hand side in assignment", 1, 1},
		{"unnamed declaration", "function () {}", "Function statements require a function name", 1, 10},
		{"unterminated string", "x = 'abc", "Unterminated string", 1, 5},
		{"end of input", "if (a", "Unexpected end of input", 1, 6},
		{"second line", "var a = 1;\nvar b = ;", "Unexpected token ;", 2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseFile(tt.input)
			if err == nil {
				t.Fatalf("ParseFile(%q) succeeded; want error", tt.input)
			}
			var syntaxErr *parser.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("error %v is not a *SyntaxError", err)
			}
			if syntaxErr.Message != tt.message {
				t.Errorf("message = %q; want %q", syntaxErr.Message, tt.message)
			}
			if syntaxErr.Line != tt.line || syntaxErr.Column != tt.column {
				t.Errorf("position = %d:%d; want %d:%d", syntaxErr.Line, syntaxErr.Column, tt.line, tt.column)
			}
		})
	}
}

func TestOnlyFirstErrorReported(t *testing.T) {
	_, err := parser.ParseFile("var = ;\nvar = ;")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := strings.Count(err.Error(), "\n"); got != 0 {
		t.Errorf("error has %d extra lines: %v", got, err)
	}
}

// ===========================================================================
// ROUND TRIP TESTS
// ===========================================================================

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"var", "var a = 1", "var a = 1;"},
		{"raw strings kept", `let x = 'a', y = "b";`, `let x = 'a', y = "b";`},
		{"hex kept", "x = 0x1F;", "x = 0x1F;"},
		{"precedence", "a = b + c * d;", "a = b + c * d;"},
		{"parens needed", "a = (b + c) * d;", "a = (b + c) * d;"},
		{"redundant parens dropped", "a = (b * c) + d;", "a = b * c + d;"},
		{"right operand parens", "x = a - (b - c);", "x = a - (b - c);"},
		{"unary of logical", "x = !(a && b);", "x = !(a && b);"},
		{"typeof", "x = typeof y;", "x = typeof y;"},
		{"void", "x = void 0;", "x = void 0;"},
		{"double negation", "x = - -y;", "x = - -y;"},
		{"update", "i++;", "i++;"},
		{"compound assign", "total += n * 2;", "total += n * 2;"},
		{"member chain", "obj.a.b(c)[d];", "obj.a.b(c)[d];"},
		{"if else", "if (a) b(); else c();", "if (a) {\n    b();\n} else {\n    c();\n}"},
		{"else if", "if (a) {} else if (b) {}", "if (a) {\n} else if (b) {\n}"},
		{"while", "while (x) {}", "while (x) {\n}"},
		{"for", "for (let i = 0; i < 3; i++) f(i);", "for (let i = 0; i < 3; i++) {\n    f(i);\n}"},
		{"empty for", "for (;;) {}", "for (;;) {\n}"},
		{"object", "var o = {a: 1, b};", "var o = {\n    a: 1,\n    b\n};"},
		{"empty object", "var o = {};", "var o = {};"},
		{"array", "var a = [1, 'two', [3]];", "var a = [1, 'two', [3]];"},
		{"iife", "(function () {})();", "(function () {\n})();"},
		{"object statement", "({}).x;", "({}.x);"},
		{"integer member", "(1).x;", "(1).x;"},
		{"integer method call", "x = (10).toString();", "x = (10).toString();"},
		{"decimal member", "x = 1.5.x;", "x = 1.5.x;"},
		{"hex member", "x = 0x1F.x;", "x = 0x1F.x;"},
		{"integer computed member", "x = (1)[0];", "x = 1[0];"},
		{"generator declaration", "function* g(a) { yield a; }", "function* g(a) {\n    yield a;\n}"},
		{"anonymous generator", "var g = function*() { x = yield; };", "var g = function* () {\n    x = yield;\n};"},
		{"delegate", "function* g() { yield* h(); }", "function* g() {\n    yield* h();\n}"},
		{"function expression", "var f = function () { return; };", "var f = function () {\n    return;\n};"},
		{"throw", "throw 'x';", "throw 'x';"},
		{"nested blocks", "function f() { if (a) { return 1; } }", "function f() {\n    if (a) {\n        return 1;\n    }\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRoundTrip(t, tt.code, tt.want)
		})
	}
}

func TestRoundTripIdempotent(t *testing.T) {
	inputs := []string{
		"var a = (1 + 2) * 3, b = a - -1",
		"function* g() { x = yield f(); var y = yield x; return y }",
		"const o = {a, 'b': [1, 2], c: function () { return this_ }}",
		"for (var i = 0; i < n; i++) { while (i) i-- }",
		"x = !a || b && (c || d)",
		"(1).x; y = (20).z(2)",
	}
	for _, code := range inputs {
		first := roundTrip(t, code)
		second := roundTrip(t, first)
		if first != second {
			t.Errorf("not idempotent for %q\n  first:  %s\n  second: %s", code, first, second)
		}
	}
}
