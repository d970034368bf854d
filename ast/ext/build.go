// Package ext holds helpers for building and inspecting syntax trees.
// Synthesized nodes carry no source position.
package ext

import (
	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/token"
)

// Ident returns an identifier expression.
func Ident(name string) *ast.Expression {
	return &ast.Expression{Expr: &ast.Identifier{Name: name}}
}

// Str returns a single quoted string literal.
func Str(value string) *ast.Expression {
	return &ast.Expression{Expr: &ast.StringLiteral{Value: value}}
}

// Num returns a number literal.
func Num(value float64) *ast.Expression {
	return &ast.Expression{Expr: &ast.NumberLiteral{Value: value}}
}

// Bool returns a boolean literal.
func Bool(value bool) *ast.Expression {
	return &ast.Expression{Expr: &ast.BooleanLiteral{Value: value}}
}

// Undefined returns a reference to the global undefined.
func Undefined() *ast.Expression {
	return Ident("undefined")
}

// Call returns callee(args...).
func Call(callee *ast.Expression, args ...*ast.Expression) *ast.Expression {
	list := make(ast.Expressions, len(args))
	for i, a := range args {
		list[i] = *a
	}
	return &ast.Expression{Expr: &ast.CallExpression{Callee: callee, ArgumentList: list}}
}

// Assign returns left = right.
func Assign(left, right *ast.Expression) *ast.Expression {
	return &ast.Expression{Expr: &ast.AssignExpression{Operator: token.Assign, Left: left, Right: right}}
}

// StrictEq returns left === right.
func StrictEq(left, right *ast.Expression) *ast.Expression {
	return &ast.Expression{Expr: &ast.BinaryExpression{Operator: token.StrictEqual, Left: left, Right: right}}
}

// ExprStmt wraps an expression into a statement.
func ExprStmt(e *ast.Expression) ast.Statement {
	return ast.Statement{Stmt: &ast.ExpressionStatement{Expression: e}}
}

// Return returns `return arg;`. arg may be nil.
func Return(arg *ast.Expression) *ast.ReturnStatement {
	return &ast.ReturnStatement{Argument: arg}
}

// Block returns a block holding list.
func Block(list ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{List: list}
}

// If returns `if (test) { list }`.
func If(test *ast.Expression, list ...ast.Statement) ast.Statement {
	return ast.Statement{Stmt: &ast.IfStatement{
		Test:       test,
		Consequent: &ast.Statement{Stmt: Block(list...)},
	}}
}

// Var returns `kind name = init;`.
func Var(kind token.Token, name string, init *ast.Expression) ast.Statement {
	return ast.Statement{Stmt: &ast.VariableDeclaration{
		Token: kind,
		List:  ast.VariableDeclarators{{Target: &ast.Identifier{Name: name}, Initializer: init}},
	}}
}
