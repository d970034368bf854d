// Package generator prints syntax trees back to source text.
package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/token"
)

// Generate returns the source text for node. Statements are printed one per
// line with four space indentation. The tree is not modified.
func Generate(node ast.Node) string {
	s := newState(node)
	gen(s)
	return s.out.String()
}

// genExpr prints e, parenthesized when it binds looser than minPrecedence.
func genExpr(s *state, e *ast.Expression, minPrecedence int) {
	if e == nil || e.Expr == nil {
		return
	}
	if exprPrecedence(e.Expr) < minPrecedence {
		s.out.WriteString("(")
		gen(s.wrap(e.Expr))
		s.out.WriteString(")")
		return
	}
	gen(s.wrap(e.Expr))
}

func genList(s *state, list ast.Expressions) {
	for i := range list {
		if i > 0 {
			s.out.WriteString(", ")
		}
		genExpr(s, &list[i], precAssign)
	}
}

// genBody prints the body of a compound statement, always as a block.
func genBody(s *state, body *ast.Statement) {
	switch body.Stmt.(type) {
	case *ast.BlockStatement, *ast.EmptyStatement:
		gen(s.wrap(body.Stmt))
	default:
		s.out.WriteString("{")
		s.indent++
		s.lineAndPad()
		gen(s.wrap(body.Stmt))
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	}
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.ArrayLiteral:
		s.out.WriteString("[")
		genList(s, n.Value)
		s.out.WriteString("]")
	case *ast.AssignExpression:
		genExpr(s, n.Left, precLHS)
		s.out.WriteString(" " + n.Operator.String() + " ")
		genExpr(s, n.Right, precAssign)
	case *ast.BinaryExpression:
		prec := exprPrecedence(n)
		genExpr(s, n.Left, prec)
		s.out.WriteString(" " + n.Operator.String() + " ")
		genExpr(s, n.Right, prec+1)
	case *ast.BlockStatement:
		s.out.WriteString("{")

		s.indent++
		for _, st := range n.List {
			s.lineAndPad()
			gen(s.wrap(st.Stmt))
		}
		s.indent--

		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.BooleanLiteral:
		s.out.WriteString(strconv.FormatBool(n.Value))
	case *ast.CallExpression:
		if _, ok := n.Callee.Expr.(*ast.FunctionLiteral); ok {
			s.out.WriteString("(")
			gen(s.wrap(n.Callee.Expr))
			s.out.WriteString(")")
		} else {
			genExpr(s, n.Callee, precCall)
		}
		s.out.WriteString("(")
		genList(s, n.ArgumentList)
		s.out.WriteString(")")
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		if startsStatementAmbiguously(n.Expression.Expr) {
			s.out.WriteString("(")
			gen(s.wrap(n.Expression.Expr))
			s.out.WriteString(")")
		} else {
			gen(s.wrap(n.Expression.Expr))
		}
		s.out.WriteString(";")
	case *ast.ForStatement:
		s.out.WriteString("for (")
		if n.Initializer != nil {
			gen(s.wrap(n.Initializer.Stmt))
		}
		s.out.WriteString(";")
		if n.Test != nil {
			s.out.WriteString(" ")
			genExpr(s, n.Test, 0)
		}
		s.out.WriteString(";")
		if n.Update != nil {
			s.out.WriteString(" ")
			genExpr(s, n.Update, 0)
		}
		s.out.WriteString(") ")
		genBody(s, n.Body)
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))
	case *ast.FunctionLiteral:
		s.out.WriteString("function")
		if n.Generator {
			s.out.WriteString("*")
		}
		s.out.WriteString(" ")
		if n.Name != nil {
			s.out.WriteString(n.Name.Name)
		}
		s.out.WriteString("(")
		for i, p := range n.ParameterList.List {
			if i > 0 {
				s.out.WriteString(", ")
			}
			s.out.WriteString(p.Name)
		}
		s.out.WriteString(") ")
		gen(s.wrap(n.Body))
	case *ast.Identifier:
		s.out.WriteString(n.Name)
	case *ast.IfStatement:
		s.out.WriteString("if (")
		genExpr(s, n.Test, 0)
		s.out.WriteString(") ")
		genBody(s, n.Consequent)

		if n.Alternate != nil {
			s.out.WriteString(" else ")
			if _, ok := n.Alternate.Stmt.(*ast.IfStatement); ok {
				gen(s.wrap(n.Alternate.Stmt))
			} else {
				genBody(s, n.Alternate)
			}
		}
	case *ast.MemberExpression:
		if !n.Computed && isIntegerLiteral(n.Object) {
			s.out.WriteString("(")
			genExpr(s, n.Object, 0)
			s.out.WriteString(")")
		} else {
			genExpr(s, n.Object, precCall)
		}
		if n.Computed {
			s.out.WriteString("[")
			genExpr(s, n.Property, 0)
			s.out.WriteString("]")
		} else {
			s.out.WriteString(".")
			gen(s.wrap(n.Property.Expr))
		}
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.NumberLiteral:
		s.out.WriteString(numberText(n))
	case *ast.ObjectLiteral:
		if len(n.Value) == 0 {
			s.out.WriteString("{}")
			break
		}
		s.out.WriteString("{")

		s.indent++
		for i := range n.Value {
			s.lineAndPad()
			gen(s.wrap(&n.Value[i]))
			if i < len(n.Value)-1 {
				s.out.WriteString(",")
			}
		}
		s.indent--

		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.Property:
		key, kok := n.Key.Ident()
		value, vok := n.Value.Ident()
		if kok && vok && key.Name == value.Name {
			s.out.WriteString(key.Name)
			break
		}
		gen(s.wrap(n.Key.Expr))
		s.out.WriteString(": ")
		genExpr(s, n.Value, precAssign)
	case *ast.Program:
		for _, b := range n.Body {
			gen(s.wrap(b.Stmt))
			s.line()
		}
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			genExpr(s, n.Argument, 0)
		}
		s.out.WriteString(";")
	case *ast.StringLiteral:
		if n.Raw != nil {
			s.out.WriteString(*n.Raw)
		} else {
			s.out.WriteString(quote(n.Value))
		}
	case *ast.ThrowStatement:
		s.out.WriteString("throw ")
		genExpr(s, n.Argument, 0)
		s.out.WriteString(";")
	case *ast.UnaryExpression:
		op := n.Operator.String()
		s.out.WriteString(op)
		switch n.Operator {
		case token.Typeof, token.Void:
			s.out.WriteString(" ")
		case token.Plus, token.Minus:
			if needsSpace(n.Operator, n.Operand.Expr) {
				s.out.WriteString(" ")
			}
		}
		genExpr(s, n.Operand, precUnary)
	case *ast.UpdateExpression:
		if n.Postfix {
			genExpr(s, n.Operand, precLHS)
			s.out.WriteString(n.Operator.String())
		} else {
			s.out.WriteString(n.Operator.String())
			genExpr(s, n.Operand, precUnary)
		}
	case *ast.VariableDeclaration:
		s.out.WriteString(n.Token.String())
		s.out.WriteString(" ")
		for i := range n.List {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(&n.List[i]))
		}
		if _, inFor := s.parentNode().(*ast.ForStatement); !inFor {
			s.out.WriteString(";")
		}
	case *ast.VariableDeclarator:
		s.out.WriteString(n.Target.Name)
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			genExpr(s, n.Initializer, precAssign)
		}
	case *ast.WhileStatement:
		s.out.WriteString("while (")
		genExpr(s, n.Test, 0)
		s.out.WriteString(") ")
		genBody(s, n.Body)
	case *ast.YieldExpression:
		s.out.WriteString("yield")
		if n.Delegate {
			s.out.WriteString("*")
		}
		if n.Argument != nil {
			s.out.WriteString(" ")
			genExpr(s, n.Argument, precAssign)
		}
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

// needsSpace keeps `- -x` and `+ ++x` from fusing into other tokens.
func needsSpace(op token.Token, operand ast.Expr) bool {
	switch o := operand.(type) {
	case *ast.UnaryExpression:
		return o.Operator == op
	case *ast.UpdateExpression:
		if o.Postfix {
			return false
		}
		return op == token.Plus && o.Operator == token.Increment ||
			op == token.Minus && o.Operator == token.Decrement
	}
	return false
}

// quote returns a single quoted string literal for s.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
