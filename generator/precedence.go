package generator

import (
	"strconv"

	"github.com/t14raptor/regen/ast"
)

// Binding levels used to decide where parentheses are needed. Binary
// operators sit between precAssign and precUnary according to
// token.Precedence.
const (
	precAssign  = 1
	precBinary  = 2
	precUnary   = 14
	precPostfix = 15
	precLHS     = 16
	precCall    = 17
	precPrimary = 18
)

func exprPrecedence(e ast.Expr) int {
	switch e := e.(type) {
	case *ast.AssignExpression, *ast.YieldExpression:
		return precAssign
	case *ast.BinaryExpression:
		return precBinary + e.Operator.Precedence()
	case *ast.UnaryExpression:
		return precUnary
	case *ast.UpdateExpression:
		if e.Postfix {
			return precPostfix
		}
		return precUnary
	case *ast.CallExpression, *ast.MemberExpression:
		return precCall
	}
	return precPrimary
}

// startsStatementAmbiguously reports whether e, printed at the start of a
// statement, would begin with `function` or `{`.
func startsStatementAmbiguously(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.FunctionLiteral, *ast.ObjectLiteral:
			return true
		case *ast.CallExpression:
			if _, ok := n.Callee.Expr.(*ast.FunctionLiteral); ok {
				return false
			}
			e = n.Callee.Expr
		case *ast.MemberExpression:
			e = n.Object.Expr
		case *ast.BinaryExpression:
			e = n.Left.Expr
		case *ast.AssignExpression:
			e = n.Left.Expr
		case *ast.UpdateExpression:
			if !n.Postfix {
				return false
			}
			e = n.Operand.Expr
		default:
			return false
		}
	}
}

func numberText(n *ast.NumberLiteral) string {
	if n.Raw != nil {
		return *n.Raw
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// isIntegerLiteral reports whether e prints as plain decimal digits, where a
// following `.` would be read as a decimal point.
func isIntegerLiteral(e *ast.Expression) bool {
	n, ok := e.Expr.(*ast.NumberLiteral)
	if !ok {
		return false
	}
	for _, c := range numberText(n) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
