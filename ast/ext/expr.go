package ext

import (
	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/token"
)

// IsGlobalRefTo returns true if expr is an identifier named name.
func IsGlobalRefTo(expr *ast.Expression, name string) bool {
	id, ok := expr.Ident()
	return ok && id.Name == name
}

// IsUndefined returns true if expr is a reference to undefined or `void 0`.
func IsUndefined(expr *ast.Expression) bool {
	if expr == nil {
		return false
	}
	if IsGlobalRefTo(expr, "undefined") {
		return true
	}
	u, ok := expr.Expr.(*ast.UnaryExpression)
	if !ok || u.Operator != token.Void {
		return false
	}
	_, lit := u.Operand.Expr.(*ast.NumberLiteral)
	return lit
}

// CalleeName returns the name of a call's callee when it is a plain
// identifier.
func CalleeName(expr *ast.Expression) (string, bool) {
	call, ok := expr.Expr.(*ast.CallExpression)
	if !ok {
		return "", false
	}
	id, ok := call.Callee.Ident()
	if !ok {
		return "", false
	}
	return id.Name, true
}
