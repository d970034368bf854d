package regenerator

import (
	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/ast/ext"
)

// validate rejects generators whose yields cannot be split into steps. A
// yield is supported only as a whole top level statement of its generator:
//
//	yield e;
//	x = yield e;
//	var x = yield e;
func validate(p *ast.Program) error {
	for _, fn := range ext.Generators(p) {
		for i := range fn.Body.List {
			if err := validateStatement(&fn.Body.List[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateStatement(stmt *ast.Statement) error {
	y := ext.FirstYield(stmt)
	if y == nil {
		return nil
	}
	if y.Delegate {
		return unsupported("yield* delegation", y)
	}

	if arg := suspensionArgument(stmt); arg != nil {
		if arg.Argument == nil {
			return nil
		}
		if inner := ext.FirstYield(arg.Argument); inner != nil {
			return unsupported("yield inside an expression", inner)
		}
		return nil
	}

	switch stmt.Stmt.(type) {
	case *ast.IfStatement:
		return unsupported("yield inside an if statement", y)
	case *ast.WhileStatement:
		return unsupported("yield inside a while loop", y)
	case *ast.ForStatement:
		return unsupported("yield inside a for loop", y)
	case *ast.BlockStatement:
		return unsupported("yield inside a nested block", y)
	}
	return unsupported("yield inside an expression", y)
}

// suspensionArgument returns the yield of a statement in one of the
// supported suspension forms.
func suspensionArgument(stmt *ast.Statement) *ast.YieldExpression {
	switch s := stmt.Stmt.(type) {
	case *ast.ExpressionStatement:
		if y, ok := s.Expression.Yield(); ok {
			return y
		}
		if a, ok := s.Expression.Expr.(*ast.AssignExpression); ok {
			if y, ok := a.Right.Yield(); ok && ext.FirstYield(a.Left) == nil {
				return y
			}
		}
	case *ast.VariableDeclaration:
		if len(s.List) == 1 {
			if y, ok := s.List[0].Initializer.Yield(); ok {
				return y
			}
		}
	}
	return nil
}

func unsupported(construct string, at *ast.YieldExpression) error {
	return &UnsupportedConstructError{Construct: construct, Offset: at.Idx0()}
}
