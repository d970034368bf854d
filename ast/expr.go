package ast

import "github.com/t14raptor/regen/token"

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it.
	Expression struct {
		Expr `optional:"true"`
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		VisitableNode
		_expr()
	}

	YieldExpression struct {
		Yield    Idx
		Argument *Expression `optional:"true"`
		Delegate bool
	}

	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	// MemberExpression is either a dot access (Property holds an Identifier)
	// or a computed access (Computed is set and Property is any expression).
	MemberExpression struct {
		Object       *Expression
		Property     *Expression
		Computed     bool
		RightBracket Idx
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token
		Idx      Idx // Operator position
		Operand  *Expression
		Postfix  bool
	}
)

func (*ArrayLiteral) _expr()     {}
func (*AssignExpression) _expr() {}
func (*YieldExpression) _expr()  {}
func (*BinaryExpression) _expr() {}
func (*CallExpression) _expr()   {}
func (*MemberExpression) _expr() {}
func (*ObjectLiteral) _expr()    {}
func (*UnaryExpression) _expr()  {}
func (*UpdateExpression) _expr() {}

// Unwrap returns the concrete expression node.
func (e *Expression) Unwrap() Expr {
	if e == nil {
		return nil
	}
	return e.Expr
}

// Yield returns the yield expression held by e, if any.
func (e *Expression) Yield() (*YieldExpression, bool) {
	if e == nil {
		return nil, false
	}
	y, ok := e.Expr.(*YieldExpression)
	return y, ok
}

// Ident returns the identifier held by e, if any.
func (e *Expression) Ident() (*Identifier, bool) {
	if e == nil {
		return nil, false
	}
	id, ok := e.Expr.(*Identifier)
	return id, ok
}

// Func returns the function literal held by e, if any.
func (e *Expression) Func() (*FunctionLiteral, bool) {
	if e == nil {
		return nil, false
	}
	f, ok := e.Expr.(*FunctionLiteral)
	return f, ok
}
