package ast

// Idx is a compact encoding of a source position within JS code.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

type Program struct {
	Body Statements
}

func (a *ArrayLiteral) Idx0() Idx      { return a.LeftBracket }
func (y *YieldExpression) Idx0() Idx   { return y.Yield }
func (a *AssignExpression) Idx0() Idx  { return a.Left.Expr.Idx0() }
func (b *BinaryExpression) Idx0() Idx  { return b.Left.Expr.Idx0() }
func (b *BooleanLiteral) Idx0() Idx    { return b.Idx }
func (n *CallExpression) Idx0() Idx    { return n.Callee.Expr.Idx0() }
func (f *FunctionLiteral) Idx0() Idx   { return f.Function }
func (i *Identifier) Idx0() Idx        { return i.Idx }
func (m *MemberExpression) Idx0() Idx  { return m.Object.Expr.Idx0() }
func (n *NullLiteral) Idx0() Idx       { return n.Idx }
func (n *NumberLiteral) Idx0() Idx     { return n.Idx }
func (n *ObjectLiteral) Idx0() Idx     { return n.LeftBrace }
func (n *StringLiteral) Idx0() Idx     { return n.Idx }
func (n *UnaryExpression) Idx0() Idx   { return n.Idx }
func (n *UpdateExpression) Idx0() Idx {
	if n.Postfix {
		return n.Operand.Expr.Idx0()
	}
	return n.Idx
}
func (p *Property) Idx0() Idx { return p.Key.Expr.Idx0() }

func (n *BlockStatement) Idx0() Idx      { return n.LeftBrace }
func (n *EmptyStatement) Idx0() Idx      { return n.Semicolon }
func (n *ExpressionStatement) Idx0() Idx { return n.Expression.Expr.Idx0() }
func (n *ForStatement) Idx0() Idx        { return n.For }
func (n *IfStatement) Idx0() Idx         { return n.If }
func (n *ReturnStatement) Idx0() Idx     { return n.Return }
func (n *ThrowStatement) Idx0() Idx      { return n.Throw }
func (n *WhileStatement) Idx0() Idx      { return n.While }
func (n *VariableDeclaration) Idx0() Idx { return n.Idx }
func (n *FunctionDeclaration) Idx0() Idx { return n.Function.Idx0() }
func (b *VariableDeclarator) Idx0() Idx  { return b.Target.Idx0() }
func (n *Program) Idx0() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[0].Idx0()
}

func (a *ArrayLiteral) Idx1() Idx     { return a.RightBracket + 1 }
func (a *AssignExpression) Idx1() Idx { return a.Right.Expr.Idx1() }
func (b *BinaryExpression) Idx1() Idx { return b.Right.Expr.Idx1() }
func (b *BooleanLiteral) Idx1() Idx {
	if b.Value {
		return b.Idx + 4
	}
	return b.Idx + 5
}
func (n *CallExpression) Idx1() Idx  { return n.RightParenthesis + 1 }
func (f *FunctionLiteral) Idx1() Idx { return f.Body.Idx1() }
func (i *Identifier) Idx1() Idx      { return Idx(int(i.Idx) + len(i.Name)) }
func (m *MemberExpression) Idx1() Idx {
	if m.Computed {
		return m.RightBracket + 1
	}
	return m.Property.Expr.Idx1()
}
func (n *NullLiteral) Idx1() Idx { return n.Idx + 4 } // "null"
func (n *NumberLiteral) Idx1() Idx {
	if n.Raw != nil {
		return Idx(int(n.Idx) + len(*n.Raw))
	}
	return n.Idx + 1
}
func (n *ObjectLiteral) Idx1() Idx { return n.RightBrace + 1 }
func (n *StringLiteral) Idx1() Idx {
	if n.Raw != nil {
		return Idx(int(n.Idx) + len(*n.Raw))
	}
	return Idx(int(n.Idx) + len(n.Value) + 2)
}
func (n *UnaryExpression) Idx1() Idx { return n.Operand.Expr.Idx1() }
func (n *UpdateExpression) Idx1() Idx {
	if n.Postfix {
		return n.Idx + 2 // x++ x--
	}
	return n.Operand.Expr.Idx1()
}
func (y *YieldExpression) Idx1() Idx {
	if y.Argument != nil {
		return y.Argument.Expr.Idx1()
	}
	return y.Yield + 5
}
func (p *Property) Idx1() Idx { return p.Value.Expr.Idx1() }

func (n *BlockStatement) Idx1() Idx      { return n.RightBrace + 1 }
func (n *EmptyStatement) Idx1() Idx      { return n.Semicolon + 1 }
func (n *ExpressionStatement) Idx1() Idx { return n.Expression.Expr.Idx1() }
func (n *ForStatement) Idx1() Idx        { return n.Body.Idx1() }
func (n *IfStatement) Idx1() Idx {
	if n.Alternate != nil {
		return n.Alternate.Idx1()
	}
	return n.Consequent.Idx1()
}
func (n *ReturnStatement) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Expr.Idx1()
	}
	return n.Return + 6
}
func (n *ThrowStatement) Idx1() Idx      { return n.Argument.Expr.Idx1() }
func (n *WhileStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *VariableDeclaration) Idx1() Idx { return n.List[len(n.List)-1].Idx1() }
func (n *FunctionDeclaration) Idx1() Idx { return n.Function.Idx1() }
func (b *VariableDeclarator) Idx1() Idx {
	if b.Initializer != nil {
		return b.Initializer.Expr.Idx1()
	}
	return b.Target.Idx1()
}
func (n *Program) Idx1() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[len(n.Body)-1].Idx1()
}
