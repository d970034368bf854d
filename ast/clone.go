package ast

// Clone returns a deep copy of the program.
func (n *Program) Clone() *Program {
	if n == nil {
		return nil
	}
	return &Program{Body: n.Body.Clone()}
}

func (n Statements) Clone() Statements {
	if n == nil {
		return nil
	}
	out := make(Statements, len(n))
	for i := range n {
		out[i] = *n[i].Clone()
	}
	return out
}

func (n Expressions) Clone() Expressions {
	if n == nil {
		return nil
	}
	out := make(Expressions, len(n))
	for i := range n {
		out[i] = *n[i].Clone()
	}
	return out
}

func (n *Expression) Clone() *Expression {
	if n == nil {
		return nil
	}
	if n.Expr == nil {
		return &Expression{}
	}
	return &Expression{Expr: cloneExpr(n.Expr)}
}

func (n *Statement) Clone() *Statement {
	if n == nil {
		return nil
	}
	if n.Stmt == nil {
		return &Statement{}
	}
	return &Statement{Stmt: cloneStmt(n.Stmt)}
}

func cloneExpr(e Expr) Expr {
	switch e := e.(type) {
	case *ArrayLiteral:
		c := *e
		c.Value = e.Value.Clone()
		return &c
	case *AssignExpression:
		c := *e
		c.Left, c.Right = e.Left.Clone(), e.Right.Clone()
		return &c
	case *BinaryExpression:
		c := *e
		c.Left, c.Right = e.Left.Clone(), e.Right.Clone()
		return &c
	case *BooleanLiteral:
		c := *e
		return &c
	case *CallExpression:
		c := *e
		c.Callee = e.Callee.Clone()
		c.ArgumentList = e.ArgumentList.Clone()
		return &c
	case *FunctionLiteral:
		return e.Clone()
	case *Identifier:
		return e.Clone()
	case *MemberExpression:
		c := *e
		c.Object, c.Property = e.Object.Clone(), e.Property.Clone()
		return &c
	case *NullLiteral:
		c := *e
		return &c
	case *NumberLiteral:
		c := *e
		return &c
	case *ObjectLiteral:
		c := *e
		if e.Value != nil {
			c.Value = make(Properties, len(e.Value))
			for i, p := range e.Value {
				c.Value[i] = Property{Key: p.Key.Clone(), Value: p.Value.Clone()}
			}
		}
		return &c
	case *StringLiteral:
		c := *e
		return &c
	case *UnaryExpression:
		c := *e
		c.Operand = e.Operand.Clone()
		return &c
	case *UpdateExpression:
		c := *e
		c.Operand = e.Operand.Clone()
		return &c
	case *YieldExpression:
		c := *e
		c.Argument = e.Argument.Clone()
		return &c
	}
	panic("ast: clone of unknown expression")
}

func cloneStmt(s Stmt) Stmt {
	switch s := s.(type) {
	case *BlockStatement:
		return s.Clone()
	case *EmptyStatement:
		c := *s
		return &c
	case *ExpressionStatement:
		return &ExpressionStatement{Expression: s.Expression.Clone()}
	case *ForStatement:
		c := *s
		c.Initializer = s.Initializer.Clone()
		c.Test, c.Update = s.Test.Clone(), s.Update.Clone()
		c.Body = s.Body.Clone()
		return &c
	case *FunctionDeclaration:
		return &FunctionDeclaration{Function: s.Function.Clone()}
	case *IfStatement:
		c := *s
		c.Test = s.Test.Clone()
		c.Consequent, c.Alternate = s.Consequent.Clone(), s.Alternate.Clone()
		return &c
	case *ReturnStatement:
		c := *s
		c.Argument = s.Argument.Clone()
		return &c
	case *ThrowStatement:
		c := *s
		c.Argument = s.Argument.Clone()
		return &c
	case *VariableDeclaration:
		c := *s
		c.List = make(VariableDeclarators, len(s.List))
		for i, d := range s.List {
			c.List[i] = VariableDeclarator{Target: d.Target.Clone(), Initializer: d.Initializer.Clone()}
		}
		return &c
	case *WhileStatement:
		c := *s
		c.Test, c.Body = s.Test.Clone(), s.Body.Clone()
		return &c
	}
	panic("ast: clone of unknown statement")
}

func (n *BlockStatement) Clone() *BlockStatement {
	if n == nil {
		return nil
	}
	c := *n
	c.List = n.List.Clone()
	return &c
}

func (n *FunctionLiteral) Clone() *FunctionLiteral {
	if n == nil {
		return nil
	}
	c := *n
	c.Name = n.Name.Clone()
	if n.ParameterList.List != nil {
		c.ParameterList.List = make([]*Identifier, len(n.ParameterList.List))
		for i, p := range n.ParameterList.List {
			c.ParameterList.List[i] = p.Clone()
		}
	}
	c.Body = n.Body.Clone()
	return &c
}

func (n *Identifier) Clone() *Identifier {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}
