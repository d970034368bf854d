package ast

type VisitableNode interface {
	Node
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

type Visitor interface {
	VisitProgram(node *Program)
	VisitArrayLiteral(node *ArrayLiteral)
	VisitAssignExpression(node *AssignExpression)
	VisitBinaryExpression(node *BinaryExpression)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitCallExpression(node *CallExpression)
	VisitFunctionLiteral(node *FunctionLiteral)
	VisitIdentifier(node *Identifier)
	VisitMemberExpression(node *MemberExpression)
	VisitNullLiteral(node *NullLiteral)
	VisitNumberLiteral(node *NumberLiteral)
	VisitObjectLiteral(node *ObjectLiteral)
	VisitProperty(node *Property)
	VisitStringLiteral(node *StringLiteral)
	VisitUnaryExpression(node *UnaryExpression)
	VisitUpdateExpression(node *UpdateExpression)
	VisitYieldExpression(node *YieldExpression)
	VisitExpressions(node *Expressions)
	VisitStatements(node *Statements)
	VisitExpression(node *Expression)
	VisitStatement(node *Statement)
	VisitBlockStatement(node *BlockStatement)
	VisitEmptyStatement(node *EmptyStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitForStatement(node *ForStatement)
	VisitFunctionDeclaration(node *FunctionDeclaration)
	VisitIfStatement(node *IfStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitThrowStatement(node *ThrowStatement)
	VisitVariableDeclaration(node *VariableDeclaration)
	VisitVariableDeclarator(node *VariableDeclarator)
	VisitWhileStatement(node *WhileStatement)
}

// NoopVisitor visits every node without doing anything. Embed it and set V to
// the embedding visitor so that overridden methods are dispatched to.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(node *Program)                   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrayLiteral(node *ArrayLiteral)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAssignExpression(node *AssignExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinaryExpression(node *BinaryExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBooleanLiteral(node *BooleanLiteral)     {}
func (nv *NoopVisitor) VisitCallExpression(node *CallExpression)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionLiteral(node *FunctionLiteral)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIdentifier(node *Identifier)             {}
func (nv *NoopVisitor) VisitMemberExpression(node *MemberExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNullLiteral(node *NullLiteral)           {}
func (nv *NoopVisitor) VisitNumberLiteral(node *NumberLiteral)       {}
func (nv *NoopVisitor) VisitObjectLiteral(node *ObjectLiteral)       { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperty(node *Property)                 { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStringLiteral(node *StringLiteral)       {}
func (nv *NoopVisitor) VisitUnaryExpression(node *UnaryExpression)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUpdateExpression(node *UpdateExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitYieldExpression(node *YieldExpression)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressions(node *Expressions)           { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatements(node *Statements)             { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpression(node *Expression)             { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatement(node *Statement)               { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBlockStatement(node *BlockStatement)     { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitEmptyStatement(node *EmptyStatement)     {}
func (nv *NoopVisitor) VisitExpressionStatement(node *ExpressionStatement) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitForStatement(node *ForStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionDeclaration(node *FunctionDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitIfStatement(node *IfStatement)         { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitReturnStatement(node *ReturnStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThrowStatement(node *ThrowStatement)   { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclaration(node *VariableDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitVariableDeclarator(node *VariableDeclarator) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitWhileStatement(node *WhileStatement) { node.VisitChildrenWith(nv.V) }

func (n *Program) VisitWith(v Visitor)             { v.VisitProgram(n) }
func (n *ArrayLiteral) VisitWith(v Visitor)        { v.VisitArrayLiteral(n) }
func (n *AssignExpression) VisitWith(v Visitor)    { v.VisitAssignExpression(n) }
func (n *BinaryExpression) VisitWith(v Visitor)    { v.VisitBinaryExpression(n) }
func (n *BooleanLiteral) VisitWith(v Visitor)      { v.VisitBooleanLiteral(n) }
func (n *CallExpression) VisitWith(v Visitor)      { v.VisitCallExpression(n) }
func (n *FunctionLiteral) VisitWith(v Visitor)     { v.VisitFunctionLiteral(n) }
func (n *Identifier) VisitWith(v Visitor)          { v.VisitIdentifier(n) }
func (n *MemberExpression) VisitWith(v Visitor)    { v.VisitMemberExpression(n) }
func (n *NullLiteral) VisitWith(v Visitor)         { v.VisitNullLiteral(n) }
func (n *NumberLiteral) VisitWith(v Visitor)       { v.VisitNumberLiteral(n) }
func (n *ObjectLiteral) VisitWith(v Visitor)       { v.VisitObjectLiteral(n) }
func (n *Property) VisitWith(v Visitor)            { v.VisitProperty(n) }
func (n *StringLiteral) VisitWith(v Visitor)       { v.VisitStringLiteral(n) }
func (n *UnaryExpression) VisitWith(v Visitor)     { v.VisitUnaryExpression(n) }
func (n *UpdateExpression) VisitWith(v Visitor)    { v.VisitUpdateExpression(n) }
func (n *YieldExpression) VisitWith(v Visitor)     { v.VisitYieldExpression(n) }
func (n *Expressions) VisitWith(v Visitor)         { v.VisitExpressions(n) }
func (n *Statements) VisitWith(v Visitor)          { v.VisitStatements(n) }
func (n *Expression) VisitWith(v Visitor)          { v.VisitExpression(n) }
func (n *Statement) VisitWith(v Visitor)           { v.VisitStatement(n) }
func (n *BlockStatement) VisitWith(v Visitor)      { v.VisitBlockStatement(n) }
func (n *EmptyStatement) VisitWith(v Visitor)      { v.VisitEmptyStatement(n) }
func (n *ExpressionStatement) VisitWith(v Visitor) { v.VisitExpressionStatement(n) }
func (n *ForStatement) VisitWith(v Visitor)        { v.VisitForStatement(n) }
func (n *FunctionDeclaration) VisitWith(v Visitor) { v.VisitFunctionDeclaration(n) }
func (n *IfStatement) VisitWith(v Visitor)         { v.VisitIfStatement(n) }
func (n *ReturnStatement) VisitWith(v Visitor)     { v.VisitReturnStatement(n) }
func (n *ThrowStatement) VisitWith(v Visitor)      { v.VisitThrowStatement(n) }
func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }
func (n *VariableDeclarator) VisitWith(v Visitor)  { v.VisitVariableDeclarator(n) }
func (n *WhileStatement) VisitWith(v Visitor)      { v.VisitWhileStatement(n) }

func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	for _, p := range n.ParameterList.List {
		p.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *NullLiteral) VisitChildrenWith(v Visitor) {}

func (n *NumberLiteral) VisitChildrenWith(v Visitor) {}

func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Value {
		n.Value[i].VisitWith(v)
	}
}

func (n *Property) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *YieldExpression) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Expression) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *ForStatement) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	if n.Update != nil {
		n.Update.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Target.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}
