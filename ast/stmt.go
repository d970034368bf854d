package ast

type (
	Statements []Statement

	Statement struct {
		Stmt `optional:"true"`
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		VisitableNode
		_stmt()
	}

	BlockStatement struct {
		LeftBrace  Idx
		List       Statements
		RightBrace Idx
	}

	EmptyStatement struct {
		Semicolon Idx
	}

	ExpressionStatement struct {
		Expression *Expression
	}

	IfStatement struct {
		If         Idx
		Test       *Expression
		Consequent *Statement
		Alternate  *Statement `optional:"true"`
	}

	ReturnStatement struct {
		Return   Idx
		Argument *Expression `optional:"true"`
	}

	ThrowStatement struct {
		Throw    Idx
		Argument *Expression
	}

	WhileStatement struct {
		While Idx
		Test  *Expression
		Body  *Statement
	}

	// ForStatement is a classic three-clause loop. Initializer holds either a
	// *VariableDeclaration or an *ExpressionStatement.
	ForStatement struct {
		For         Idx
		Initializer *Statement  `optional:"true"`
		Test        *Expression `optional:"true"`
		Update      *Expression `optional:"true"`
		Body        *Statement
	}
)

func (*BlockStatement) _stmt()      {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*ForStatement) _stmt()        {}
func (*IfStatement) _stmt()         {}
func (*ReturnStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*WhileStatement) _stmt()      {}

// Unwrap returns the concrete statement node.
func (s *Statement) Unwrap() Stmt {
	if s == nil {
		return nil
	}
	return s.Stmt
}
