package ast

import "github.com/t14raptor/regen/token"

type (
	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	VariableDeclaration struct {
		List VariableDeclarators

		Idx   Idx
		Token token.Token
	}

	VariableDeclarators []VariableDeclarator

	VariableDeclarator struct {
		Target      *Identifier
		Initializer *Expression `optional:"true"`
	}
)

func (*FunctionDeclaration) _stmt() {}
func (*VariableDeclaration) _stmt() {}
