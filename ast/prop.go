package ast

type (
	Properties []Property

	// Property is a `key: value` pair of an object literal. Key is an
	// Identifier, StringLiteral or NumberLiteral. Shorthand properties are
	// stored with a copy of the key as Value.
	Property struct {
		Key   *Expression
		Value *Expression
	}
)
