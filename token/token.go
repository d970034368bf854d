package token

import (
	"strconv"
)

// Token is the set of lexical tokens of the supported JavaScript subset.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding power of a binary operator, or 0 when t is
// not a binary operator.
func (t Token) Precedence() int {
	switch t {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case Equal,
		NotEqual,
		StrictEqual,
		StrictNotEqual:
		return 6
	case Less, Greater, LessOrEqual, GreaterOrEqual:
		return 7
	case Plus, Minus:
		return 9
	case Multiply, Slash, Remainder:
		return 11
	}
	return 0
}

// IsAssign reports whether t is an assignment operator.
func (t Token) IsAssign() bool {
	switch t {
	case Assign, AddAssign, SubtractAssign, MultiplyAssign, QuotientAssign, RemainderAssign:
		return true
	}
	return false
}

// BinaryOf returns the binary operator a compound assignment applies, e.g.
// Plus for AddAssign. It returns 0 for plain Assign.
func (t Token) BinaryOf() Token {
	switch t {
	case AddAssign:
		return Plus
	case SubtractAssign:
		return Minus
	case MultiplyAssign:
		return Multiply
	case QuotientAssign:
		return Slash
	case RemainderAssign:
		return Remainder
	}
	return 0
}

// keyword ...
type keyword struct {
	token Token
	// contextual keywords (let, yield) are identifiers in some positions.
	contextual bool
	// reserved words are rejected by the parser.
	reserved bool
}

// LiteralKeyword returns the keyword token if literal is a keyword. Reserved
// words outside of the supported subset come back as Keyword. The boolean is
// true for contextual keywords that may also be used as identifiers.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		return k.token, k.contextual
	}
	return 0, false
}

// IsKeyword reports whether literal can never be used as an identifier.
func IsKeyword(literal string) bool {
	k, exists := keywordTable[literal]
	return exists && !k.contextual
}

// ID ...
func ID(token Token) bool {
	return token == Identifier || token == Let || token == Yield
}
