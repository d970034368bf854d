package scanner

import (
	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/token"
)

type Token struct {
	Kind token.Token

	OnNewLine bool
	HasEscape bool

	Idx0, Idx1 ast.Idx
}

// String returns the token's value: the decoded contents of a string
// literal, or the raw text of anything else.
func (t Token) String(s *Scanner) string {
	if t.HasEscape {
		return s.EscapedStr
	}
	raw := s.src.Slice(t.Idx0, t.Idx1)
	if t.Kind == token.String {
		return raw[1 : len(raw)-1]
	}
	return raw
}

func (t Token) Raw(s *Scanner) string {
	return s.src.Slice(t.Idx0, t.Idx1)
}
