// Package scanner turns source text into tokens for the parser.
package scanner

import (
	"github.com/t14raptor/regen/ast"
)

type Scanner struct {
	Token Token

	// EscapedStr holds the decoded value of the current token when
	// Token.HasEscape is set.
	EscapedStr string

	// Err is the first error met while scanning. Scanning stops reporting
	// further errors once it is set.
	Err *Error

	src Source
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: NewSource(src)}
}

type Checkpoint struct {
	pos     ast.Idx
	tok     Token
	escaped string
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{pos: s.src.pos, tok: s.Token, escaped: s.EscapedStr}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.src.pos = c.pos
	s.Token = c.tok
	s.EscapedStr = c.escaped
}

func (s *Scanner) Offset() ast.Idx {
	return s.src.Offset()
}

// Slice returns the source text between two offsets.
func (s *Scanner) Slice(from, to ast.Idx) string {
	return s.src.Slice(from, to)
}

func (s *Scanner) ConsumeRune() rune {
	r, _ := s.src.NextRune()
	return r
}

func (s *Scanner) ConsumeByte() byte {
	b, _ := s.src.NextByte()
	return b
}

func (s *Scanner) PeekRune() (rune, bool) {
	return s.src.PeekRune()
}

func (s *Scanner) PeekByte() (byte, bool) {
	return s.src.PeekByte()
}

func (s *Scanner) AdvanceIfByteEquals(b byte) bool {
	return s.src.AdvanceIfByteEquals(b)
}

func (s *Scanner) error(err Error) {
	if s.Err == nil {
		s.Err = &err
	}
}
