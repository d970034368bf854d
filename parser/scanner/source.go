package scanner

import (
	"unicode/utf8"

	"github.com/t14raptor/regen/ast"
)

type Source struct {
	str string
	pos ast.Idx
}

func NewSource(src string) Source {
	return Source{str: src}
}

func (s *Source) EOF() bool {
	return int(s.pos) >= len(s.str)
}

func (s *Source) Offset() ast.Idx {
	return s.pos
}

func (s *Source) NextRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.str[s.pos]
	if b < utf8.RuneSelf {
		s.pos++
		return rune(b), true
	}
	r, size := utf8.DecodeRuneInString(s.str[s.pos:])
	s.pos += ast.Idx(size)
	return r, true
}

func (s *Source) PeekRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.str[s.pos]
	if b < utf8.RuneSelf {
		return rune(b), true
	}
	r, _ := utf8.DecodeRuneInString(s.str[s.pos:])
	return r, true
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.str[s.pos]
	s.pos++
	return b, true
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.str[s.pos], true
}

// PeekByteAt returns the byte n bytes ahead of the current position.
func (s *Source) PeekByteAt(n int) (byte, bool) {
	i := int(s.pos) + n
	if i >= len(s.str) {
		return 0, false
	}
	return s.str[i], true
}

func (s *Source) AdvanceIfByteEquals(b byte) bool {
	next, ok := s.PeekByte()
	if ok && next == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.str[pos:s.pos]
}

func (s *Source) Slice(from, to ast.Idx) string {
	return s.str[from:to]
}
