package scanner

import (
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"

	"github.com/t14raptor/regen/token"
)

// Lookup tables for ASCII identifier characters.
var asciiStart, asciiContinue [128]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicodeid.IsIDStartUnicode(chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	// ZWNJ and ZWJ are allowed inside identifiers but are not ID_Continue.
	return unicodeid.IsIDContinueUnicode(chr) || chr == '\u200c' || chr == '\u200d'
}

func (s *Scanner) scanIdentifier() token.Token {
	start := s.src.pos
	r := s.ConsumeRune()
	if !isIdentifierStart(r) {
		s.error(invalidCharacter(r, start, s.src.pos))
		return token.Illegal
	}
	for {
		r, ok := s.PeekRune()
		if !ok || !isIdentifierPart(r) {
			break
		}
		s.ConsumeRune()
	}
	if b, ok := s.PeekByte(); ok && b == '\\' {
		s.ConsumeByte()
		s.error(unsupported("escape in identifier", start, s.src.pos))
		return token.Illegal
	}

	if tkn, _ := token.LiteralKeyword(s.src.FromPositionToCurrent(start)); tkn != 0 {
		return tkn
	}
	return token.Identifier
}
