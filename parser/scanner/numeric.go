package scanner

import (
	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/token"
)

func isDecimalDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDecimalDigit(b) || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func (s *Scanner) scanNumber() token.Token {
	start := s.src.pos
	first := s.ConsumeByte()

	if first == '0' {
		if b, ok := s.PeekByte(); ok {
			var digit func(byte) bool
			switch b {
			case 'x', 'X':
				digit = isHexDigit
			case 'o', 'O':
				digit = func(b byte) bool { return b >= '0' && b <= '7' }
			case 'b', 'B':
				digit = func(b byte) bool { return b == '0' || b == '1' }
			}
			if digit != nil {
				s.ConsumeByte()
				if n := s.skipDigits(digit); n == 0 {
					s.error(invalidNumberEnd(start, s.src.pos))
					return token.Illegal
				}
				return s.checkNumberEnd(start)
			}
		}
	}

	if first != '.' {
		s.skipDigits(isDecimalDigit)
		if s.AdvanceIfByteEquals('.') {
			s.skipDigits(isDecimalDigit)
		}
	} else {
		s.skipDigits(isDecimalDigit)
	}

	if b, ok := s.PeekByte(); ok && (b == 'e' || b == 'E') {
		s.ConsumeByte()
		if b, ok := s.PeekByte(); ok && (b == '+' || b == '-') {
			s.ConsumeByte()
		}
		if n := s.skipDigits(isDecimalDigit); n == 0 {
			s.error(invalidNumberEnd(start, s.src.pos))
			return token.Illegal
		}
	}
	return s.checkNumberEnd(start)
}

func (s *Scanner) skipDigits(digit func(byte) bool) int {
	n := 0
	for {
		b, ok := s.PeekByte()
		if !ok || !digit(b) {
			return n
		}
		s.ConsumeByte()
		n++
	}
}

func (s *Scanner) checkNumberEnd(start ast.Idx) token.Token {
	if r, ok := s.PeekRune(); ok && (isIdentifierStart(r) || r >= '0' && r <= '9') {
		s.ConsumeRune()
		s.error(invalidNumberEnd(start, s.src.pos))
		return token.Illegal
	}
	return token.Number
}
