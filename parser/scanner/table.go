package scanner

import (
	"github.com/t14raptor/regen/token"
)

// Next advances to the next token and stores it in s.Token.
func (s *Scanner) Next() {
	s.Token.HasEscape = false
	s.Token.OnNewLine = false

	for {
		s.Token.Idx0 = s.src.pos

		b, ok := s.PeekByte()
		if !ok {
			s.Token.Kind = token.Eof
			break
		}

		switch b {
		case '\t', ' ', 0x0B, 0x0C:
			s.ConsumeByte()
			continue

		case '\n', '\r':
			s.ConsumeByte()
			s.Token.OnNewLine = true
			continue

		case '(':
			s.ConsumeByte()
			s.Token.Kind = token.LeftParenthesis
		case ')':
			s.ConsumeByte()
			s.Token.Kind = token.RightParenthesis
		case ',':
			s.ConsumeByte()
			s.Token.Kind = token.Comma
		case ':':
			s.ConsumeByte()
			s.Token.Kind = token.Colon
		case ';':
			s.ConsumeByte()
			s.Token.Kind = token.Semicolon
		case '[':
			s.ConsumeByte()
			s.Token.Kind = token.LeftBracket
		case ']':
			s.ConsumeByte()
			s.Token.Kind = token.RightBracket
		case '{':
			s.ConsumeByte()
			s.Token.Kind = token.LeftBrace
		case '}':
			s.ConsumeByte()
			s.Token.Kind = token.RightBrace

		case '!':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				if s.AdvanceIfByteEquals('=') {
					s.Token.Kind = token.StrictNotEqual
				} else {
					s.Token.Kind = token.NotEqual
				}
			} else {
				s.Token.Kind = token.Not
			}

		case '%':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.RemainderAssign
			} else {
				s.Token.Kind = token.Remainder
			}

		case '&':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('&') {
				s.Token.Kind = token.LogicalAnd
			} else {
				s.error(unsupported("operator `&`", s.Token.Idx0, s.src.pos))
				s.Token.Kind = token.Illegal
			}

		case '|':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('|') {
				s.Token.Kind = token.LogicalOr
			} else {
				s.error(unsupported("operator `|`", s.Token.Idx0, s.src.pos))
				s.Token.Kind = token.Illegal
			}

		case '*':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.MultiplyAssign
			} else {
				s.Token.Kind = token.Multiply
			}

		case '+':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('+') {
				s.Token.Kind = token.Increment
			} else if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.AddAssign
			} else {
				s.Token.Kind = token.Plus
			}

		case '-':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('-') {
				s.Token.Kind = token.Decrement
			} else if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.SubtractAssign
			} else {
				s.Token.Kind = token.Minus
			}

		case '.':
			if next, ok := s.src.PeekByteAt(1); ok && isDecimalDigit(next) {
				s.Token.Kind = s.scanNumber()
			} else {
				s.ConsumeByte()
				s.Token.Kind = token.Period
			}

		case '/':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('/') {
				s.skipSingleLineComment()
				continue
			}
			if s.AdvanceIfByteEquals('*') {
				if !s.skipMultiLineComment() {
					s.Token.Kind = token.Illegal
					break
				}
				continue
			}
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.QuotientAssign
			} else {
				s.Token.Kind = token.Slash
			}

		case '<':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.LessOrEqual
			} else {
				s.Token.Kind = token.Less
			}

		case '>':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				s.Token.Kind = token.GreaterOrEqual
			} else {
				s.Token.Kind = token.Greater
			}

		case '=':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('=') {
				if s.AdvanceIfByteEquals('=') {
					s.Token.Kind = token.StrictEqual
				} else {
					s.Token.Kind = token.Equal
				}
			} else {
				s.Token.Kind = token.Assign
			}

		case '"', '\'':
			s.Token.Kind = s.scanStringLiteral(b)

		case '`':
			s.ConsumeByte()
			s.error(unsupported("template literal", s.Token.Idx0, s.src.pos))
			s.Token.Kind = token.Illegal

		default:
			switch {
			case isDecimalDigit(b):
				s.Token.Kind = s.scanNumber()
			case b >= 0x80:
				r, _ := s.PeekRune()
				if isLineTerminator(r) {
					s.ConsumeRune()
					s.Token.OnNewLine = true
					continue
				}
				if isWhitespace(r) {
					s.ConsumeRune()
					continue
				}
				s.Token.Kind = s.scanIdentifier()
			case isIdentifierStart(rune(b)):
				s.Token.Kind = s.scanIdentifier()
			default:
				s.ConsumeByte()
				s.error(invalidCharacter(rune(b), s.Token.Idx0, s.src.pos))
				s.Token.Kind = token.Illegal
			}
		}
		break
	}
	s.Token.Idx1 = s.src.pos
}
