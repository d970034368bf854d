package scanner

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/token"
)

func (s *Scanner) scanStringLiteral(delim byte) token.Token {
	start := s.src.pos
	s.ConsumeByte()
	afterOpen := s.src.pos

	for {
		b, ok := s.PeekByte()
		switch {
		case !ok, b == '\n', b == '\r':
			s.error(unterminatedString(start, s.src.pos))
			return token.Illegal
		case b == delim:
			s.ConsumeByte()
			return token.String
		case b == '\\':
			return s.scanStringLiteralEscaped(delim, start, afterOpen)
		}
		s.ConsumeByte()
	}
}

func (s *Scanner) scanStringLiteralEscaped(delim byte, start, afterOpen ast.Idx) token.Token {
	str := &strings.Builder{}
	str.WriteString(s.src.FromPositionToCurrent(afterOpen))

	for {
		b, ok := s.PeekByte()
		switch {
		case !ok, b == '\n', b == '\r':
			s.error(unterminatedString(start, s.src.pos))
			return token.Illegal
		case b == delim:
			s.ConsumeByte()
			s.EscapedStr = str.String()
			s.Token.HasEscape = true
			return token.String
		case b == '\\':
			escStart := s.src.pos
			s.ConsumeByte()
			if !s.readStringEscapeSequence(str) {
				s.error(invalidEscapeSequence(escStart, s.src.pos))
				return token.Illegal
			}
		default:
			str.WriteRune(s.ConsumeRune())
		}
	}
}

// readStringEscapeSequence decodes the escape following a backslash.
func (s *Scanner) readStringEscapeSequence(str *strings.Builder) bool {
	r, ok := s.src.NextRune()
	if !ok {
		return false
	}
	switch r {
	case 'n':
		str.WriteByte('\n')
	case 't':
		str.WriteByte('\t')
	case 'r':
		str.WriteByte('\r')
	case 'b':
		str.WriteByte('\b')
	case 'f':
		str.WriteByte('\f')
	case 'v':
		str.WriteByte('\v')
	case '0':
		if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
			return false
		}
		str.WriteByte(0)
	case '\r':
		// Line continuation.
		s.AdvanceIfByteEquals('\n')
	case '\n', '\u2028', '\u2029':
	case 'x':
		v, ok := s.readHex(2)
		if !ok {
			return false
		}
		str.WriteRune(rune(v))
	case 'u':
		var v uint64
		if s.AdvanceIfByteEquals('{') {
			digits := s.src.pos
			for {
				b, ok := s.PeekByte()
				if !ok {
					return false
				}
				if b == '}' {
					break
				}
				s.ConsumeByte()
			}
			var err error
			v, err = strconv.ParseUint(s.src.FromPositionToCurrent(digits), 16, 32)
			s.ConsumeByte()
			if err != nil || v > utf8.MaxRune {
				return false
			}
		} else if v, ok = s.readHex(4); !ok {
			return false
		}
		str.WriteRune(rune(v))
	default:
		if r >= '1' && r <= '9' {
			return false
		}
		str.WriteRune(r)
	}
	return true
}

func (s *Scanner) readHex(n int) (uint64, bool) {
	start := s.src.pos
	for i := 0; i < n; i++ {
		b, ok := s.PeekByte()
		if !ok || !isHexDigit(b) {
			return 0, false
		}
		s.ConsumeByte()
	}
	v, err := strconv.ParseUint(s.src.FromPositionToCurrent(start), 16, 32)
	return v, err == nil
}
