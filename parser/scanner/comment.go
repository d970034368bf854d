package scanner

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

func isWhitespace(chr rune) bool {
	switch chr {
	case '\u00a0', '\ufeff', '\u1680', '\u202f', '\u205f', '\u3000':
		return true
	}
	return chr >= '\u2000' && chr <= '\u200a'
}

// skipSingleLineComment skips to the end of the line. The line terminator is
// left for Next so that OnNewLine gets set.
func (s *Scanner) skipSingleLineComment() {
	for {
		r, ok := s.PeekRune()
		if !ok || isLineTerminator(r) {
			return
		}
		s.ConsumeRune()
	}
}

// skipMultiLineComment reports false when the comment is not terminated.
func (s *Scanner) skipMultiLineComment() bool {
	start := s.Token.Idx0
	for {
		r, ok := s.src.NextRune()
		if !ok {
			s.error(unterminatedMultiLineComment(start, s.src.pos))
			return false
		}
		if isLineTerminator(r) {
			s.Token.OnNewLine = true
		}
		if r == '*' && s.AdvanceIfByteEquals('/') {
			return true
		}
	}
}
