package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
)

// SyntaxError reports malformed input. Offset is a byte offset into the
// (NFC normalized) source; Line and Column are 1-based, Column counting
// runes.
type SyntaxError struct {
	Message string
	Offset  int
	Line    int
	Column  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// position converts a byte offset into a line and column.
func position(src string, offset int) (line, column int) {
	offset = min(max(offset, 0), len(src))
	before := src[:offset]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return line, utf8.RuneCountInString(before) + 1
}

// errorAt records a syntax error. Only the first error is kept.
func (p *parser) errorAt(idx ast.Idx, msg string, msgValues ...any) {
	if p.errors != nil {
		return
	}
	line, column := position(p.str, int(idx))
	err := &SyntaxError{
		Message: fmt.Sprintf(msg, msgValues...),
		Offset:  int(idx),
		Line:    line,
		Column:  column,
	}
	p.errors = errors.Join(p.errors, err)
}

// errorf ...
func (p *parser) errorf(msg string, msgValues ...any) {
	p.errorAt(p.currentOffset(), msg, msgValues...)
}

func (p *parser) errorUnexpectedToken(tkn token.Token) {
	switch tkn {
	case token.Eof:
		p.errorf(errUnexpectedEndOfInput)
		return
	case token.Identifier:
		p.errorf("Unexpected identifier")
		return
	case token.Keyword:
		p.errorf("Unexpected reserved word %q", p.token.Raw(p.scanner))
		return
	case token.Number:
		p.errorf("Unexpected number")
		return
	case token.String:
		p.errorf("Unexpected string")
		return
	}
	p.errorf(errUnexpectedToken, tkn.String())
}
