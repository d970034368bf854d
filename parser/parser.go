// Package parser implements a parser for the JavaScript subset accepted by
// regen: var/let/const, functions and generator functions, if/else, while,
// for, return, throw and the usual expression forms.
package parser

import (
	"golang.org/x/text/unicode/norm"

	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/parser/scanner"
	"github.com/t14raptor/regen/token"
)

// parser ...
type parser struct {
	token scanner.Token
	str   string

	scanner *scanner.Scanner

	scope *scope

	errors error
}

// newParser ...
func newParser(src string) *parser {
	src = norm.NFC.String(src)
	return &parser{
		str:     src,
		scanner: scanner.NewScanner(src),
	}
}

// ParseFile parses the source code of a single JavaScript source file and
// returns the corresponding ast.Program node. Parsing stops at the first
// error, which is reported as a *SyntaxError.
func ParseFile(src string) (*ast.Program, error) {
	return newParser(src).parse()
}

// parse ...
func (p *parser) parse() (*ast.Program, error) {
	p.openScope()
	p.next()
	program := p.parseProgram()
	p.closeScope()
	if p.errors != nil {
		return nil, p.errors
	}
	return program, nil
}

// next ...
func (p *parser) next() {
	if p.errors != nil {
		p.token.Kind = token.Eof
		return
	}
	p.scanner.Next()
	p.token = p.scanner.Token
	if err := p.scanner.Err; err != nil {
		p.errorAt(err.Start, "%s", err.Message)
		p.token.Kind = token.Eof
	}
}

type parserState struct {
	c scanner.Checkpoint

	tok scanner.Token
}

func (p *parser) mark() parserState {
	return parserState{
		c:   p.scanner.Checkpoint(),
		tok: p.token,
	}
}

func (p *parser) restore(state parserState) {
	p.scanner.Rewind(state.c)
	p.token = state.tok
}

func (p *parser) peek() scanner.Token {
	st := p.mark()
	p.scanner.Next()
	tok := p.scanner.Token
	p.restore(st)
	return tok
}

func (p *parser) currentString() string {
	return p.token.String(p.scanner)
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

func (p *parser) canInsertSemicolon() bool {
	kind := p.currentKind()
	return kind == token.Semicolon || kind == token.RightBrace || kind == token.Eof || p.token.OnNewLine
}

func (p *parser) semicolon() {
	if !p.canInsertSemicolon() {
		p.errorUnexpectedToken(p.currentKind())
		return
	}
	if p.currentKind() == token.Semicolon {
		p.next()
	}
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.currentOffset()
	if p.token.Kind != value {
		p.errorUnexpectedToken(p.token.Kind)
	}
	p.next()
	return idx
}

func (p *parser) parseProgram() *ast.Program {
	prg := &ast.Program{}
	for p.currentKind() != token.Eof && p.errors == nil {
		prg.Body = append(prg.Body, ast.Statement{Stmt: p.parseStatement()})
	}
	return prg
}
