package parser

import (
	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/token"
)

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	node := &ast.BlockStatement{}
	node.LeftBrace = p.expect(token.LeftBrace)
	node.List = p.parseStatementList()
	node.RightBrace = p.expect(token.RightBrace)

	return node
}

func (p *parser) parseEmptyStatement() ast.Stmt {
	idx := p.expect(token.Semicolon)
	return &ast.EmptyStatement{Semicolon: idx}
}

func (p *parser) parseStatementList() (list ast.Statements) {
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		list = append(list, ast.Statement{Stmt: p.parseStatement()})
	}

	return list
}

func (p *parser) parseStatement() ast.Stmt {
	switch p.currentKind() {
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.If:
		return p.parseIfStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForStatement()
	case token.Var, token.Const:
		decl := p.parseVariableDeclaration(p.currentKind())
		p.semicolon()
		return decl
	case token.Let:
		if tok := p.peek().Kind; token.ID(tok) {
			decl := p.parseVariableDeclaration(token.Let)
			p.semicolon()
			return decl
		}
	case token.Function:
		return &ast.FunctionDeclaration{
			Function: p.parseFunction(true),
		}
	case token.Return:
		return p.parseReturnStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Keyword:
		idx := p.currentOffset()
		p.errorUnexpectedToken(token.Keyword)
		p.next()
		return &ast.EmptyStatement{Semicolon: idx}
	}

	expression := p.parseExpression()
	p.semicolon()

	return &ast.ExpressionStatement{
		Expression: expression,
	}
}

func (p *parser) parseIfStatement() ast.Stmt {
	node := &ast.IfStatement{
		If: p.expect(token.If),
	}
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	node.Consequent = &ast.Statement{Stmt: p.parseStatement()}

	if p.currentKind() == token.Else {
		p.next()
		node.Alternate = &ast.Statement{Stmt: p.parseStatement()}
	}

	return node
}

func (p *parser) parseWhileStatement() ast.Stmt {
	node := &ast.WhileStatement{
		While: p.expect(token.While),
	}
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	node.Body = &ast.Statement{Stmt: p.parseStatement()}

	return node
}

func (p *parser) parseForStatement() ast.Stmt {
	node := &ast.ForStatement{
		For: p.expect(token.For),
	}
	p.expect(token.LeftParenthesis)

	switch p.currentKind() {
	case token.Semicolon:
	case token.Var, token.Const, token.Let:
		node.Initializer = &ast.Statement{Stmt: p.parseVariableDeclaration(p.currentKind())}
	default:
		node.Initializer = &ast.Statement{Stmt: &ast.ExpressionStatement{Expression: p.parseExpression()}}
	}
	p.expect(token.Semicolon)

	if p.currentKind() != token.Semicolon {
		node.Test = p.parseExpression()
	}
	p.expect(token.Semicolon)

	if p.currentKind() != token.RightParenthesis {
		node.Update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	node.Body = &ast.Statement{Stmt: p.parseStatement()}

	return node
}

func (p *parser) parseReturnStatement() ast.Stmt {
	idx := p.currentOffset()
	if !p.scope.inFunction {
		p.errorf("Illegal return statement")
	}
	p.next()

	node := &ast.ReturnStatement{
		Return: idx,
	}

	if !p.canInsertSemicolon() {
		node.Argument = p.parseExpression()
	}
	p.semicolon()

	return node
}

func (p *parser) parseThrowStatement() ast.Stmt {
	idx := p.expect(token.Throw)

	if p.token.OnNewLine {
		p.errorf("Illegal newline after throw")
	}

	node := &ast.ThrowStatement{
		Throw:    idx,
		Argument: p.parseExpression(),
	}
	p.semicolon()

	return node
}

// parseVariableDeclaration parses a declaration without its terminating
// semicolon so it can be reused by for statements.
func (p *parser) parseVariableDeclaration(kind token.Token) *ast.VariableDeclaration {
	node := &ast.VariableDeclaration{
		Idx:   p.currentOffset(),
		Token: kind,
	}
	p.next()

	for {
		target := p.parseBindingIdentifier()
		decl := ast.VariableDeclarator{Target: target}
		if p.currentKind() == token.Assign {
			p.next()
			decl.Initializer = p.parseAssignmentExpression()
		} else if kind == token.Const {
			p.errorf("Missing initializer in const declaration")
		}
		node.List = append(node.List, decl)

		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}

	return node
}

func (p *parser) parseFunction(declaration bool) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{
		Function: p.expect(token.Function),
	}

	if p.currentKind() == token.Multiply {
		node.Generator = true
		p.next()
	}

	if token.ID(p.currentKind()) {
		node.Name = p.parseBindingIdentifier()
	} else if declaration {
		p.errorf("Function statements require a function name")
	}

	p.openScope()
	p.scope.inFunction = true
	p.scope.allowYield = node.Generator
	node.ParameterList = p.parseFunctionParameterList()
	node.Body = p.parseBlockStatement()
	p.closeScope()

	return node
}

func (p *parser) parseFunctionParameterList() ast.ParameterList {
	opening := p.expect(token.LeftParenthesis)
	var list []*ast.Identifier
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		list = append(list, p.parseBindingIdentifier())
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	closing := p.expect(token.RightParenthesis)

	return ast.ParameterList{
		Opening: opening,
		List:    list,
		Closing: closing,
	}
}
