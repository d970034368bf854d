package parser

import (
	"strconv"

	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/token"
)

func (p *parser) parseIdentifier() *ast.Identifier {
	literal := p.currentString()
	idx := p.currentOffset()
	p.next()
	return &ast.Identifier{Idx: idx, Name: literal}
}

// parseBindingIdentifier parses the name of a declaration or parameter.
func (p *parser) parseBindingIdentifier() *ast.Identifier {
	switch {
	case p.currentKind() == token.Yield && p.scope.allowYield:
		p.errorf("Unexpected yield")
	case token.ID(p.currentKind()):
	default:
		p.errorUnexpectedToken(p.currentKind())
	}
	return p.parseIdentifier()
}

func (p *parser) parsePrimaryExpression() *ast.Expression {
	idx := p.currentOffset()
	switch p.currentKind() {
	case token.Identifier, token.Let:
		return &ast.Expression{Expr: p.parseIdentifier()}
	case token.Yield:
		if p.scope.allowYield {
			p.errorf("Unexpected yield")
		}
		return &ast.Expression{Expr: p.parseIdentifier()}
	case token.Null:
		p.next()
		return &ast.Expression{Expr: &ast.NullLiteral{Idx: idx}}
	case token.Boolean:
		value := p.currentString() == "true"
		p.next()
		return &ast.Expression{Expr: &ast.BooleanLiteral{Idx: idx, Value: value}}
	case token.String:
		value := p.currentString()
		raw := p.token.Raw(p.scanner)
		p.next()
		return &ast.Expression{Expr: &ast.StringLiteral{Idx: idx, Value: value, Raw: &raw}}
	case token.Number:
		raw := p.token.Raw(p.scanner)
		value, err := parseNumberLiteral(raw)
		if err != nil {
			p.errorf("Invalid number %s", raw)
		}
		p.next()
		return &ast.Expression{Expr: &ast.NumberLiteral{Idx: idx, Value: value, Raw: &raw}}
	case token.LeftBrace:
		return &ast.Expression{Expr: p.parseObjectLiteral()}
	case token.LeftBracket:
		return &ast.Expression{Expr: p.parseArrayLiteral()}
	case token.LeftParenthesis:
		return p.parseParenthesisedExpression()
	case token.Function:
		return &ast.Expression{Expr: p.parseFunction(false)}
	}

	p.errorUnexpectedToken(p.currentKind())
	p.next()
	return &ast.Expression{Expr: &ast.NullLiteral{Idx: idx}}
}

func parseNumberLiteral(raw string) (float64, error) {
	if len(raw) > 2 && raw[0] == '0' {
		base := 0
		switch raw[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			v, err := strconv.ParseUint(raw[2:], base, 64)
			return float64(v), err
		}
	}
	return strconv.ParseFloat(raw, 64)
}

func (p *parser) parseParenthesisedExpression() *ast.Expression {
	p.expect(token.LeftParenthesis)
	expr := p.parseExpression()
	p.expect(token.RightParenthesis)
	return expr
}

// parseObjectPropertyKey accepts identifiers, reserved words, strings and
// numbers.
func (p *parser) parseObjectPropertyKey() *ast.Expression {
	switch p.currentKind() {
	case token.String, token.Number:
		return p.parsePrimaryExpression()
	}
	if !p.isIdentifierName() {
		p.errorUnexpectedToken(p.currentKind())
	}
	return &ast.Expression{Expr: p.parseIdentifier()}
}

// isIdentifierName reports whether the current token is an IdentifierName,
// which includes reserved words.
func (p *parser) isIdentifierName() bool {
	if token.ID(p.currentKind()) {
		return true
	}
	tkn, _ := token.LiteralKeyword(p.token.Raw(p.scanner))
	return tkn != 0 && tkn == p.currentKind()
}

func (p *parser) parseObjectProperty() ast.Property {
	shorthand := token.ID(p.currentKind()) && !(p.currentKind() == token.Yield && p.scope.allowYield)
	key := p.parseObjectPropertyKey()
	if shorthand && (p.currentKind() == token.Comma || p.currentKind() == token.RightBrace) {
		id := *key.Expr.(*ast.Identifier)
		return ast.Property{Key: key, Value: &ast.Expression{Expr: &id}}
	}
	p.expect(token.Colon)
	return ast.Property{Key: key, Value: p.parseAssignmentExpression()}
}

func (p *parser) parseObjectLiteral() *ast.ObjectLiteral {
	node := &ast.ObjectLiteral{
		LeftBrace: p.expect(token.LeftBrace),
	}
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		node.Value = append(node.Value, p.parseObjectProperty())
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	node.RightBrace = p.expect(token.RightBrace)
	return node
}

func (p *parser) parseArrayLiteral() *ast.ArrayLiteral {
	node := &ast.ArrayLiteral{
		LeftBracket: p.expect(token.LeftBracket),
	}
	for p.currentKind() != token.RightBracket && p.currentKind() != token.Eof {
		if p.currentKind() == token.Comma {
			p.errorf("Array holes are not supported")
			break
		}
		node.Value = append(node.Value, *p.parseAssignmentExpression())
		if p.currentKind() != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	node.RightBracket = p.expect(token.RightBracket)
	return node
}

func (p *parser) parseArgumentList() (argumentList ast.Expressions, idx0, idx1 ast.Idx) {
	idx0 = p.expect(token.LeftParenthesis)
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		argumentList = append(argumentList, *p.parseAssignmentExpression())
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	idx1 = p.expect(token.RightParenthesis)
	return
}

func (p *parser) parseCallExpression(left *ast.Expression) *ast.Expression {
	argumentList, idx0, idx1 := p.parseArgumentList()
	return &ast.Expression{Expr: &ast.CallExpression{
		Callee:           left,
		LeftParenthesis:  idx0,
		ArgumentList:     argumentList,
		RightParenthesis: idx1,
	}}
}

func (p *parser) parseDotMember(left *ast.Expression) *ast.Expression {
	p.expect(token.Period)
	if !p.isIdentifierName() {
		p.errorUnexpectedToken(p.currentKind())
	}
	return &ast.Expression{Expr: &ast.MemberExpression{
		Object:   left,
		Property: &ast.Expression{Expr: p.parseIdentifier()},
	}}
}

func (p *parser) parseBracketMember(left *ast.Expression) *ast.Expression {
	p.expect(token.LeftBracket)
	member := p.parseExpression()
	idx1 := p.expect(token.RightBracket)
	return &ast.Expression{Expr: &ast.MemberExpression{
		Object:       left,
		Property:     member,
		Computed:     true,
		RightBracket: idx1,
	}}
}

func (p *parser) parseLeftHandSideExpressionAllowCall() *ast.Expression {
	left := p.parsePrimaryExpression()
	for {
		switch p.currentKind() {
		case token.Period:
			left = p.parseDotMember(left)
		case token.LeftBracket:
			left = p.parseBracketMember(left)
		case token.LeftParenthesis:
			left = p.parseCallExpression(left)
		default:
			return left
		}
	}
}

func isSimpleAssignmentTarget(expr *ast.Expression) bool {
	switch expr.Expr.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}

func (p *parser) parseUpdateExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Increment, token.Decrement:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		operand := p.parseUnaryExpression()
		if !isSimpleAssignmentTarget(operand) {
			p.errorAt(idx, "Invalid left-hand side in assignment")
		}
		return &ast.Expression{Expr: &ast.UpdateExpression{Operator: tkn, Idx: idx, Operand: operand}}
	default:
		operand := p.parseLeftHandSideExpressionAllowCall()
		if p.currentKind() == token.Increment || p.currentKind() == token.Decrement {
			if p.token.OnNewLine {
				return operand
			}
			tkn := p.currentKind()
			idx := p.currentOffset()
			p.next()
			if !isSimpleAssignmentTarget(operand) {
				p.errorAt(idx, "Invalid left-hand side in assignment")
			}
			return &ast.Expression{Expr: &ast.UpdateExpression{Operator: tkn, Idx: idx, Operand: operand, Postfix: true}}
		}
		return operand
	}
}

func (p *parser) parseUnaryExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Plus, token.Minus, token.Not, token.Void, token.Typeof:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		return &ast.Expression{Expr: &ast.UnaryExpression{Operator: tkn, Idx: idx, Operand: p.parseUnaryExpression()}}
	}

	return p.parseUpdateExpression()
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence int) *ast.Expression {
	lhs := p.parseUnaryExpression()

	for {
		kind := p.currentKind()
		prec := kind.Precedence()
		if prec <= minPrecedence {
			break
		}
		p.next()

		rhs := p.parseBinaryExpressionOrHigher(prec)
		lhs = &ast.Expression{Expr: &ast.BinaryExpression{Operator: kind, Left: lhs, Right: rhs}}
	}

	return lhs
}

func (p *parser) parseAssignmentExpression() *ast.Expression {
	if p.currentKind() == token.Yield && p.scope.allowYield {
		return &ast.Expression{Expr: p.parseYieldExpression()}
	}

	start := p.currentOffset()
	left := p.parseBinaryExpressionOrHigher(0)
	operator := p.currentKind()
	if !operator.IsAssign() {
		return left
	}

	if !isSimpleAssignmentTarget(left) {
		p.errorAt(start, "Invalid left-hand side in assignment")
	}
	p.next()
	return &ast.Expression{Expr: &ast.AssignExpression{
		Operator: operator,
		Left:     left,
		Right:    p.parseAssignmentExpression(),
	}}
}

func (p *parser) parseYieldExpression() *ast.YieldExpression {
	node := &ast.YieldExpression{
		Yield: p.expect(token.Yield),
	}

	if !p.token.OnNewLine && p.currentKind() == token.Multiply {
		node.Delegate = true
		p.next()
	}

	if node.Delegate || p.startsExpression() {
		node.Argument = p.parseAssignmentExpression()
	}

	return node
}

// startsExpression reports whether a yield operand follows on the same line.
func (p *parser) startsExpression() bool {
	if p.token.OnNewLine {
		return false
	}
	switch p.currentKind() {
	case token.RightParenthesis, token.RightBracket, token.RightBrace,
		token.Comma, token.Semicolon, token.Colon, token.Eof:
		return false
	}
	return !p.currentKind().IsAssign() && p.currentKind().Precedence() == 0 || p.currentKind() == token.Plus || p.currentKind() == token.Minus
}

func (p *parser) parseExpression() *ast.Expression {
	expr := p.parseAssignmentExpression()
	if p.currentKind() == token.Comma {
		p.errorf("Comma expressions are not supported")
	}
	return expr
}
