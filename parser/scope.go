package parser

type scope struct {
	outer      *scope
	inFunction bool
	allowYield bool
}

func (p *parser) openScope() {
	p.scope = &scope{
		outer: p.scope,
	}
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}
