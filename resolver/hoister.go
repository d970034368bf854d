package resolver

import (
	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/token"
)

// Decl is a declaration hoisted to the top of a function body.
type Decl struct {
	Name     string
	Kind     DeclKind
	Function *ast.FunctionLiteral
}

type Hoister struct {
	ast.NoopVisitor

	inBlock bool

	found []Decl
}

// Hoist returns the var and function declarations of a function body (or
// program) in source order. Var declarations inside nested blocks are
// included, declarations inside nested functions are not. Function
// declarations nested in blocks stay block scoped.
func Hoist(list ast.Statements) []Decl {
	h := &Hoister{}
	h.V = h
	list.VisitWith(h)
	return h.found
}

// hoist declares the hoisted names of list in r's current function scope so
// that references before the declaration resolve.
func hoist(r *Resolver, list ast.Statements) {
	for _, d := range Hoist(list) {
		r.current.function().declaredSymbols[d.Name] = d.Kind
	}
}

func (h *Hoister) VisitBlockStatement(n *ast.BlockStatement) {
	old := h.inBlock
	h.inBlock = true
	n.VisitChildrenWith(h)
	h.inBlock = old
}

func (h *Hoister) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	if n.Token != token.Var {
		return
	}
	for _, d := range n.List {
		h.found = append(h.found, Decl{Name: d.Target.Name, Kind: DeclKindVar})
	}
}

func (h *Hoister) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if h.inBlock || n.Function.Name == nil {
		return
	}
	h.found = append(h.found, Decl{Name: n.Function.Name.Name, Kind: DeclKindFunction, Function: n.Function})
}

func (h *Hoister) VisitExpression(n *ast.Expression)           {}
func (h *Hoister) VisitFunctionLiteral(n *ast.FunctionLiteral) {}
