// Package resolver collects the bindings and names of every function in a
// program.
package resolver

import (
	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/token"
)

type Resolver struct {
	ast.NoopVisitor

	current *Scope
	program *Scope

	functions map[*ast.FunctionLiteral]*Scope
}

// Resolve builds the scope tree of p.
func Resolve(p *ast.Program) *Resolver {
	r := &Resolver{
		functions: make(map[*ast.FunctionLiteral]*Scope),
	}
	r.V = r

	r.pushScope(ScopeKindFunction)
	r.program = r.current
	hoist(r, p.Body)
	p.VisitChildrenWith(r)
	return r
}

// Program returns the top level scope.
func (r *Resolver) Program() *Scope {
	return r.program
}

// Function returns the scope of fn's body, or nil when fn was not part of
// the resolved program.
func (r *Resolver) Function(fn *ast.FunctionLiteral) *Scope {
	return r.functions[fn]
}

func (r *Resolver) pushScope(kind ScopeKind) {
	r.current = newScope(r.current, kind)
}

func (r *Resolver) popScope() {
	if r.current.parent != nil {
		r.current = r.current.parent
	}
}

// declare adds id to the scope that owns declarations of kind.
func (r *Resolver) declare(id *ast.Identifier, kind DeclKind) {
	scope := r.current
	if kind == DeclKindVar || kind == DeclKindFunction && scope.kind == ScopeKindFunction {
		scope = scope.function()
	}
	scope.declaredSymbols[id.Name] = kind
	r.use(id.Name)
}

// use records name in every enclosing function.
func (r *Resolver) use(name string) {
	for scope := r.current; scope != nil; scope = scope.parent {
		if scope.kind == ScopeKindFunction {
			scope.used[name] = struct{}{}
		}
	}
}

func (r *Resolver) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	r.pushScope(ScopeKindFunction)
	r.functions[n] = r.current

	if n.Name != nil {
		r.use(n.Name.Name)
	}
	for _, param := range n.ParameterList.List {
		r.declare(param, DeclKindParam)
	}

	hoist(r, n.Body.List)
	// The body shares the function scope.
	n.Body.VisitChildrenWith(r)

	r.popScope()
}

func (r *Resolver) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.Function.Name != nil {
		r.declare(n.Function.Name, DeclKindFunction)
	}
	n.Function.VisitWith(r)
}

func (r *Resolver) VisitBlockStatement(n *ast.BlockStatement) {
	r.pushScope(ScopeKindBlock)
	n.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitForStatement(n *ast.ForStatement) {
	r.pushScope(ScopeKindBlock)
	n.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	kind := DeclKindVar
	switch n.Token {
	case token.Let:
		kind = DeclKindLet
	case token.Const:
		kind = DeclKindConst
	}
	for i := range n.List {
		r.declare(n.List[i].Target, kind)
		if n.List[i].Initializer != nil {
			n.List[i].Initializer.VisitWith(r)
		}
	}
}

func (r *Resolver) VisitIdentifier(n *ast.Identifier) {
	r.use(n.Name)
}

func (r *Resolver) VisitMemberExpression(n *ast.MemberExpression) {
	n.Object.VisitWith(r)
	if n.Computed {
		n.Property.VisitWith(r)
	}
}

func (r *Resolver) VisitProperty(n *ast.Property) {
	n.Value.VisitWith(r)
}
