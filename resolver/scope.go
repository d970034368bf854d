package resolver

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type DeclKind int

const (
	DeclKindVar DeclKind = iota
	DeclKindLet
	DeclKindConst
	DeclKindFunction
	DeclKindParam
)

type ScopeKind int

const (
	ScopeKindBlock ScopeKind = iota
	ScopeKindFunction
)

type Scope struct {
	parent *Scope

	kind ScopeKind

	declaredSymbols map[string]DeclKind

	// used holds every name declared or referenced inside a function scope,
	// including inside the functions it contains.
	used map[string]struct{}
}

func newScope(parent *Scope, kind ScopeKind) *Scope {
	s := &Scope{
		parent:          parent,
		kind:            kind,
		declaredSymbols: make(map[string]DeclKind),
	}
	if kind == ScopeKindFunction {
		s.used = make(map[string]struct{})
	}
	return s
}

func (s *Scope) isDeclared(id string) (DeclKind, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if declKind, exists := scope.declaredSymbols[id]; exists {
			return declKind, true
		}
	}
	return 0, false
}

// IsDeclared reports whether id is declared in s or an enclosing scope.
func (s *Scope) IsDeclared(id string) bool {
	_, ok := s.isDeclared(id)
	return ok
}

// function returns the nearest enclosing function scope.
func (s *Scope) function() *Scope {
	for scope := s; scope != nil; scope = scope.parent {
		if scope.kind == ScopeKindFunction {
			return scope
		}
	}
	return nil
}

// Uses reports whether name appears anywhere inside the function owning s.
func (s *Scope) Uses(name string) bool {
	_, ok := s.function().used[name]
	return ok
}

// Names returns the names used inside the function owning s, sorted.
func (s *Scope) Names() []string {
	names := maps.Keys(s.function().used)
	slices.Sort(names)
	return names
}

// Fresh returns base when the function owning s does not use it, otherwise
// the first of base$1, base$2, ... that is free. The returned name is
// reserved so later calls never hand it out again.
func (s *Scope) Fresh(base string) string {
	fn := s.function()
	name := base
	for i := 1; fn.Uses(name); i++ {
		name = fmt.Sprintf("%s$%d", base, i)
	}
	fn.used[name] = struct{}{}
	return name
}
