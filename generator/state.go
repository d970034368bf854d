package generator

import (
	"strings"

	"github.com/t14raptor/regen/ast"
)

const indentUnit = "    "

// state is the printing position for one node. All states of a single
// Generate call share out; indent is the nesting depth of the enclosing
// block.
type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int
}

// newState returns the root state for node, looking through the Expression
// and Statement wrappers.
func newState(node ast.Node) *state {
	switch n := node.(type) {
	case *ast.Expression:
		node = n.Expr
	case *ast.Statement:
		node = n.Stmt
	}
	return &state{out: &strings.Builder{}, node: node}
}

// wrap returns the state for a child of s.
func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
	}
}

// parentNode is nil at the root.
func (s *state) parentNode() ast.Node {
	if s.parent == nil {
		return nil
	}
	return s.parent.node
}

func (s *state) line() {
	s.out.WriteByte('\n')
}

// lineAndPad starts a new line indented to the current depth.
func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat(indentUnit, s.indent))
}
