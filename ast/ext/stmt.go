package ext

import "github.com/t14raptor/regen/ast"

// ContainsYield reports whether n contains a yield expression belonging to
// the function being inspected. Nested function literals are not entered.
func ContainsYield(n ast.VisitableNode) bool {
	return FirstYield(n) != nil
}

// FirstYield returns the first yield expression in n in source order, not
// looking into nested function literals.
func FirstYield(n ast.VisitableNode) *ast.YieldExpression {
	f := &yieldFinder{}
	f.V = f
	n.VisitWith(f)
	return f.found
}

type yieldFinder struct {
	ast.NoopVisitor
	found *ast.YieldExpression
}

func (f *yieldFinder) VisitYieldExpression(n *ast.YieldExpression) {
	if f.found == nil {
		f.found = n
	}
}

func (f *yieldFinder) VisitFunctionLiteral(n *ast.FunctionLiteral) {}

// CountYields returns the number of yield expressions directly owned by fn.
func CountYields(fn *ast.FunctionLiteral) int {
	c := &yieldCounter{}
	c.V = c
	fn.Body.VisitWith(c)
	return c.count
}

type yieldCounter struct {
	ast.NoopVisitor
	count int
}

func (c *yieldCounter) VisitYieldExpression(n *ast.YieldExpression) {
	c.count++
	n.VisitChildrenWith(c)
}

func (c *yieldCounter) VisitFunctionLiteral(n *ast.FunctionLiteral) {}

// Generators returns every generator function literal under root in source
// order, outer functions before the functions they contain.
func Generators(root ast.Node) []*ast.FunctionLiteral {
	var out []*ast.FunctionLiteral
	ast.Traverse(root, ast.Hooks{
		Enter: func(node, _ ast.Node) {
			if f, ok := node.(*ast.FunctionLiteral); ok && f.Generator {
				out = append(out, f)
			}
		},
	})
	return out
}
