package ast

import "fmt"

// Hooks are called by Traverse. Enter runs before a node's children are
// walked and Leave after. Either may be nil. parent is nil for the root.
type Hooks struct {
	Enter func(node, parent Node)
	Leave func(node, parent Node)
}

// ReplaceHooks are called by Replace. A non-nil return value substitutes the
// visited node in its parent's slot. When Enter substitutes a node the walk
// continues into the replacement's children.
type ReplaceHooks struct {
	Enter func(node, parent Node) Node
	Leave func(node, parent Node) Node
}

// Traverse walks root depth first. The Expression and Statement wrappers are
// not reported; hooks see the concrete nodes they hold.
func Traverse(root Node, h Hooks) {
	var rh ReplaceHooks
	if h.Enter != nil {
		rh.Enter = func(node, parent Node) Node {
			h.Enter(node, parent)
			return nil
		}
	}
	if h.Leave != nil {
		rh.Leave = func(node, parent Node) Node {
			h.Leave(node, parent)
			return nil
		}
	}
	Replace(root, rh)
}

// Replace walks root depth first like Traverse and lets the hooks substitute
// nodes. It returns the (possibly replaced) root. Substituting a node with one
// that does not fit the slot, e.g. a statement where an expression is
// expected, panics.
func Replace(root Node, h ReplaceHooks) Node {
	w := &walker{h: h}
	switch n := root.(type) {
	case *Expression:
		w.expr(n, nil)
		return n
	case *Statement:
		w.stmt(n, nil)
		return n
	}
	return w.node(root, nil)
}

type walker struct {
	h ReplaceHooks
}

func (w *walker) enter(node, parent Node) Node {
	if w.h.Enter == nil {
		return node
	}
	if r := w.h.Enter(node, parent); r != nil {
		return r
	}
	return node
}

func (w *walker) leave(node, parent Node) Node {
	if w.h.Leave == nil {
		return node
	}
	if r := w.h.Leave(node, parent); r != nil {
		return r
	}
	return node
}

// node visits n and returns the node that should occupy its slot.
func (w *walker) node(n, parent Node) Node {
	n = w.enter(n, parent)
	w.children(n)
	return w.leave(n, parent)
}

func (w *walker) expr(slot *Expression, parent Node) {
	if slot == nil || slot.Expr == nil {
		return
	}
	r := w.node(slot.Expr, parent)
	e, ok := r.(Expr)
	if !ok {
		panic(fmt.Sprintf("ast: cannot replace expression with %T", r))
	}
	slot.Expr = e
}

func (w *walker) stmt(slot *Statement, parent Node) {
	if slot == nil || slot.Stmt == nil {
		return
	}
	r := w.node(slot.Stmt, parent)
	s, ok := r.(Stmt)
	if !ok {
		panic(fmt.Sprintf("ast: cannot replace statement with %T", r))
	}
	slot.Stmt = s
}

func (w *walker) ident(id *Identifier, parent Node) *Identifier {
	if id == nil {
		return nil
	}
	r := w.node(id, parent)
	out, ok := r.(*Identifier)
	if !ok {
		panic(fmt.Sprintf("ast: cannot replace identifier with %T", r))
	}
	return out
}

func (w *walker) block(b *BlockStatement, parent Node) *BlockStatement {
	if b == nil {
		return nil
	}
	r := w.node(b, parent)
	out, ok := r.(*BlockStatement)
	if !ok {
		panic(fmt.Sprintf("ast: cannot replace block with %T", r))
	}
	return out
}

func (w *walker) children(n Node) {
	switch n := n.(type) {
	case *Program:
		for i := range n.Body {
			w.stmt(&n.Body[i], n)
		}

	case *ArrayLiteral:
		for i := range n.Value {
			w.expr(&n.Value[i], n)
		}
	case *AssignExpression:
		w.expr(n.Left, n)
		w.expr(n.Right, n)
	case *BinaryExpression:
		w.expr(n.Left, n)
		w.expr(n.Right, n)
	case *CallExpression:
		w.expr(n.Callee, n)
		for i := range n.ArgumentList {
			w.expr(&n.ArgumentList[i], n)
		}
	case *FunctionLiteral:
		n.Name = w.ident(n.Name, n)
		for i := range n.ParameterList.List {
			n.ParameterList.List[i] = w.ident(n.ParameterList.List[i], n)
		}
		n.Body = w.block(n.Body, n)
	case *MemberExpression:
		w.expr(n.Object, n)
		w.expr(n.Property, n)
	case *ObjectLiteral:
		for i := range n.Value {
			r := w.node(&n.Value[i], n)
			p, ok := r.(*Property)
			if !ok {
				panic(fmt.Sprintf("ast: cannot replace property with %T", r))
			}
			n.Value[i] = *p
		}
	case *Property:
		w.expr(n.Key, n)
		w.expr(n.Value, n)
	case *UnaryExpression:
		w.expr(n.Operand, n)
	case *UpdateExpression:
		w.expr(n.Operand, n)
	case *YieldExpression:
		w.expr(n.Argument, n)

	case *BlockStatement:
		for i := range n.List {
			w.stmt(&n.List[i], n)
		}
	case *ExpressionStatement:
		w.expr(n.Expression, n)
	case *ForStatement:
		w.stmt(n.Initializer, n)
		w.expr(n.Test, n)
		w.expr(n.Update, n)
		w.stmt(n.Body, n)
	case *FunctionDeclaration:
		r := w.node(n.Function, n)
		f, ok := r.(*FunctionLiteral)
		if !ok {
			panic(fmt.Sprintf("ast: cannot replace function with %T", r))
		}
		n.Function = f
	case *IfStatement:
		w.expr(n.Test, n)
		w.stmt(n.Consequent, n)
		w.stmt(n.Alternate, n)
	case *ReturnStatement:
		w.expr(n.Argument, n)
	case *ThrowStatement:
		w.expr(n.Argument, n)
	case *VariableDeclaration:
		for i := range n.List {
			r := w.node(&n.List[i], n)
			d, ok := r.(*VariableDeclarator)
			if !ok {
				panic(fmt.Sprintf("ast: cannot replace declarator with %T", r))
			}
			n.List[i] = *d
		}
	case *VariableDeclarator:
		n.Target = w.ident(n.Target, n)
		w.expr(n.Initializer, n)
	case *WhileStatement:
		w.expr(n.Test, n)
		w.stmt(n.Body, n)
	}
}
