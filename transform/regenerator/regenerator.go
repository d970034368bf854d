// Package regenerator rewrites generator functions into plain step
// functions driven by a runtime adapter.
//
// A generator such as
//
//	const g = function* () {
//	    x = yield f();
//	    return x;
//	};
//
// becomes
//
//	const g = GeneratorFunction(function (v, step) {
//	    if (step === 0) {
//	        return generatorResult(f(), false);
//	    }
//	    if (step === 1) {
//	        x = v;
//	        return generatorResult(x, true);
//	    }
//	    return generatorResult(undefined, true);
//	});
//
// Each call of the step function runs the statements between two suspension
// points. Local state does not survive between steps, so generators that
// need it must keep it outside the function.
package regenerator

import (
	"log/slog"

	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/ast/ext"
	"github.com/t14raptor/regen/resolver"
	"github.com/t14raptor/regen/token"
)

// Rewrite transforms every generator function of p in place. p is left
// untouched when an error is returned. Use p.Clone() first to keep the
// original tree.
func Rewrite(p *ast.Program, cfg Config) (*Report, error) {
	ctx, err := NewRewriteContext(cfg)
	if err != nil {
		return nil, err
	}
	return ctx.Rewrite(p)
}

// frame is one generator function under rewrite.
type frame struct {
	fn     *ast.FunctionLiteral
	name   string
	offset ast.Idx

	resume string
	step   string

	yields int
	steps  []ast.Statements
}

// RewriteContext holds the state of a single rewrite. Nothing about the
// rewrite is stored on the tree itself: generated returns and the frames
// are tracked in side tables keyed by node identity.
type RewriteContext struct {
	cfg Config
	log *slog.Logger

	// frames maps each rewritten function to its frame, in creation order
	// through order.
	frames map[*ast.FunctionLiteral]*frame
	order  []*frame

	// wasYield marks returns that replaced a yield.
	wasYield map[*ast.ReturnStatement]bool
	// pending holds the statement that stores the resumed value, which
	// opens the step following a `x = yield e` return.
	pending map[*ast.ReturnStatement]ast.Statement

	// stack is the chain of functions enclosing the node being visited.
	stack []*ast.FunctionLiteral
}

func NewRewriteContext(cfg Config) (*RewriteContext, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &RewriteContext{
		cfg:      cfg,
		log:      slog.Default().With("pass", "regenerator"),
		frames:   make(map[*ast.FunctionLiteral]*frame),
		wasYield: make(map[*ast.ReturnStatement]bool),
		pending:  make(map[*ast.ReturnStatement]ast.Statement),
	}, nil
}

// Rewrite runs all passes over p. A context must not be reused.
func (c *RewriteContext) Rewrite(p *ast.Program) (*Report, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	res := resolver.Resolve(p)
	c.rewriteSignatures(p, res)
	c.normalize(p)
	c.partition(p)

	report := &Report{}
	for _, f := range c.order {
		report.Generators = append(report.Generators, GeneratorReport{
			Name:        f.name,
			Offset:      f.offset,
			Yields:      f.yields,
			Steps:       len(f.fn.Body.List),
			ResumeParam: f.resume,
			StepParam:   f.step,
		})
		c.log.Debug("rewrote generator", "name", f.name, "offset", f.offset, "yields", f.yields, "steps", len(f.fn.Body.List))
	}
	return report, nil
}

// rewriteSignatures turns each generator into a plain function taking the
// resume value and step index, wrapped in a call to the adapter.
func (c *RewriteContext) rewriteSignatures(p *ast.Program, res *resolver.Resolver) {
	ast.Replace(p, ast.ReplaceHooks{
		Enter: func(node, parent ast.Node) ast.Node {
			switch n := node.(type) {
			case *ast.FunctionLiteral:
				if n.Generator {
					return c.adapt(n, res).Expr
				}
			case *ast.FunctionDeclaration:
				if n.Function.Generator {
					name := n.Function.Name
					return ext.Var(token.Var, name.Name, c.adapt(n.Function, res)).Stmt
				}
			}
			return nil
		},
	})
}

// adapt converts fn and returns Adapter(fn).
func (c *RewriteContext) adapt(fn *ast.FunctionLiteral, res *resolver.Resolver) *ast.Expression {
	f := &frame{
		fn:     fn,
		offset: fn.Idx0(),
		steps:  []ast.Statements{nil},
	}
	if fn.Name != nil {
		f.name = fn.Name.Name
	}
	scope := res.Function(fn)
	f.resume = scope.Fresh(c.cfg.ResumeParam)
	f.step = scope.Fresh(c.cfg.StepParam)

	fn.Generator = false
	fn.ParameterList.List = append(fn.ParameterList.List,
		&ast.Identifier{Name: f.resume},
		&ast.Identifier{Name: f.step},
	)
	c.frames[fn] = f
	c.order = append(c.order, f)

	return ext.Call(ext.Ident(c.cfg.Adapter), &ast.Expression{Expr: fn})
}

// current returns the frame of the innermost enclosing function, or nil when
// that function is not a rewritten generator.
func (c *RewriteContext) current() *frame {
	if len(c.stack) == 0 {
		return nil
	}
	return c.frames[c.stack[len(c.stack)-1]]
}

func (c *RewriteContext) push(node ast.Node) {
	if fn, ok := node.(*ast.FunctionLiteral); ok {
		c.stack = append(c.stack, fn)
	}
}

func (c *RewriteContext) pop(node ast.Node) {
	if _, ok := node.(*ast.FunctionLiteral); ok {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// result builds Result(arg, done). A missing argument becomes undefined.
func (c *RewriteContext) result(arg *ast.Expression, done bool) *ast.Expression {
	if arg == nil {
		arg = ext.Undefined()
	}
	return ext.Call(ext.Ident(c.cfg.Result), arg, ext.Bool(done))
}

// normalize turns yields into returns of unfinished results and wraps the
// arguments of generator returns into finished results.
func (c *RewriteContext) normalize(p *ast.Program) {
	ast.Replace(p, ast.ReplaceHooks{
		Enter: func(node, parent ast.Node) ast.Node {
			c.push(node)
			return nil
		},
		Leave: func(node, parent ast.Node) ast.Node {
			defer c.pop(node)

			f := c.current()
			if f == nil {
				return nil
			}
			switch n := node.(type) {
			case *ast.ExpressionStatement:
				if y, ok := n.Expression.Yield(); ok {
					return c.suspend(f, y, nil)
				}
				if a, ok := n.Expression.Expr.(*ast.AssignExpression); ok {
					if y, ok := a.Right.Yield(); ok {
						store := &ast.AssignExpression{Operator: a.Operator, Left: a.Left, Right: ext.Ident(f.resume)}
						return c.suspend(f, y, &ast.ExpressionStatement{Expression: &ast.Expression{Expr: store}})
					}
				}
			case *ast.VariableDeclaration:
				if len(n.List) == 1 {
					if y, ok := n.List[0].Initializer.Yield(); ok {
						store := ext.Var(n.Token, n.List[0].Target.Name, ext.Ident(f.resume))
						return c.suspend(f, y, store.Stmt)
					}
				}
			case *ast.ReturnStatement:
				if !c.wasYield[n] {
					n.Argument = c.result(n.Argument, true)
				}
			}
			return nil
		},
	})
}

// suspend returns the statement replacing a yield. store, when set, runs at
// the start of the next step.
func (c *RewriteContext) suspend(f *frame, y *ast.YieldExpression, store ast.Stmt) ast.Node {
	f.yields++
	ret := ext.Return(c.result(y.Argument, false))
	ret.Return = y.Yield
	c.wasYield[ret] = true
	if store != nil {
		c.pending[ret] = ast.Statement{Stmt: store}
	}
	return ret
}

// partition splits the body of every frame into steps and rebuilds it as a
// chain of `if (step === i)` branches followed by the terminal branch.
func (c *RewriteContext) partition(p *ast.Program) {
	var frames []*frame
	ast.Traverse(p, ast.Hooks{
		Enter: func(node, parent ast.Node) {
			if fn, ok := node.(*ast.FunctionLiteral); ok {
				if f := c.frames[fn]; f != nil {
					frames = append(frames, f)
				}
			}
		},
		Leave: func(node, parent ast.Node) {
			if len(frames) == 0 {
				return
			}
			f := frames[len(frames)-1]
			if node != f.fn {
				return
			}
			c.split(f)
			f.fn.Body.List = c.branches(f)
			frames = frames[:len(frames)-1]
		},
	})
}

// split distributes the top level statements of f into steps. Every top
// level return closes the current step. Statements following a return that
// did not come from a yield can never run and are dropped.
func (c *RewriteContext) split(f *frame) {
	finished := false
	for _, stmt := range f.fn.Body.List {
		if finished {
			break
		}
		last := len(f.steps) - 1
		f.steps[last] = append(f.steps[last], stmt)

		ret, ok := stmt.Stmt.(*ast.ReturnStatement)
		if !ok {
			continue
		}
		f.steps = append(f.steps, nil)
		if store, ok := c.pending[ret]; ok {
			f.steps[last+1] = append(f.steps[last+1], store)
		}
		finished = !c.wasYield[ret]
	}
}

// branches builds one `if (step === i)` per step. Statements after the last
// suspension point get a branch of their own ending in a finished result; the
// unconditional return answers every step past the end.
func (c *RewriteContext) branches(f *frame) ast.Statements {
	steps := f.steps
	if last := steps[len(steps)-1]; len(last) > 0 {
		steps[len(steps)-1] = append(last, ast.Statement{Stmt: ext.Return(c.result(nil, true))})
	} else {
		steps = steps[:len(steps)-1]
	}

	body := make(ast.Statements, 0, len(steps)+1)
	for i, step := range steps {
		test := ext.StrictEq(ext.Ident(f.step), ext.Num(float64(i)))
		body = append(body, ext.If(test, step...))
	}
	body = append(body, ast.Statement{Stmt: ext.Return(c.result(nil, true))})
	return body
}
