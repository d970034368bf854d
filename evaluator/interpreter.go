// Package evaluator runs programs of the supported subset. Together with the
// builtins GeneratorFunction and generatorResult it executes the output of
// the regenerator.
package evaluator

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/t14raptor/regen/ast"
	"github.com/t14raptor/regen/resolver"
	"github.com/t14raptor/regen/token"
)

const maxCallDepth = 1000

// Interpreter holds the global environment of a run.
type Interpreter struct {
	global *env
	stdout io.Writer
	log    *slog.Logger

	depth int
}

type Option func(*Interpreter)

// WithStdout sets where console.log writes. Default is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(in *Interpreter) { in.stdout = w }
}

// WithGlobal predefines name in the global environment.
func WithGlobal(name string, v Value) Option {
	return func(in *Interpreter) { in.global.declare(name, v, true) }
}

func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) { in.log = l }
}

// New returns an interpreter with the builtins installed.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		global: newEnv(nil, true),
		stdout: os.Stdout,
		log:    slog.Default(),
	}
	in.installBuiltins()
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run executes p in a new interpreter and returns it so that globals can be
// inspected.
func Run(p *ast.Program, opts ...Option) (*Interpreter, error) {
	in := New(opts...)
	if err := in.Exec(p); err != nil {
		return in, err
	}
	return in, nil
}

// Exec runs p in the global environment of in.
func (in *Interpreter) Exec(p *ast.Program) error {
	in.hoist(in.global, p.Body)
	_, _, err := in.execList(in.global, p.Body)
	if err != nil {
		in.log.Debug("program failed", "err", err)
	}
	return err
}

// Global returns the value bound to name in the global environment.
func (in *Interpreter) Global(name string) (Value, bool) {
	b, ok := in.global.vars[name]
	if !ok {
		return undefinedValue, false
	}
	return b.value, true
}

// Call invokes fn with args.
func (in *Interpreter) Call(fn Value, args ...Value) (Value, error) {
	f, ok := fn.value.(*Function)
	if !ok || fn.kind != valueFunction {
		return undefinedValue, typeError("%s is not a function", inspect(fn, true))
	}
	if f.native != nil {
		return f.native(args)
	}
	if f.literal.Generator {
		return undefinedValue, typeError("generator function %s must be rewritten before it can run", f.Name)
	}
	if in.depth >= maxCallDepth {
		return undefinedValue, fmt.Errorf("%w: Maximum call stack size exceeded", ErrRange)
	}
	in.depth++
	defer func() { in.depth-- }()

	scope := newEnv(f.scope, true)
	for i, p := range f.literal.ParameterList.List {
		scope.declare(p.Name, arg(args, i), true)
	}
	body := f.literal.Body.List
	in.hoist(scope, body)

	v, returned, err := in.execList(scope, body)
	if err != nil || !returned {
		return undefinedValue, err
	}
	return v, nil
}

// hoist declares the var and function declarations of list in e.
func (in *Interpreter) hoist(e *env, list ast.Statements) {
	for _, d := range resolver.Hoist(list) {
		if d.Function != nil {
			e.declare(d.Name, in.closure(e, d.Function), true)
			continue
		}
		e.declareVar(d.Name)
	}
}

func (in *Interpreter) closure(e *env, lit *ast.FunctionLiteral) Value {
	f := &Function{literal: lit, scope: e}
	if lit.Name != nil {
		f.Name = lit.Name.Name
	}
	return functionValue(f)
}

// execList runs list and reports whether a return statement completed it.
func (in *Interpreter) execList(e *env, list ast.Statements) (Value, bool, error) {
	for i := range list {
		v, returned, err := in.exec(e, list[i].Stmt)
		if err != nil || returned {
			return v, returned, err
		}
	}
	return undefinedValue, false, nil
}

func (in *Interpreter) exec(e *env, s ast.Stmt) (Value, bool, error) {
	switch s := s.(type) {
	case *ast.BlockStatement:
		inner := newEnv(e, false)
		in.declareBlockFunctions(inner, s.List)
		return in.execList(inner, s.List)

	case *ast.EmptyStatement, *ast.FunctionDeclaration:
		return undefinedValue, false, nil

	case *ast.ExpressionStatement:
		_, err := in.eval(e, s.Expression)
		return undefinedValue, false, err

	case *ast.VariableDeclaration:
		return undefinedValue, false, in.declareVariables(e, s)

	case *ast.IfStatement:
		test, err := in.eval(e, s.Test)
		if err != nil {
			return undefinedValue, false, err
		}
		if test.bool() {
			return in.exec(e, s.Consequent.Stmt)
		}
		if s.Alternate != nil {
			return in.exec(e, s.Alternate.Stmt)
		}
		return undefinedValue, false, nil

	case *ast.WhileStatement:
		for {
			test, err := in.eval(e, s.Test)
			if err != nil || !test.bool() {
				return undefinedValue, false, err
			}
			if v, returned, err := in.exec(e, s.Body.Stmt); err != nil || returned {
				return v, returned, err
			}
		}

	case *ast.ForStatement:
		loop := newEnv(e, false)
		if s.Initializer != nil && s.Initializer.Stmt != nil {
			if _, _, err := in.exec(loop, s.Initializer.Stmt); err != nil {
				return undefinedValue, false, err
			}
		}
		for {
			if s.Test != nil && s.Test.Expr != nil {
				test, err := in.eval(loop, s.Test)
				if err != nil || !test.bool() {
					return undefinedValue, false, err
				}
			}
			if v, returned, err := in.exec(loop, s.Body.Stmt); err != nil || returned {
				return v, returned, err
			}
			if s.Update != nil && s.Update.Expr != nil {
				if _, err := in.eval(loop, s.Update); err != nil {
					return undefinedValue, false, err
				}
			}
		}

	case *ast.ReturnStatement:
		if s.Argument == nil || s.Argument.Expr == nil {
			return undefinedValue, true, nil
		}
		v, err := in.eval(e, s.Argument)
		return v, err == nil, err

	case *ast.ThrowStatement:
		v, err := in.eval(e, s.Argument)
		if err != nil {
			return undefinedValue, false, err
		}
		return undefinedValue, false, &ThrowError{Value: v}
	}
	return undefinedValue, false, fmt.Errorf("evaluator: unexpected statement %T", s)
}

// declareBlockFunctions binds function declarations directly inside a block
// before the block runs.
func (in *Interpreter) declareBlockFunctions(e *env, list ast.Statements) {
	for _, s := range list {
		if fd, ok := s.Stmt.(*ast.FunctionDeclaration); ok && fd.Function.Name != nil {
			e.declare(fd.Function.Name.Name, in.closure(e, fd.Function), true)
		}
	}
}

func (in *Interpreter) declareVariables(e *env, s *ast.VariableDeclaration) error {
	for _, d := range s.List {
		v := undefinedValue
		if d.Initializer != nil && d.Initializer.Expr != nil {
			var err error
			if v, err = in.eval(e, d.Initializer); err != nil {
				return err
			}
		} else if s.Token == token.Var {
			continue
		}
		switch s.Token {
		case token.Var:
			e.declareVar(d.Target.Name)
			if err := in.assign(e, d.Target.Name, v); err != nil {
				return err
			}
		default:
			e.declare(d.Target.Name, v, s.Token != token.Const)
		}
	}
	return nil
}

func (in *Interpreter) assign(e *env, name string, v Value) error {
	b := e.lookup(name)
	if b == nil {
		e.global().declare(name, v, true)
		return nil
	}
	if !b.mutable {
		return typeError("Assignment to constant variable %s", name)
	}
	b.value = v
	return nil
}

func (in *Interpreter) eval(e *env, x *ast.Expression) (Value, error) {
	switch x := x.Expr.(type) {
	case *ast.NumberLiteral:
		return float64Value(x.Value), nil
	case *ast.StringLiteral:
		return stringValue(x.Value), nil
	case *ast.BooleanLiteral:
		return boolValue(x.Value), nil
	case *ast.NullLiteral:
		return nullValue, nil

	case *ast.Identifier:
		b := e.lookup(x.Name)
		if b == nil {
			return undefinedValue, referenceError("%s is not defined", x.Name)
		}
		return b.value, nil

	case *ast.FunctionLiteral:
		if x.Name == nil {
			return in.closure(e, x), nil
		}
		// Named function expressions see their own name.
		self := newEnv(e, false)
		fn := in.closure(self, x)
		self.declare(x.Name.Name, fn, false)
		return fn, nil

	case *ast.ArrayLiteral:
		o := newObject()
		o.Array = true
		for i := range x.Value {
			v, err := in.eval(e, &x.Value[i])
			if err != nil {
				return undefinedValue, err
			}
			o.Elements = append(o.Elements, v)
		}
		return objectValue(o), nil

	case *ast.ObjectLiteral:
		o := newObject()
		for _, p := range x.Value {
			v, err := in.eval(e, p.Value)
			if err != nil {
				return undefinedValue, err
			}
			o.Set(propertyKey(p.Key), v)
		}
		return objectValue(o), nil

	case *ast.MemberExpression:
		obj, key, err := in.member(e, x)
		if err != nil {
			return undefinedValue, err
		}
		return in.get(obj, key)

	case *ast.CallExpression:
		callee, err := in.eval(e, x.Callee)
		if err != nil {
			return undefinedValue, err
		}
		args := make([]Value, 0, len(x.ArgumentList))
		for i := range x.ArgumentList {
			v, err := in.eval(e, &x.ArgumentList[i])
			if err != nil {
				return undefinedValue, err
			}
			args = append(args, v)
		}
		if !callee.IsFunction() {
			return undefinedValue, typeError("%s is not a function", calleeText(x.Callee))
		}
		return in.Call(callee, args...)

	case *ast.AssignExpression:
		return in.evalAssign(e, x)

	case *ast.BinaryExpression:
		left, err := in.eval(e, x.Left)
		if err != nil {
			return undefinedValue, err
		}
		switch x.Operator {
		case token.LogicalAnd:
			if !left.bool() {
				return left, nil
			}
			return in.eval(e, x.Right)
		case token.LogicalOr:
			if left.bool() {
				return left, nil
			}
			return in.eval(e, x.Right)
		}
		right, err := in.eval(e, x.Right)
		if err != nil {
			return undefinedValue, err
		}
		return binary(x.Operator, left, right), nil

	case *ast.UnaryExpression:
		if x.Operator == token.Typeof {
			if id, ok := x.Operand.Ident(); ok && e.lookup(id.Name) == nil {
				return stringValue("undefined"), nil
			}
		}
		v, err := in.eval(e, x.Operand)
		if err != nil {
			return undefinedValue, err
		}
		switch x.Operator {
		case token.Not:
			return boolValue(!v.bool()), nil
		case token.Minus:
			return float64Value(-v.float64()), nil
		case token.Plus:
			return float64Value(v.float64()), nil
		case token.Void:
			return undefinedValue, nil
		case token.Typeof:
			return stringValue(typeOf(v)), nil
		}
		return undefinedValue, fmt.Errorf("evaluator: unexpected unary operator %s", x.Operator)

	case *ast.UpdateExpression:
		old, err := in.eval(e, x.Operand)
		if err != nil {
			return undefinedValue, err
		}
		n := old.float64()
		next := n + 1
		if x.Operator == token.Decrement {
			next = n - 1
		}
		if err := in.store(e, x.Operand, float64Value(next)); err != nil {
			return undefinedValue, err
		}
		if x.Postfix {
			return float64Value(n), nil
		}
		return float64Value(next), nil

	case *ast.YieldExpression:
		return undefinedValue, typeError("yield outside of a rewritten generator")
	}
	return undefinedValue, fmt.Errorf("evaluator: unexpected expression %T", x.Expr)
}

func (in *Interpreter) evalAssign(e *env, x *ast.AssignExpression) (Value, error) {
	var v Value
	var err error
	if op := x.Operator.BinaryOf(); op != 0 {
		left, err := in.eval(e, x.Left)
		if err != nil {
			return undefinedValue, err
		}
		right, err := in.eval(e, x.Right)
		if err != nil {
			return undefinedValue, err
		}
		v = binary(op, left, right)
	} else if v, err = in.eval(e, x.Right); err != nil {
		return undefinedValue, err
	}
	return v, in.store(e, x.Left, v)
}

// store writes v to the identifier or member target.
func (in *Interpreter) store(e *env, target *ast.Expression, v Value) error {
	switch t := target.Expr.(type) {
	case *ast.Identifier:
		return in.assign(e, t.Name, v)
	case *ast.MemberExpression:
		obj, key, err := in.member(e, t)
		if err != nil {
			return err
		}
		o := obj.Object()
		if o == nil {
			if obj.IsUndefined() || obj.IsNull() {
				return typeError("Cannot set properties of %s (setting '%s')", obj.string(), key)
			}
			// Writes to primitives are silently dropped.
			return nil
		}
		o.Set(key, v)
		return nil
	}
	return fmt.Errorf("evaluator: invalid assignment target %T", target.Expr)
}

// member evaluates the object and the property key of m.
func (in *Interpreter) member(e *env, m *ast.MemberExpression) (Value, string, error) {
	obj, err := in.eval(e, m.Object)
	if err != nil {
		return undefinedValue, "", err
	}
	if !m.Computed {
		id, _ := m.Property.Ident()
		return obj, id.Name, nil
	}
	key, err := in.eval(e, m.Property)
	if err != nil {
		return undefinedValue, "", err
	}
	return obj, key.string(), nil
}

func (in *Interpreter) get(obj Value, key string) (Value, error) {
	switch obj.kind {
	case valueUndefined, valueNull:
		return undefinedValue, typeError("Cannot read properties of %s (reading '%s')", obj.string(), key)
	case valueObject:
		return obj.value.(*Object).Get(key), nil
	case valueString:
		s := []rune(obj.value.(string))
		if key == "length" {
			return float64Value(float64(len(s))), nil
		}
		if i, ok := arrayIndex(key); ok && i < len(s) {
			return stringValue(string(s[i])), nil
		}
	case valueFunction:
		if key == "name" {
			return stringValue(obj.value.(*Function).Name), nil
		}
	}
	return undefinedValue, nil
}

func propertyKey(key *ast.Expression) string {
	switch k := key.Expr.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.StringLiteral:
		return k.Value
	case *ast.NumberLiteral:
		return float64Value(k.Value).string()
	}
	return ""
}

func calleeText(callee *ast.Expression) string {
	switch c := callee.Expr.(type) {
	case *ast.Identifier:
		return c.Name
	case *ast.MemberExpression:
		if !c.Computed {
			if id, ok := c.Property.Ident(); ok {
				return calleeText(c.Object) + "." + id.Name
			}
		}
	}
	return "expression"
}

func binary(op token.Token, left, right Value) Value {
	switch op {
	case token.Plus:
		lp, rp := toPrimitive(left), toPrimitive(right)
		if lp.IsString() || rp.IsString() {
			return stringValue(lp.string() + rp.string())
		}
		return float64Value(lp.float64() + rp.float64())
	case token.Minus:
		return float64Value(left.float64() - right.float64())
	case token.Multiply:
		return float64Value(left.float64() * right.float64())
	case token.Slash:
		return float64Value(left.float64() / right.float64())
	case token.Remainder:
		return float64Value(math.Mod(left.float64(), right.float64()))
	case token.StrictEqual:
		return boolValue(strictEqual(left, right))
	case token.StrictNotEqual:
		return boolValue(!strictEqual(left, right))
	case token.Equal:
		return boolValue(looseEqual(left, right))
	case token.NotEqual:
		return boolValue(!looseEqual(left, right))
	case token.Less:
		return compare(left, right, func(c int) bool { return c < 0 })
	case token.Greater:
		return compare(left, right, func(c int) bool { return c > 0 })
	case token.LessOrEqual:
		return compare(left, right, func(c int) bool { return c <= 0 })
	case token.GreaterOrEqual:
		return compare(left, right, func(c int) bool { return c >= 0 })
	}
	return undefinedValue
}

func toPrimitive(v Value) Value {
	if v.kind == valueObject || v.kind == valueFunction {
		return stringValue(v.string())
	}
	return v
}

func strictEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case valueUndefined, valueNull:
		return true
	case valueNumber:
		return a.value.(float64) == b.value.(float64)
	}
	return a.value == b.value
}

func looseEqual(a, b Value) bool {
	if a.kind == b.kind {
		return strictEqual(a, b)
	}
	nullish := func(v Value) bool { return v.kind == valueUndefined || v.kind == valueNull }
	if nullish(a) || nullish(b) {
		return nullish(a) && nullish(b)
	}
	if a.kind == valueObject || a.kind == valueFunction {
		a = toPrimitive(a)
	}
	if b.kind == valueObject || b.kind == valueFunction {
		b = toPrimitive(b)
	}
	if a.kind == valueString && b.kind == valueString {
		return a.value.(string) == b.value.(string)
	}
	return a.float64() == b.float64()
}

// compare orders two values. NaN operands make every comparison false.
func compare(a, b Value, ok func(int) bool) Value {
	a, b = toPrimitive(a), toPrimitive(b)
	if a.IsString() && b.IsString() {
		return boolValue(ok(strings.Compare(a.value.(string), b.value.(string))))
	}
	x, y := a.float64(), b.float64()
	if math.IsNaN(x) || math.IsNaN(y) {
		return falseValue
	}
	switch {
	case x < y:
		return boolValue(ok(-1))
	case x > y:
		return boolValue(ok(1))
	}
	return boolValue(ok(0))
}
