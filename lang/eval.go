package lang

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ardnew/yex/log"
)

// builtinPuts is the name of the output builtin. It is not a reserved word:
// a `let` binding of the same name shadows it.
const builtinPuts = "puts"

// evaluator carries the state threaded through one evaluation: the output
// sink for `puts`, a logger, and the recursion depth guard.
type evaluator struct {
	out      io.Writer
	logger   log.Logger
	depth    int
	maxDepth int
}

// Eval evaluates expr in env and returns its value. Evaluation is
// deterministic and leaves env untouched; all extension happens in child
// frames. The context is consulted between recursive steps so callers can
// cancel runaway programs.
func Eval(ctx context.Context, expr *Expr, env *Env, opts ...Option) (Value, error) {
	o := makeOptions(opts...)
	ev := &evaluator{out: o.output, logger: o.logger, maxDepth: o.maxDepth}
	return ev.eval(ctx, expr, env)
}

func (ev *evaluator) eval(ctx context.Context, expr *Expr, env *Env) (Value, error) {
	if err := ctx.Err(); err != nil {
		return Value{}, err
	}
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.depth > ev.maxDepth {
		return Value{}, ErrStackOverflow.
			WithPosition(expr.Pos).
			With(slog.Int("depth", ev.maxDepth))
	}

	switch expr.Kind {
	case ExprLiteral:
		switch expr.Lit.Kind {
		case LitString:
			return NewString(expr.Lit.Str), nil
		default:
			return NewNumber(expr.Lit.Num), nil
		}
	case ExprIdent:
		v, ok := env.Lookup(expr.Name)
		if !ok {
			return Value{}, ErrUndefinedName.
				WithPosition(expr.Pos).
				With(slog.String("name", expr.Name))
		}
		return v, nil
	case ExprLet:
		return ev.evalLet(ctx, expr.Let, env)
	case ExprFn:
		return Value{
			Kind: ValueFunction,
			Fn:   &Function{Params: expr.Fn.Params, Body: expr.Fn.Body, Env: env},
		}, nil
	case ExprApply:
		return ev.evalApply(ctx, expr, env)
	case ExprBinary:
		return ev.evalBinary(ctx, expr, env)
	}
	return Value{}, ErrSyntax.
		WithPosition(expr.Pos).
		With(slog.String("expected", "expression"))
}

// evalLet binds the let's name and evaluates its body in the extended
// frame. The parameterized form ties the knot so the bound function can
// call itself.
func (ev *evaluator) evalLet(ctx context.Context, l *Let, env *Env) (Value, error) {
	var frame *Env
	if l.Recursive && l.Bound.Kind == ExprFn {
		frame = env.bindRecursive(l.Name, func(self *Env) Value {
			return Value{
				Kind: ValueFunction,
				Fn: &Function{
					Params: l.Bound.Fn.Params,
					Body:   l.Bound.Fn.Body,
					Env:    self,
				},
			}
		})
	} else {
		bound, err := ev.eval(ctx, l.Bound, env)
		if err != nil {
			return Value{}, err
		}
		frame = env.Bind(l.Name, bound)
	}
	return ev.eval(ctx, l.Body, frame)
}

func (ev *evaluator) evalApply(ctx context.Context, expr *Expr, env *Env) (Value, error) {
	a := expr.Apply

	// The puts builtin applies only when the callee is the bare name and
	// nothing in scope shadows it.
	if a.Callee.Kind == ExprIdent && a.Callee.Name == builtinPuts {
		if _, shadowed := env.Lookup(builtinPuts); !shadowed {
			return ev.evalPuts(ctx, expr, env)
		}
	}

	callee, err := ev.eval(ctx, a.Callee, env)
	if err != nil {
		return Value{}, err
	}
	if callee.Kind != ValueFunction {
		return Value{}, ErrNotCallable.
			WithPosition(a.Callee.Pos).
			With(slog.String("kind", callee.Kind.String()))
	}

	args, err := ev.evalArgs(ctx, a.Args, env)
	if err != nil {
		return Value{}, err
	}
	fn := callee.Fn
	if len(args) != len(fn.Params) {
		return Value{}, ErrArityMismatch.
			WithPosition(expr.Pos).
			With(
				slog.Int("expected", len(fn.Params)),
				slog.Int("given", len(args)),
			)
	}

	ev.logger.Trace("apply",
		slog.Int("arity", len(args)),
		slog.Int("depth", ev.depth),
	)

	// The call frame extends the captured definition environment, not the
	// caller's.
	return ev.eval(ctx, fn.Body, fn.Env.bindAll(fn.Params, args))
}

// evalArgs evaluates argument expressions left to right.
func (ev *evaluator) evalArgs(ctx context.Context, exprs []*Expr, env *Env) ([]Value, error) {
	args := make([]Value, len(exprs))
	for i, e := range exprs {
		v, err := ev.eval(ctx, e, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalPuts writes its single argument's raw text plus a newline and yields
// Unit.
func (ev *evaluator) evalPuts(ctx context.Context, expr *Expr, env *Env) (Value, error) {
	a := expr.Apply
	if len(a.Args) != 1 {
		return Value{}, ErrArityMismatch.
			WithPosition(expr.Pos).
			With(
				slog.String("name", builtinPuts),
				slog.Int("expected", 1),
				slog.Int("given", len(a.Args)),
			)
	}
	v, err := ev.eval(ctx, a.Args[0], env)
	if err != nil {
		return Value{}, err
	}
	if _, err := fmt.Fprintln(ev.out, v.Text()); err != nil {
		return Value{}, NewError("failed to write output").Wrap(err)
	}
	return Value{}, nil
}

func (ev *evaluator) evalBinary(ctx context.Context, expr *Expr, env *Env) (Value, error) {
	b := expr.Binary
	left, err := ev.eval(ctx, b.Left, env)
	if err != nil {
		return Value{}, err
	}
	right, err := ev.eval(ctx, b.Right, env)
	if err != nil {
		return Value{}, err
	}

	switch b.Op {
	case OpAdd:
		switch {
		case left.Kind == ValueNumber && right.Kind == ValueNumber:
			return NewNumber(left.Num + right.Num), nil
		case left.Kind == ValueString && right.Kind == ValueString:
			return NewString(left.Str + right.Str), nil
		}
	case OpMul:
		if left.Kind == ValueNumber && right.Kind == ValueNumber {
			return NewNumber(left.Num * right.Num), nil
		}
	}
	return Value{}, ErrTypeMismatch.
		WithPosition(expr.Pos).
		With(
			slog.String("op", b.Op.String()),
			slog.String("left", left.Kind.String()),
			slog.String("right", right.Kind.String()),
		)
}

// EvalBinding evaluates a standalone let binding, as entered at the REPL,
// and returns the bound value together with a frame extending env in which
// the name is visible.
func EvalBinding(ctx context.Context, b *Binding, env *Env, opts ...Option) (Value, *Env, error) {
	o := makeOptions(opts...)
	ev := &evaluator{out: o.output, logger: o.logger, maxDepth: o.maxDepth}

	if b.Recursive && b.Expr.Kind == ExprFn {
		frame := env.bindRecursive(b.Name, func(self *Env) Value {
			return Value{
				Kind: ValueFunction,
				Fn: &Function{
					Params: b.Expr.Fn.Params,
					Body:   b.Expr.Fn.Body,
					Env:    self,
				},
			}
		})
		v, _ := frame.Lookup(b.Name)
		return v, frame, nil
	}

	v, err := ev.eval(ctx, b.Expr, env)
	if err != nil {
		return Value{}, env, err
	}
	return v, env.Bind(b.Name, v), nil
}
