package lang

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// Program is a parsed script. Root is nil when the source contained no
// tokens, in which case running the program is a successful no-op yielding
// Unit.
type Program struct {
	Root   *Expr
	Source string
}

// Binding is a standalone `let` binding without an `in` body, as accepted
// by interactive sessions.
type Binding struct {
	Name      string
	Expr      *Expr
	Recursive bool
}

// programCache memoizes parsed programs keyed by a hash of their source, so
// re-running an unchanged script skips the front end. Entries store the
// source alongside the tree to disarm hash collisions.
var programCache sync.Map

// ParseString parses a complete program from source. An empty or
// whitespace-only source parses to a Program with a nil Root. Errors are
// annotated with the offending source line.
func ParseString(ctx context.Context, source string, opts ...Option) (*Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o := makeOptions(opts...)

	key := xxh3.HashString(source)
	if hit, ok := programCache.Load(key); ok {
		if prog := hit.(*Program); prog.Source == source {
			o.logger.Trace("parse cache hit", slog.Uint64("key", key))
			return prog, nil
		}
	}

	p, err := newParser(source, o.logger)
	if err != nil {
		return nil, Annotate(err, source)
	}

	prog := &Program{Source: source}
	if p.current.Kind != TokenEOF {
		root, err := p.parseExpr()
		if err != nil {
			return nil, Annotate(err, source)
		}
		if _, err := p.expect(TokenEOF); err != nil {
			return nil, Annotate(err, source)
		}
		prog.Root = root
	}

	programCache.Store(key, prog)
	return prog, nil
}

// ParseReader parses a complete program from r, reading it to EOF. Large
// inputs are prefetched on a background goroutine while parsing of earlier
// chunks would otherwise block on I/O.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Program, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	src, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}
	return ParseString(ctx, string(src), opts...)
}

// ParseExprString parses a single expression from source, rejecting empty
// input and trailing tokens.
func ParseExprString(ctx context.Context, source string, opts ...Option) (*Expr, error) {
	prog, err := ParseString(ctx, source, opts...)
	if err != nil {
		return nil, err
	}
	if prog.Root == nil {
		return nil, ErrSyntax.
			WithPosition(Position{Line: 1, Column: 1}).
			With(
				slog.String("expected", "expression"),
				slog.String("found", "end of input"),
			)
	}
	return prog.Root, nil
}

// ParseInteractive parses one line of interactive input. A `let` without a
// trailing `in` body parses to a Binding that the session may install in
// its persistent environment; anything else parses to an ordinary
// expression. Exactly one of the two results is non-nil on success.
func ParseInteractive(ctx context.Context, source string, opts ...Option) (*Expr, *Binding, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	o := makeOptions(opts...)

	p, err := newParser(source, o.logger)
	if err != nil {
		return nil, nil, Annotate(err, source)
	}

	if p.current.Kind == TokenLet {
		name, bound, recursive, pos, err := p.parseLetBinding()
		if err != nil {
			return nil, nil, Annotate(err, source)
		}
		if p.current.Kind == TokenEOF {
			return nil, &Binding{Name: name, Expr: bound, Recursive: recursive}, nil
		}
		// A body follows, so this is a full let expression. Rather than
		// rewind, rebuild it from the pieces already parsed.
		if _, err := p.expect(TokenIn); err != nil {
			return nil, nil, Annotate(err, source)
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, nil, Annotate(err, source)
		}
		if _, err := p.expect(TokenEOF); err != nil {
			return nil, nil, Annotate(err, source)
		}
		expr := &Expr{
			Kind: ExprLet,
			Pos:  pos,
			Let:  &Let{Name: name, Bound: bound, Body: body, Recursive: recursive},
		}
		return expr, nil, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, nil, Annotate(err, source)
	}
	if _, err := p.expect(TokenEOF); err != nil {
		return nil, nil, Annotate(err, source)
	}
	return expr, nil, nil
}

// Run evaluates the program in a fresh root environment and returns its
// value. Runtime errors are annotated with the source line they refer to.
func (prog *Program) Run(ctx context.Context, opts ...Option) (Value, error) {
	if prog.Root == nil {
		return Value{}, nil
	}
	v, err := Eval(ctx, prog.Root, NewEnv(), opts...)
	if err != nil {
		return Value{}, Annotate(err, prog.Source)
	}
	return v, nil
}
