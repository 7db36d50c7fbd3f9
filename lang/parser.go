package lang

import (
	"log/slog"
	"strconv"

	"github.com/ardnew/yex/log"
)

// parser is a recursive-descent parser with one token of lookahead.
type parser struct {
	lexer   *Lexer
	current Token
	logger  log.Logger
}

// newParser primes the parser with the first token of src.
func newParser(src string, logger log.Logger) (*parser, error) {
	p := &parser{lexer: NewLexer(src), logger: logger}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p, nil
}

// next advances the lookahead token.
func (p *parser) next() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// throw builds a syntax error at the current token.
func (p *parser) throw(expected string) error {
	p.logger.Trace("syntax error",
		slog.String("expected", expected),
		slog.String("found", p.current.describe()),
		slog.String("position", p.current.Pos.String()),
	)
	return ErrSyntax.
		WithPosition(p.current.Pos).
		With(
			slog.String("expected", expected),
			slog.String("found", p.current.describe()),
		)
}

// expect consumes the current token if it has the given kind, or fails with
// a syntax error naming the expected kind.
func (p *parser) expect(kind TokenKind) (Token, error) {
	if p.current.Kind != kind {
		return Token{}, p.throw(kind.String())
	}
	tok := p.current
	return tok, p.next()
}

// parseExpr parses a full expression: let, fn, or a binary chain.
func (p *parser) parseExpr() (*Expr, error) {
	switch p.current.Kind {
	case TokenLet:
		return p.parseLet()
	case TokenFn:
		return p.parseFn()
	}
	return p.parseBinary()
}

// parseLet parses `let NAME param* = bound in body`. With parameters the
// bound expression is wrapped in a function whose body may refer to NAME.
func (p *parser) parseLet() (*Expr, error) {
	name, bound, recursive, pos, err := p.parseLetBinding()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenIn); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Expr{
		Kind: ExprLet,
		Pos:  pos,
		Let:  &Let{Name: name, Bound: bound, Body: body, Recursive: recursive},
	}, nil
}

// parseLetBinding parses the binding half of a let, stopping before the
// `in` keyword.
func (p *parser) parseLetBinding() (name string, bound *Expr, recursive bool, pos Position, err error) {
	pos = p.current.Pos
	if _, err = p.expect(TokenLet); err != nil {
		return
	}
	tok, err := p.expect(TokenIdent)
	if err != nil {
		return
	}
	name = tok.Lexeme

	var params []string
	for p.current.Kind == TokenIdent {
		params = append(params, p.current.Lexeme)
		if err = p.next(); err != nil {
			return
		}
	}
	if _, err = p.expect(TokenAssign); err != nil {
		return
	}
	bound, err = p.parseExpr()
	if err != nil {
		return
	}
	if len(params) > 0 {
		bound = &Expr{
			Kind: ExprFn,
			Pos:  bound.Pos,
			Fn:   &Fn{Params: params, Body: bound},
		}
		recursive = true
	}
	return
}

// parseFn parses `fn param+ = body`.
func (p *parser) parseFn() (*Expr, error) {
	pos := p.current.Pos
	if _, err := p.expect(TokenFn); err != nil {
		return nil, err
	}
	var params []string
	for p.current.Kind == TokenIdent {
		params = append(params, p.current.Lexeme)
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	if len(params) == 0 {
		return nil, p.throw(TokenIdent.String())
	}
	if _, err := p.expect(TokenAssign); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Expr{Kind: ExprFn, Pos: pos, Fn: &Fn{Params: params, Body: body}}, nil
}

// parseBinary parses a left-associative chain of '+' and '*', which share
// a single precedence tier.
func (p *parser) parseBinary() (*Expr, error) {
	left, err := p.parseApply()
	if err != nil {
		return nil, err
	}
	for p.current.Kind == TokenAdd || p.current.Kind == TokenMul {
		op := OpAdd
		if p.current.Kind == TokenMul {
			op = OpMul
		}
		pos := p.current.Pos
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.parseApply()
		if err != nil {
			return nil, err
		}
		left = &Expr{
			Kind:   ExprBinary,
			Pos:    pos,
			Binary: &Binary{Op: op, Left: left, Right: right},
		}
	}
	return left, nil
}

// parseApply parses a primary expression followed by any number of
// juxtaposed argument lists, as in `f(1)(2)`.
func (p *parser) parseApply() (*Expr, error) {
	callee, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.current.Kind == TokenLParen {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		callee = &Expr{
			Kind:  ExprApply,
			Pos:   callee.Pos,
			Apply: &Apply{Callee: callee, Args: args},
		}
	}
	return callee, nil
}

// parseArgs parses a parenthesized, comma-separated argument list, which
// may be empty.
func (p *parser) parseArgs() ([]*Expr, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	if p.current.Kind == TokenRParen {
		return nil, p.next()
	}
	var args []*Expr
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.current.Kind != TokenComma {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	_, err := p.expect(TokenRParen)
	return args, err
}

func (p *parser) parsePrimary() (*Expr, error) {
	pos := p.current.Pos
	switch p.current.Kind {
	case TokenNumber:
		num, err := strconv.ParseFloat(p.current.Lexeme, 64)
		if err != nil {
			return nil, ErrSyntax.
				WithPosition(pos).
				With(slog.String("expected", "number literal")).
				Wrap(err)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return &Expr{
			Kind: ExprLiteral,
			Pos:  pos,
			Lit:  &Literal{Kind: LitNumber, Num: num},
		}, nil
	case TokenString:
		str := p.current.Lexeme
		if err := p.next(); err != nil {
			return nil, err
		}
		return &Expr{
			Kind: ExprLiteral,
			Pos:  pos,
			Lit:  &Literal{Kind: LitString, Str: str},
		}, nil
	case TokenIdent:
		name := p.current.Lexeme
		if err := p.next(); err != nil {
			return nil, err
		}
		return &Expr{Kind: ExprIdent, Pos: pos, Name: name}, nil
	case TokenLParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil
	case TokenLet:
		return p.parseLet()
	case TokenFn:
		return p.parseFn()
	}
	return nil, p.throw("expression")
}
