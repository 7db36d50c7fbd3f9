package lang

import (
	"log/slog"
	"unicode"
	"unicode/utf8"
)

// keywords maps reserved identifiers to their token kinds.
var keywords = map[string]TokenKind{
	"let": TokenLet,
	"in":  TokenIn,
	"fn":  TokenFn,
}

// Lexer produces tokens from source text in a single forward pass. It is
// not safe for concurrent use and cannot be restarted; create a new Lexer
// to scan the same source again.
type Lexer struct {
	src  string
	off  int
	line int
	col  int
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// pos returns the current source position.
func (l *Lexer) pos() Position {
	return Position{Offset: l.off, Line: l.line, Column: l.col}
}

// peek returns the rune at the current offset without consuming it, or
// utf8.RuneError at end of input.
func (l *Lexer) peek() rune {
	if l.off >= len(l.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.off:])
	return r
}

// advance consumes and returns the rune at the current offset, updating the
// line and column counters.
func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// eof reports whether the entire source has been consumed.
func (l *Lexer) eof() bool { return l.off >= len(l.src) }

// skipTrivia consumes whitespace and line comments, which run from '#' to
// the end of the line.
func (l *Lexer) skipTrivia() {
	for !l.eof() {
		switch r := l.peek(); {
		case unicode.IsSpace(r):
			l.advance()
		case r == '#':
			for !l.eof() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// Next returns the next token in the source, or a token of kind [TokenEOF]
// once input is exhausted. Every subsequent call after EOF returns EOF
// again.
func (l *Lexer) Next() (Token, error) {
	l.skipTrivia()

	start := l.pos()
	if l.eof() {
		return Token{Kind: TokenEOF, Pos: start}, nil
	}

	switch r := l.peek(); {
	case isIdentStart(r):
		return l.scanIdent(start), nil
	case unicode.IsDigit(r):
		return l.scanNumber(start), nil
	case r == '"':
		return l.scanString(start)
	}

	r := l.advance()
	var kind TokenKind
	switch r {
	case '+':
		kind = TokenAdd
	case '*':
		kind = TokenMul
	case '=':
		kind = TokenAssign
	case '(':
		kind = TokenLParen
	case ')':
		kind = TokenRParen
	case ',':
		kind = TokenComma
	default:
		return Token{}, ErrUnexpectedChar.
			WithPosition(start).
			With(slog.String("char", string(r)))
	}
	return Token{Kind: kind, Lexeme: string(r), Pos: start}, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *Lexer) scanIdent(start Position) Token {
	for !l.eof() && isIdentPart(l.peek()) {
		l.advance()
	}
	lexeme := l.src[start.Offset:l.off]
	if kind, ok := keywords[lexeme]; ok {
		return Token{Kind: kind, Lexeme: lexeme, Pos: start}
	}
	return Token{Kind: TokenIdent, Lexeme: lexeme, Pos: start}
}

// scanNumber consumes an unsigned decimal literal with an optional
// fractional part. A trailing '.' with no following digit is left for the
// next token rather than consumed.
func (l *Lexer) scanNumber(start Position) Token {
	for !l.eof() && unicode.IsDigit(l.peek()) {
		l.advance()
	}
	if !l.eof() && l.peek() == '.' {
		mark := *l
		l.advance()
		if l.eof() || !unicode.IsDigit(l.peek()) {
			*l = mark
		} else {
			for !l.eof() && unicode.IsDigit(l.peek()) {
				l.advance()
			}
		}
	}
	return Token{Kind: TokenNumber, Lexeme: l.src[start.Offset:l.off], Pos: start}
}

// scanString consumes a double-quoted string literal. There are no escape
// sequences; the literal runs to the next '"'.
func (l *Lexer) scanString(start Position) (Token, error) {
	l.advance() // opening quote
	body := l.off
	for !l.eof() && l.peek() != '"' {
		l.advance()
	}
	if l.eof() {
		return Token{}, ErrUnterminatedString.WithPosition(start)
	}
	lexeme := l.src[body:l.off]
	l.advance() // closing quote
	return Token{Kind: TokenString, Lexeme: lexeme, Pos: start}, nil
}
