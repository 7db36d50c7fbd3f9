package lang

import "strconv"

// TokenKind identifies the lexical class of a [Token].
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenNumber
	TokenString
	TokenLet
	TokenIn
	TokenFn
	TokenAdd
	TokenMul
	TokenAssign
	TokenLParen
	TokenRParen
	TokenComma
)

// String returns a human-readable description of the token kind, suitable
// for use in diagnostics ("expected ..., found ...").
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenNumber:
		return "number literal"
	case TokenString:
		return "string literal"
	case TokenLet:
		return "'let'"
	case TokenIn:
		return "'in'"
	case TokenFn:
		return "'fn'"
	case TokenAdd:
		return "'+'"
	case TokenMul:
		return "'*'"
	case TokenAssign:
		return "'='"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenComma:
		return "','"
	}
	return "unknown token"
}

// Position locates a point in source text. Offset is a byte offset from the
// start of input; Line and Column are 1-based and count runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String renders the position as "line L, column C".
func (p Position) String() string {
	return "line " + strconv.Itoa(p.Line) + ", column " + strconv.Itoa(p.Column)
}

// Token is a single lexical unit of source text.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Pos    Position
}

// describe renders a token for diagnostics, quoting its lexeme when one
// exists.
func (t Token) describe() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenIdent, TokenNumber:
		return "'" + t.Lexeme + "'"
	case TokenString:
		return strconv.Quote(t.Lexeme)
	}
	return t.Kind.String()
}
