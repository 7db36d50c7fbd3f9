package lang

import (
	"errors"
	"testing"
)

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	lex := NewLexer(src)
	var toks []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks
		}
	}
}

func TestLexerKinds(t *testing.T) {
	t.Parallel()

	src := `let add a b = a + b in add(1, 2.5) * "x"`
	want := []TokenKind{
		TokenLet, TokenIdent, TokenIdent, TokenIdent, TokenAssign,
		TokenIdent, TokenAdd, TokenIdent, TokenIn,
		TokenIdent, TokenLParen, TokenNumber, TokenComma, TokenNumber,
		TokenRParen, TokenMul, TokenString, TokenEOF,
	}

	toks := scanAll(t, src)
	if len(toks) != len(want) {
		t.Fatalf("token count = %d, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Kind != want[i] {
			t.Errorf("token[%d] kind = %v, want %v", i, tok.Kind, want[i])
		}
	}
}

func TestLexerLexemes(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		src  string
		kind TokenKind
		lex  string
	}{
		{`42`, TokenNumber, "42"},
		{`3.14`, TokenNumber, "3.14"},
		{`"hello world"`, TokenString, "hello world"},
		{`""`, TokenString, ""},
		{`_under_score9`, TokenIdent, "_under_score9"},
		{`letter`, TokenIdent, "letter"},
		{`fnord`, TokenIdent, "fnord"},
	} {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			toks := scanAll(t, tt.src)
			if len(toks) != 2 {
				t.Fatalf("token count = %d, want 2", len(toks))
			}
			if toks[0].Kind != tt.kind || toks[0].Lexeme != tt.lex {
				t.Errorf("token = (%v, %q), want (%v, %q)",
					toks[0].Kind, toks[0].Lexeme, tt.kind, tt.lex)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, "let x = 1\nin x")
	at := func(i int) Position { return toks[i].Pos }

	if p := at(0); p.Line != 1 || p.Column != 1 {
		t.Errorf("let at %v, want line 1, column 1", p)
	}
	if p := at(4); p.Line != 2 || p.Column != 1 {
		t.Errorf("in at %v, want line 2, column 1", p)
	}
	if p := at(5); p.Line != 2 || p.Column != 4 {
		t.Errorf("x at %v, want line 2, column 4", p)
	}
}

func TestLexerComments(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, "# leading comment\n1 # trailing\n# only\n")
	if len(toks) != 2 || toks[0].Kind != TokenNumber {
		t.Fatalf("tokens = %v, want single number before EOF", toks)
	}
}

func TestLexerErrors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		src  string
		want error
	}{
		{"unexpected char", "1 @ 2", ErrUnexpectedChar},
		{"unterminated string", `"abc`, ErrUnterminatedString},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lex := NewLexer(tt.src)
			for {
				tok, err := lex.Next()
				if err != nil {
					if !errors.Is(err, tt.want) {
						t.Fatalf("Next() error = %v, want %v", err, tt.want)
					}
					return
				}
				if tok.Kind == TokenEOF {
					t.Fatalf("reached EOF without error, want %v", tt.want)
				}
			}
		})
	}
}

func TestLexerNoEscapes(t *testing.T) {
	t.Parallel()

	// Backslash has no special meaning inside string literals.
	toks := scanAll(t, `"a\n" 1`)
	if toks[0].Lexeme != `a\n` {
		t.Errorf("string lexeme = %q, want %q", toks[0].Lexeme, `a\n`)
	}
}
