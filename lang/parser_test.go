package lang

import (
	"errors"
	"strings"
	"testing"
)

func parse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := ParseString(t.Context(), src)
	if err != nil {
		t.Fatalf("ParseString(%q) error = %v", src, err)
	}
	return prog
}

func TestParseLiteralAndIdent(t *testing.T) {
	t.Parallel()

	prog := parse(t, "42")
	if prog.Root.Kind != ExprLiteral || prog.Root.Lit.Num != 42 {
		t.Errorf("root = %+v, want literal 42", prog.Root)
	}

	prog = parse(t, "x")
	if prog.Root.Kind != ExprIdent || prog.Root.Name != "x" {
		t.Errorf("root = %+v, want identifier x", prog.Root)
	}
}

func TestParseBinaryLeftAssociative(t *testing.T) {
	t.Parallel()

	// A single precedence tier: 1 + 2 * 3 parses as (1 + 2) * 3.
	prog := parse(t, "1 + 2 * 3")
	root := prog.Root
	if root.Kind != ExprBinary || root.Binary.Op != OpMul {
		t.Fatalf("root = %+v, want binary *", root)
	}
	left := root.Binary.Left
	if left.Kind != ExprBinary || left.Binary.Op != OpAdd {
		t.Fatalf("left = %+v, want binary +", left)
	}
	if right := root.Binary.Right; right.Kind != ExprLiteral || right.Lit.Num != 3 {
		t.Errorf("right = %+v, want literal 3", right)
	}
}

func TestParseGroupingOverridesAssociativity(t *testing.T) {
	t.Parallel()

	prog := parse(t, "1 + (2 * 3)")
	root := prog.Root
	if root.Kind != ExprBinary || root.Binary.Op != OpAdd {
		t.Fatalf("root = %+v, want binary +", root)
	}
	if right := root.Binary.Right; right.Kind != ExprBinary || right.Binary.Op != OpMul {
		t.Errorf("right = %+v, want binary *", right)
	}
}

func TestParseApplicationBindsTighter(t *testing.T) {
	t.Parallel()

	prog := parse(t, "f(1) + g(2)")
	root := prog.Root
	if root.Kind != ExprBinary || root.Binary.Op != OpAdd {
		t.Fatalf("root = %+v, want binary +", root)
	}
	for _, side := range []*Expr{root.Binary.Left, root.Binary.Right} {
		if side.Kind != ExprApply {
			t.Errorf("operand = %+v, want application", side)
		}
	}
}

func TestParseCurriedApplication(t *testing.T) {
	t.Parallel()

	prog := parse(t, "f(1)(2)")
	root := prog.Root
	if root.Kind != ExprApply {
		t.Fatalf("root = %+v, want application", root)
	}
	if root.Apply.Callee.Kind != ExprApply {
		t.Errorf("callee = %+v, want inner application", root.Apply.Callee)
	}
}

func TestParseLetSugar(t *testing.T) {
	t.Parallel()

	// `let f x y = e in b` desugars to binding an anonymous function, and
	// the binding is marked so the function may refer to its own name.
	prog := parse(t, "let add a b = a + b in add(1, 2)")
	root := prog.Root
	if root.Kind != ExprLet {
		t.Fatalf("root = %+v, want let", root)
	}
	l := root.Let
	if !l.Recursive {
		t.Error("Recursive = false, want true for parameterized let")
	}
	if l.Bound.Kind != ExprFn {
		t.Fatalf("bound = %+v, want fn", l.Bound)
	}
	if got := strings.Join(l.Bound.Fn.Params, " "); got != "a b" {
		t.Errorf("params = %q, want %q", got, "a b")
	}
}

func TestParsePlainLetNotRecursive(t *testing.T) {
	t.Parallel()

	prog := parse(t, "let f = fn x = x in f(1)")
	if l := prog.Root.Let; l.Recursive {
		t.Error("Recursive = true, want false for plain value binding")
	}
}

func TestParseFnRequiresParams(t *testing.T) {
	t.Parallel()

	_, err := ParseString(t.Context(), "fn = 1")
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("error = %v, want %v", err, ErrSyntax)
	}
}

func TestParseEmptySource(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"", "   \n\t  ", "# comment only\n"} {
		prog := parse(t, src)
		if prog.Root != nil {
			t.Errorf("ParseString(%q) root = %+v, want nil", src, prog.Root)
		}
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"let = 1 in 2",
		"let x 1 in 2",
		"let x = 1 2",
		"1 +",
		"(1",
		"f(1,)",
		"1 2",
	} {
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			_, err := ParseString(t.Context(), src)
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("ParseString(%q) error = %v, want %v", src, err, ErrSyntax)
			}
		})
	}
}

func TestParseErrorShowsSourceLine(t *testing.T) {
	t.Parallel()

	_, err := ParseString(t.Context(), "let x = 1\nin in")
	if err == nil {
		t.Fatal("ParseString() error = nil, want syntax error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "line 2") {
		t.Errorf("error %q does not name line 2", msg)
	}
	if !strings.Contains(msg, "in in") || !strings.Contains(msg, "^") {
		t.Errorf("error %q does not include source snippet with caret", msg)
	}
}

func TestParseInteractiveBinding(t *testing.T) {
	t.Parallel()

	expr, bind, err := ParseInteractive(t.Context(), "let square n = n * n")
	if err != nil {
		t.Fatalf("ParseInteractive() error = %v", err)
	}
	if expr != nil {
		t.Fatalf("expr = %+v, want nil for bare binding", expr)
	}
	if bind == nil || bind.Name != "square" || !bind.Recursive {
		t.Fatalf("binding = %+v, want recursive binding of square", bind)
	}

	expr, bind, err = ParseInteractive(t.Context(), "let x = 1 in x + 1")
	if err != nil {
		t.Fatalf("ParseInteractive() error = %v", err)
	}
	if bind != nil {
		t.Fatalf("binding = %+v, want nil for full let expression", bind)
	}
	if expr == nil || expr.Kind != ExprLet {
		t.Fatalf("expr = %+v, want let expression", expr)
	}
}
