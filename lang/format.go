package lang

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the program in canonical native syntax: single spaces
// around operators and keywords, parentheses only where required to
// preserve the parse, and a trailing newline. An empty program formats to
// an empty output.
func (prog *Program) Format(w io.Writer) error {
	if prog.Root == nil {
		return nil
	}
	var sb strings.Builder
	formatExpr(&sb, prog.Root)
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// formatExpr renders e without enclosing parentheses.
func formatExpr(sb *strings.Builder, e *Expr) {
	switch e.Kind {
	case ExprLiteral:
		switch e.Lit.Kind {
		case LitNumber:
			sb.WriteString(formatNumber(e.Lit.Num))
		case LitString:
			// String literals have no escape sequences, so the raw body
			// between quotes always round-trips.
			sb.WriteByte('"')
			sb.WriteString(e.Lit.Str)
			sb.WriteByte('"')
		}
	case ExprIdent:
		sb.WriteString(e.Name)
	case ExprLet:
		sb.WriteString("let ")
		sb.WriteString(e.Let.Name)
		// Restore the parameterized sugar when the binding carries it.
		if e.Let.Recursive && e.Let.Bound.Kind == ExprFn {
			for _, p := range e.Let.Bound.Fn.Params {
				sb.WriteByte(' ')
				sb.WriteString(p)
			}
			sb.WriteString(" = ")
			formatExpr(sb, e.Let.Bound.Fn.Body)
		} else {
			sb.WriteString(" = ")
			formatExpr(sb, e.Let.Bound)
		}
		sb.WriteString(" in ")
		formatExpr(sb, e.Let.Body)
	case ExprFn:
		sb.WriteString("fn")
		for _, p := range e.Fn.Params {
			sb.WriteByte(' ')
			sb.WriteString(p)
		}
		sb.WriteString(" = ")
		formatExpr(sb, e.Fn.Body)
	case ExprApply:
		// Application binds tighter than binary operators, so a binary
		// callee keeps its parentheses.
		if c := e.Apply.Callee; c.Kind == ExprLet || c.Kind == ExprFn || c.Kind == ExprBinary {
			sb.WriteByte('(')
			formatExpr(sb, c)
			sb.WriteByte(')')
		} else {
			formatExpr(sb, c)
		}
		sb.WriteByte('(')
		for i, arg := range e.Apply.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			formatExpr(sb, arg)
		}
		sb.WriteByte(')')
	case ExprBinary:
		formatOperand(sb, e.Binary.Left, false)
		sb.WriteByte(' ')
		sb.WriteString(e.Binary.Op.String())
		sb.WriteByte(' ')
		formatOperand(sb, e.Binary.Right, true)
	}
}

// formatOperand renders e with parentheses when omitting them would change
// how the output parses. Operators are left-associative on a single tier,
// so a binary right operand keeps its parentheses while a left operand
// sheds them; let and fn extend to the end of input and must always be
// wrapped in operand position.
func formatOperand(sb *strings.Builder, e *Expr, right bool) {
	paren := e.Kind == ExprLet || e.Kind == ExprFn || (right && e.Kind == ExprBinary)
	if paren {
		sb.WriteByte('(')
	}
	formatExpr(sb, e)
	if paren {
		sb.WriteByte(')')
	}
}

// FormatJSON writes the program's expression tree as indented JSON.
func (prog *Program) FormatJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if prog.Root == nil {
		return enc.Encode(nil)
	}
	return enc.Encode(prog.Root.ToMap())
}

// FormatYAML writes the program's expression tree as YAML.
func (prog *Program) FormatYAML(ctx context.Context, w io.Writer) error {
	var v any
	if prog.Root != nil {
		v = prog.Root.ToMap()
	}
	out, err := yaml.MarshalContext(ctx, v,
		yaml.Indent(2),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Print writes the program's expression tree in indented debug form.
func (prog *Program) Print(w io.Writer) error {
	if prog.Root == nil {
		return nil
	}
	return prog.Root.Print(w)
}
