package lang

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ExprKind discriminates the variants of [Expr].
type ExprKind int

const (
	ExprLiteral ExprKind = iota
	ExprIdent
	ExprLet
	ExprFn
	ExprApply
	ExprBinary
)

// String returns the variant name.
func (k ExprKind) String() string {
	switch k {
	case ExprLiteral:
		return "literal"
	case ExprIdent:
		return "identifier"
	case ExprLet:
		return "let"
	case ExprFn:
		return "fn"
	case ExprApply:
		return "apply"
	case ExprBinary:
		return "binary"
	}
	return "unknown"
}

// Expr is a node of the expression tree. Kind selects the variant, and Pos
// locates the node's first token in the source.
//
// Exactly one of the variant fields will be set based on Kind.
type Expr struct {
	Kind ExprKind
	Pos  Position

	Lit    *Literal
	Name   string
	Let    *Let
	Fn     *Fn
	Apply  *Apply
	Binary *Binary
}

// LitKind discriminates the variants of [Literal].
type LitKind int

const (
	LitNumber LitKind = iota
	LitString
)

// Literal is a number or string constant.
type Literal struct {
	Kind LitKind
	Num  float64
	Str  string
}

// Let binds Name to the value of Bound while evaluating Body. Recursive is
// set for the parameterized form `let f x = e in b`, whose bound function
// may refer to its own name.
type Let struct {
	Name      string
	Bound     *Expr
	Body      *Expr
	Recursive bool
}

// Fn is an anonymous function literal with one or more parameters.
type Fn struct {
	Params []string
	Body   *Expr
}

// Apply calls Callee with zero or more argument expressions.
type Apply struct {
	Callee *Expr
	Args   []*Expr
}

// Op is a binary operator.
type Op int

const (
	OpAdd Op = iota
	OpMul
)

// String returns the operator's source spelling.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	}
	return "?"
}

// Binary applies Op to Left and Right.
type Binary struct {
	Op    Op
	Left  *Expr
	Right *Expr
}

// Print writes an indented tree rendering of the expression to w, one node
// per line. It is intended for debugging and the `fmt --ast` output.
func (e *Expr) Print(w io.Writer) error {
	return e.print(w, 0)
}

func (e *Expr) print(w io.Writer, depth int) error {
	indent := strings.Repeat("  ", depth)
	var err error
	switch e.Kind {
	case ExprLiteral:
		switch e.Lit.Kind {
		case LitNumber:
			_, err = fmt.Fprintf(w, "%sliteral %s\n", indent, formatNumber(e.Lit.Num))
		case LitString:
			_, err = fmt.Fprintf(w, "%sliteral %s\n", indent, strconv.Quote(e.Lit.Str))
		}
	case ExprIdent:
		_, err = fmt.Fprintf(w, "%sidentifier %s\n", indent, e.Name)
	case ExprLet:
		if _, err = fmt.Fprintf(w, "%slet %s\n", indent, e.Let.Name); err != nil {
			return err
		}
		if err = e.Let.Bound.print(w, depth+1); err != nil {
			return err
		}
		return e.Let.Body.print(w, depth+1)
	case ExprFn:
		if _, err = fmt.Fprintf(w, "%sfn %s\n", indent, strings.Join(e.Fn.Params, " ")); err != nil {
			return err
		}
		return e.Fn.Body.print(w, depth+1)
	case ExprApply:
		if _, err = fmt.Fprintf(w, "%sapply\n", indent); err != nil {
			return err
		}
		if err = e.Apply.Callee.print(w, depth+1); err != nil {
			return err
		}
		for _, arg := range e.Apply.Args {
			if err = arg.print(w, depth+1); err != nil {
				return err
			}
		}
		return nil
	case ExprBinary:
		if _, err = fmt.Fprintf(w, "%sbinary %s\n", indent, e.Binary.Op); err != nil {
			return err
		}
		if err = e.Binary.Left.print(w, depth+1); err != nil {
			return err
		}
		return e.Binary.Right.print(w, depth+1)
	}
	return err
}

// ToMap converts the expression tree to nested maps and slices suitable for
// structured marshaling.
func (e *Expr) ToMap() map[string]any {
	m := map[string]any{"kind": e.Kind.String()}
	switch e.Kind {
	case ExprLiteral:
		switch e.Lit.Kind {
		case LitNumber:
			m["value"] = e.Lit.Num
		case LitString:
			m["value"] = e.Lit.Str
		}
	case ExprIdent:
		m["name"] = e.Name
	case ExprLet:
		m["name"] = e.Let.Name
		m["bound"] = e.Let.Bound.ToMap()
		m["body"] = e.Let.Body.ToMap()
	case ExprFn:
		m["params"] = e.Fn.Params
		m["body"] = e.Fn.Body.ToMap()
	case ExprApply:
		args := make([]any, len(e.Apply.Args))
		for i, arg := range e.Apply.Args {
			args[i] = arg.ToMap()
		}
		m["callee"] = e.Apply.Callee.ToMap()
		m["args"] = args
	case ExprBinary:
		m["op"] = e.Binary.Op.String()
		m["left"] = e.Binary.Left.ToMap()
		m["right"] = e.Binary.Right.ToMap()
	}
	return m
}
