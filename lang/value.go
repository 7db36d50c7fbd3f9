package lang

import (
	"strconv"
)

// ValueKind discriminates the variants of [Value]. The zero Value is Unit.
type ValueKind int

const (
	ValueUnit ValueKind = iota
	ValueNumber
	ValueString
	ValueFunction
)

// String returns the kind name used in diagnostics.
func (k ValueKind) String() string {
	switch k {
	case ValueUnit:
		return "nil"
	case ValueNumber:
		return "number"
	case ValueString:
		return "string"
	case ValueFunction:
		return "function"
	}
	return "unknown"
}

// Value is a runtime value. Kind selects the variant; at most one of the
// remaining fields is meaningful. The zero Value is Unit, the result of
// `puts` and of running an empty program.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Fn   *Function
}

// Function is a function value: parameter names, a body, and the
// environment frame chain captured at the point of definition. Calls extend
// Env, not the caller's environment.
type Function struct {
	Params []string
	Body   *Expr
	Env    *Env
}

// NewNumber returns a number value.
func NewNumber(n float64) Value { return Value{Kind: ValueNumber, Num: n} }

// NewString returns a string value.
func NewString(s string) Value { return Value{Kind: ValueString, Str: s} }

// formatNumber renders a float in plain decimal notation with the fewest
// digits that round-trip, never scientific notation. Integral values print
// with no fractional part.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String returns the display form of the value, as echoed by the REPL:
// numbers in plain decimal, strings quoted, functions as fn(N) where N is
// the arity, and Unit as nil.
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return formatNumber(v.Num)
	case ValueString:
		return strconv.Quote(v.Str)
	case ValueFunction:
		return "fn(" + strconv.Itoa(len(v.Fn.Params)) + ")"
	}
	return "nil"
}

// Text returns the raw text form of the value, as written by `puts`. It is
// identical to [Value.String] except that strings are unquoted.
func (v Value) Text() string {
	if v.Kind == ValueString {
		return v.Str
	}
	return v.String()
}
