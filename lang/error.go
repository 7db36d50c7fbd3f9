package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Sentinel errors for the lexer, parser, and evaluator. Callers match these
// with [errors.Is] after any amount of wrapping.
var (
	ErrUnexpectedChar     = NewError("unexpected character")
	ErrUnterminatedString = NewError("unterminated string literal")
	ErrSyntax             = NewError("syntax error")
	ErrUndefinedName      = NewError("undefined name")
	ErrNotCallable        = NewError("value is not callable")
	ErrArityMismatch      = NewError("arity mismatch")
	ErrTypeMismatch       = NewError("operand type mismatch")
	ErrStackOverflow      = NewError("maximum evaluation depth exceeded")
	ErrReadInput          = NewError("failed to read input")
)

// Error is the concrete error type produced throughout the package. It
// carries a message, an optional wrapped cause, an optional source position,
// and structured attributes for logging.
type Error struct {
	msg   string
	err   error
	pos   *Position
	attrs []slog.Attr
}

// NewError returns a new [Error] with the given message and attributes.
func NewError(msg string, attrs ...slog.Attr) *Error {
	return &Error{msg: msg, attrs: attrs}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.msg)
	if e.pos != nil {
		sb.WriteString(" at ")
		sb.WriteString(e.pos.String())
	}
	for _, a := range e.attrs {
		sb.WriteString(" [")
		sb.WriteString(a.String())
		sb.WriteString("]")
	}
	if e.err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.err.Error())
	}
	return sb.String()
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether e matches target, treating the shared sentinel values
// declared in this package as match anchors.
func (e *Error) Is(target error) bool {
	if o, ok := target.(*Error); ok {
		return e == o || e.msg == o.msg
	}
	return false
}

// Wrap returns a copy of e that wraps err as its cause.
func (e *Error) Wrap(err error) *Error {
	dup := *e
	dup.err = err
	return &dup
}

// With returns a copy of e extended with the given attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	dup := *e
	dup.attrs = append(append([]slog.Attr{}, e.attrs...), attrs...)
	return &dup
}

// WithPosition returns a copy of e annotated with a source position.
func (e *Error) WithPosition(pos Position) *Error {
	dup := *e
	dup.pos = &pos
	return &dup
}

// Position returns the source position attached to e, if any.
func (e *Error) Position() (Position, bool) {
	if e.pos == nil {
		return Position{}, false
	}
	return *e.pos, true
}

// LogValue implements [slog.LogValuer].
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)
	attrs = append(attrs, slog.String("msg", e.msg))
	if e.pos != nil {
		attrs = append(attrs,
			slog.Int("line", e.pos.Line),
			slog.Int("column", e.pos.Column),
		)
	}
	attrs = append(attrs, e.attrs...)
	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}
	return slog.GroupValue(attrs...)
}

// SourceError decorates an [Error] that carries a position with the source
// text it refers to, so its message can include the offending line and a
// caret marking the column.
type SourceError struct {
	Err    error
	Source string
}

// Annotate wraps err in a [SourceError] when err carries a source position.
// Errors without positions are returned unchanged.
func Annotate(err error, source string) error {
	if err == nil {
		return nil
	}
	var le *Error
	if !errors.As(err, &le) {
		return err
	}
	if _, ok := le.Position(); !ok {
		return err
	}
	return &SourceError{Err: err, Source: source}
}

// Unwrap returns the decorated error.
func (e *SourceError) Unwrap() error { return e.Err }

// Error renders the decorated error followed by the source line it refers
// to, with a caret under the offending column:
//
//	syntax error at line 2, column 9 [expected='in']
//	  2 | let x = = 1
//	            ^
func (e *SourceError) Error() string {
	var le *Error
	if !errors.As(e.Err, &le) {
		return e.Err.Error()
	}
	pos, ok := le.Position()
	if !ok {
		return e.Err.Error()
	}

	lines := strings.Split(e.Source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return e.Err.Error()
	}
	line := lines[pos.Line-1]

	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	sb.WriteString("\n")

	prefix := "  " + strconv.Itoa(pos.Line) + " | "
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteString("\n")

	// Align the caret with the column, preserving any tabs in the line.
	pad := len(prefix) + pos.Column - 1
	caret := make([]byte, 0, pad+1)
	for i := 0; i < pad; i++ {
		caret = append(caret, ' ')
	}
	caret = append(caret, '^')
	sb.Write(caret)
	return sb.String()
}
