package lang

import (
	"io"
	"os"

	"github.com/ardnew/yex/log"
)

// DefaultMaxDepth is the evaluation depth limit applied when no
// [WithMaxDepth] option is given. The limit bounds recursion in the
// tree-walking evaluator, not goroutine stack size.
const DefaultMaxDepth = 16384

// options collects the adjustable parameters of parsing and evaluation.
type options struct {
	output   io.Writer
	logger   log.Logger
	maxDepth int
}

// Option adjusts parsing or evaluation behavior.
type Option func(*options)

func makeOptions(opts ...Option) options {
	o := options{output: os.Stdout, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOutput directs the text written by `puts` to w instead of standard
// output.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithLogger attaches a logger for trace diagnostics. The zero Logger
// discards everything.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxDepth overrides the evaluation depth limit. Values less than 1
// are ignored.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxDepth = n
		}
	}
}
