package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/yex/lang"
	"github.com/ardnew/yex/log"
)

// Eval evaluates an expression given on the command line and prints its
// display form, quoting strings the way the REPL echo does.
type Eval struct {
	Expr []string `arg:"" help:"Expression to evaluate."`

	MaxDepth int `name:"max-depth" default:"16384" help:"Maximum evaluation depth before aborting."`
}

// Run implements the command.
func (e *Eval) Run(ctx context.Context) error {
	logger := log.Default()
	source := strings.Join(e.Expr, " ")

	expr, err := lang.ParseExprString(ctx, source, lang.WithLogger(logger))
	if err != nil {
		return err
	}
	v, err := lang.Eval(ctx, expr, lang.NewEnv(),
		lang.WithLogger(logger),
		lang.WithMaxDepth(e.MaxDepth),
	)
	if err != nil {
		return lang.Annotate(err, source)
	}
	fmt.Println(v.String())
	return nil
}
