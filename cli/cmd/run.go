package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/yex/lang"
	"github.com/ardnew/yex/log"
)

// Run parses and evaluates a script. It is the default command, so
// `yex script.yex` and `cat script.yex | yex` both land here. An empty
// script is a successful no-op.
type Run struct {
	Script string `arg:"" default:"-" help:"Script file, or '-' for standard input."`

	MaxDepth int `name:"max-depth" default:"16384" help:"Maximum evaluation depth before aborting."`
}

// Run implements the command.
func (r *Run) Run(ctx context.Context) error {
	src, err := openScript(r.Script)
	if err != nil {
		return err
	}
	defer src.Close()

	logger := log.Default()
	prog, err := lang.ParseReader(ctx, src, lang.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Debug("running script",
		slog.String("script", r.Script),
		slog.Int("max-depth", r.MaxDepth),
	)

	_, err = prog.Run(ctx,
		lang.WithLogger(logger),
		lang.WithMaxDepth(r.MaxDepth),
	)
	return err
}
