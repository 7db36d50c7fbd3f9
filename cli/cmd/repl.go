package cmd

import (
	"context"

	"github.com/ardnew/yex/cli/cmd/repl"
	"github.com/ardnew/yex/log"
)

// Repl starts an interactive session with persistent bindings, history,
// and completion.
type Repl struct {
	HistoryFile string `name:"history-file" default:"${history_file}" help:"Path of the session history file ('' disables history)." type:"path"`

	MaxDepth int `name:"max-depth" default:"16384" help:"Maximum evaluation depth before aborting."`
}

// Run implements the command.
func (r *Repl) Run(ctx context.Context) error {
	return repl.Run(ctx, log.Default(),
		repl.WithHistoryFile(r.HistoryFile),
		repl.WithMaxDepth(r.MaxDepth),
	)
}
