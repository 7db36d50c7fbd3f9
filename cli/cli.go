// Package cli wires flag parsing to the interpreter's subcommands.
package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/yex/cli/cmd"
	"github.com/ardnew/yex/pkg"
)

// CLI is the root of the command grammar. Running with no subcommand
// falls through to [cmd.Run], so `yex script.yex` just works.
type CLI struct {
	Log   logConfig   `embed:"" prefix:"log-" group:"log"`
	Pprof pprofConfig `embed:"" prefix:"pprof-" group:"pprof"`

	Run     cmd.Run     `cmd:"" default:"withargs" help:"Parse and evaluate a script."`
	Eval    cmd.Eval    `cmd:"" help:"Evaluate an expression and print its value."`
	Fmt     cmd.Fmt     `cmd:"" help:"Rewrite a script in canonical or structured form."`
	Repl    cmd.Repl    `cmd:"" help:"Start an interactive session."`
	Version cmd.Version `cmd:"" help:"Print version information."`
}

// Run parses args and dispatches to the selected command. The exit
// function is invoked by kong for --help and usage errors.
func Run(ctx context.Context, exit func(int), args ...string) error {
	cli := &CLI{}

	// Apply logging flags before kong parses, so parse-time diagnostics
	// already honor them.
	cli.Log.scan(args)

	vars := kong.Vars{
		"cache_dir":    cacheDir(),
		"history_file": historyFile(),
	}
	for k, v := range cli.Pprof.vars() {
		vars[k] = v
	}

	parser, err := kong.New(cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups([]kong.Group{
			cli.Log.group(),
			cli.Pprof.group(),
		}),
		vars,
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
