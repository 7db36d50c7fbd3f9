package cmd

import (
	"context"
	"os"

	"github.com/ardnew/yex/lang"
	"github.com/ardnew/yex/log"
)

// Fmt reparses a script and writes it back out in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical yex syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format the expression tree as JSON."`
	YAML   YAML   `cmd:""                    help:"Format the expression tree as YAML."`
	AST    AST    `cmd:""                    help:"Format as an indented expression tree."`
}

// parseScript opens and parses the script shared by every fmt subcommand.
func parseScript(ctx context.Context, path string) (*lang.Program, error) {
	src, err := openScript(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return lang.ParseReader(ctx, src, lang.WithLogger(log.Default()))
}

// Native rewrites a script in canonical syntax: single spaces, minimal
// parentheses, comments dropped.
type Native struct {
	Script string `arg:"" default:"-" help:"Script file, or '-' for standard input."`
}

// Run executes the native subcommand.
func (f *Native) Run(ctx context.Context) error {
	prog, err := parseScript(ctx, f.Script)
	if err != nil {
		return err
	}
	return prog.Format(os.Stdout)
}

// JSON dumps the expression tree as indented JSON.
type JSON struct {
	Script string `arg:"" default:"-" help:"Script file, or '-' for standard input."`
}

// Run executes the json subcommand.
func (f *JSON) Run(ctx context.Context) error {
	prog, err := parseScript(ctx, f.Script)
	if err != nil {
		return err
	}
	return prog.FormatJSON(os.Stdout)
}

// YAML dumps the expression tree as YAML.
type YAML struct {
	Script string `arg:"" default:"-" help:"Script file, or '-' for standard input."`
}

// Run executes the yaml subcommand.
func (f *YAML) Run(ctx context.Context) error {
	prog, err := parseScript(ctx, f.Script)
	if err != nil {
		return err
	}
	return prog.FormatYAML(ctx, os.Stdout)
}

// AST dumps the expression tree in indented debug form.
type AST struct {
	Script string `arg:"" default:"-" help:"Script file, or '-' for standard input."`
}

// Run executes the ast subcommand.
func (f *AST) Run(ctx context.Context) error {
	prog, err := parseScript(ctx, f.Script)
	if err != nil {
		return err
	}
	return prog.Print(os.Stdout)
}
