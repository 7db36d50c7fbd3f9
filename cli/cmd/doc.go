// Package cmd implements the subcommands of the yex command-line
// interface. Each command is a struct tagged for kong and carries a Run
// method invoked after flag parsing.
package cmd
