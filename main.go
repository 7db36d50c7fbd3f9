// Command yex is a tree-walking interpreter for a small functional
// scripting language.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ardnew/yex/cli"
	"github.com/ardnew/yex/log"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := cli.Run(ctx, os.Exit, os.Args[1:]...); err != nil {
		log.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
