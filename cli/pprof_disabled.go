//go:build !pprof

package cli

import (
	"context"

	"github.com/alecthomas/kong"
)

// pprofConfig is the profiling flag group compiled out of default builds.
// Rebuild with the pprof tag to enable it.
type pprofConfig struct{}

func (pprofConfig) group() kong.Group {
	return kong.Group{
		Key:   "pprof",
		Title: "Profiling:",
	}
}

func (pprofConfig) vars() kong.Vars { return kong.Vars{} }

func (pprofConfig) start(context.Context) func() { return func() {} }
