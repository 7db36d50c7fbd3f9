//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/yex/log"
	"github.com/ardnew/yex/profile"
)

// pprofConfig holds the profiling flags compiled in by the pprof build
// tag. The fields are embedded in [CLI] with the "pprof-" prefix.
type pprofConfig struct {
	Mode  string `name:"mode" default:"" help:"Profile mode to enable (${pprof_modes}), or empty for none."`
	Dir   string `name:"dir" default:"${cache_dir}" type:"path" help:"Directory receiving profile output."`
	Quiet bool   `name:"quiet" help:"Suppress profiler status messages."`
}

func (pprofConfig) group() kong.Group {
	return kong.Group{
		Key:         "pprof",
		Title:       "Profiling:",
		Description: "Capture runtime profiles of the interpreter.",
	}
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{"pprof_modes": strings.Join(profile.Modes(), ", ")}
}

// start begins profiling per the parsed flags, returning the stop
// function to defer.
func (c *pprofConfig) start(ctx context.Context) func() {
	if c.Mode == "" {
		return func() {}
	}
	log.DebugContext(ctx, "profiling enabled",
		slog.String("mode", c.Mode),
		slog.String("dir", c.Dir),
	)
	return profile.Start(
		profile.WithMode(c.Mode),
		profile.WithPath(c.Dir),
		profile.WithQuiet(c.Quiet),
	)
}
