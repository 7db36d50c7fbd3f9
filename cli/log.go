package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/yex/log"
)

// logConfig holds the logging flags shared by every command. The fields
// are embedded in [CLI] with the "log-" prefix.
type logConfig struct {
	Level  string `name:"level" default:"info" enum:"trace,debug,info,warn,error" help:"Minimum level of messages to log (${enum})."`
	Format string `name:"format" default:"text" enum:"text,json" help:"Log message encoding (${enum})."`
	Time   string `name:"time" default:"RFC3339" help:"Timestamp layout, by name (RFC3339, Kitchen, ...) or as a Go reference layout."`
	Caller bool   `name:"caller" help:"Annotate messages with their caller."`
	Pretty bool   `name:"pretty" negatable:"" default:"true" help:"Colorize text output."`
}

// group returns the kong flag group for these flags.
func (logConfig) group() kong.Group {
	return kong.Group{
		Key:         "log",
		Title:       "Logging:",
		Description: "Control destination and verbosity of log messages.",
	}
}

// scan applies any logging flags found in raw arguments before kong runs,
// so diagnostics emitted during flag parsing itself already honor them.
// Errors are ignored here; kong reports them properly afterward.
func (c *logConfig) scan(args []string) {
	value := func(flag string) (string, bool) {
		for i, arg := range args {
			if arg == flag && i+1 < len(args) {
				return args[i+1], true
			}
			if rest, ok := strings.CutPrefix(arg, flag+"="); ok {
				return rest, true
			}
		}
		return "", false
	}
	if s, ok := value("--log-level"); ok {
		log.Config(log.WithLevel(log.ParseLevel(s)))
	}
	if s, ok := value("--log-format"); ok {
		log.Config(log.WithFormat(log.ParseFormat(s)))
	}
}

// start applies the parsed flags to the process-wide default logger.
func (c *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(c.Level)),
		log.WithFormat(log.ParseFormat(c.Format)),
		log.WithTimeLayout(c.Time),
		log.WithCaller(c.Caller),
		log.WithPretty(c.Pretty),
	)
	log.DebugContext(ctx, "logging configured",
		slog.String("level", c.Level),
		slog.String("format", c.Format),
	)
}
