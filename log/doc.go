// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] is a value type wrapping an [slog.Logger] together with its
// configuration. The zero value is valid and discards every message, which
// lets library code accept a Logger unconditionally and log without nil
// checks.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("script loaded", slog.String("path", path))
//
// # Configuration
//
// Configuration is applied with functional options at creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// The package also maintains a process-wide default logger used by the CLI.
// It is reconfigured with [Config] and exercised through the package-level
// functions ([Trace], [Debug], [Info], [Warn], [Error] and their Context
// variants).
//
// # Levels
//
// In addition to the four slog levels, the package defines [LevelTrace]
// below [LevelDebug] for very fine-grained diagnostics such as per-token
// and per-node records emitted by the lang package.
package log
