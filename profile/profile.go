package profile

// Config selects what to profile and where to write the result.
type Config struct {
	Mode  string
	Path  string
	Quiet bool
}

// Option adjusts a [Config].
type Option func(*Config)

// WithMode selects the profile mode, one of [Modes]. An empty mode
// disables profiling.
func WithMode(mode string) Option {
	return func(c *Config) { c.Mode = mode }
}

// WithPath sets the directory receiving the profile output.
func WithPath(path string) Option {
	return func(c *Config) { c.Path = path }
}

// WithQuiet suppresses the startup and shutdown messages.
func WithQuiet(quiet bool) Option {
	return func(c *Config) { c.Quiet = quiet }
}

// Start begins profiling and returns the function that stops it and
// flushes output. Built without [Tag], or with an empty mode, it does
// nothing and returns a no-op stop.
func Start(opts ...Option) func() {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if c.Mode == "" {
		return func() {}
	}
	return start(c)
}
