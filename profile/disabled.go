//go:build !pprof

package profile

// Modes lists the supported profile modes. Without the build tag there
// are none.
func Modes() []string { return nil }

func start(Config) func() { return func() {} }
