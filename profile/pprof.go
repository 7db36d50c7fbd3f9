//go:build pprof

package profile

import "github.com/pkg/profile"

// Modes lists the supported profile modes.
func Modes() []string {
	return []string{
		"cpu", "mem", "allocs", "heap",
		"mutex", "block", "goroutine",
		"threadcreation", "trace", "clock",
	}
}

func start(c Config) func() {
	opts := []func(*profile.Profile){
		profile.ProfilePath(c.Path),
	}
	switch c.Mode {
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	case "allocs":
		opts = append(opts, profile.MemProfileAllocs)
	case "heap":
		opts = append(opts, profile.MemProfileHeap)
	case "mutex":
		opts = append(opts, profile.MutexProfile)
	case "block":
		opts = append(opts, profile.BlockProfile)
	case "goroutine":
		opts = append(opts, profile.GoroutineProfile)
	case "threadcreation":
		opts = append(opts, profile.ThreadcreationProfile)
	case "trace":
		opts = append(opts, profile.TraceProfile)
	case "clock":
		opts = append(opts, profile.ClockProfile)
	default:
		return func() {}
	}
	if c.Quiet {
		opts = append(opts, profile.Quiet)
	}
	return profile.Start(opts...).Stop
}
