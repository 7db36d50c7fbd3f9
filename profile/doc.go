// Package profile gates runtime profiling behind the build tag named by
// [Tag]. Without the tag, starting a profile is a no-op and the binary
// carries no profiling dependencies.
package profile

// Tag is the build tag that compiles in profiling support.
const Tag = "pprof"
