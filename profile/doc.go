// Package profile provides optional runtime profiling for scicalc.
//
// Profiling is built on [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Profiler.Start] does nothing.
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/scicalc"}
//	defer p.Start().Stop()
//
// The command line exposes the same settings as --pprof-mode and
// --pprof-dir. The default output directory is the "pprof" subdirectory of
// the user cache directory, e.g. $XDG_CACHE_HOME/scicalc/pprof.
//
// Profiles are written as <mode>.pprof and can be inspected with
//
//	go tool pprof -http=: cpu.pprof
//
// Building with the tag also registers the [net/http/pprof] handlers.
package profile
