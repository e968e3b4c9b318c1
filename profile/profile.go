package profile

// Tag is the build tag that enables profiling. It also names the default
// output subdirectory.
const Tag = "pprof"

// Profiler configures a profiling session.
type Profiler struct {
	// Mode is one of [Modes]. An empty or unknown mode disables profiling.
	Mode string
	// Path is the output directory. Empty selects the current directory.
	Path string
	// Quiet suppresses the messages printed when profiling starts and stops.
	Quiet bool
}

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Start begins profiling and returns a [Stopper] for ending it.
// It returns a no-op Stopper if p.Mode is unset or the binary was built
// without the pprof tag; Start and Stop are always safe to call.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

// WithMode returns a copy of p using mode.
func (p Profiler) WithMode(mode string) Profiler {
	p.Mode = mode

	return p
}

// WithPath returns a copy of p writing to path.
func (p Profiler) WithPath(path string) Profiler {
	p.Path = path

	return p
}

// WithQuiet returns a copy of p with the quiet flag set to quiet.
func (p Profiler) WithQuiet(quiet bool) Profiler {
	p.Quiet = quiet

	return p
}

type ignore struct{}

func (ignore) Stop() {}
