// Package lunarmagic wraps the command line functions of the Lunar Magic
// ROM editor. It supports all command line functions as of Lunar Magic 3.40.
//
// Lunar Magic is a closed source Windows application, on other systems it
// needs to be run through a compatibility layer like Wine. The wrapper does
// not interpret any ROM data itself, it builds the command line for an
// operation, runs the executable and returns its captured text output.
package lunarmagic

// Wrapper invokes operations of a Lunar Magic executable.
//
// It is safe to use a single Wrapper from multiple goroutines, every
// invocation captures its output in its own temporary directory. The wrapper
// does not serialize operations that target the same ROM file, callers need
// to avoid running conflicting operations concurrently.
type Wrapper struct {
	toolPath string
}

// New returns a new Wrapper for the Lunar Magic executable at the given
// path. The executable does not have to exist yet at creation time, it is
// looked up when an operation is performed.
func New(toolPath string) *Wrapper {
	return &Wrapper{
		toolPath: toolPath,
	}
}
