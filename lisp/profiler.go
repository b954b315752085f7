// Copyright © 2026 The ringlisp authors

package lisp

// Profiler observes evaluation.  The runtime calls Start around every
// subroutine application and every top-level EvalUser; implementations
// live in lisp/x/profiler.
type Profiler interface {
	// Is the profiler enabled?
	IsEnabled() bool
	// Enable the profiler
	Enable() error
	// Set the file to output to
	SetFile(filename string) error
	// End the profiling session and output summary lines
	Complete() error
	// Start marks the start of applying fn and returns the matching end
	// callback.
	Start(fn Word) func()
}
