// Copyright © 2026 The ringlisp authors

package profiler

import (
	"github.com/luthersystems/ringlisp/lisp"
)

// SkipFilter reports whether the application of fn should be left out of
// the trace.
type SkipFilter func(rt *lisp.Runtime, fn lisp.Word) bool

// defaultSkipFilter drops self-evaluating words; only callables and the
// forms applied at top level are worth a span.
func defaultSkipFilter(rt *lisp.Runtime, fn lisp.Word) bool {
	h := rt.Heap
	switch {
	case h.IsKind(fn, lisp.KindSubr),
		rt.IsClosure(fn),
		h.IsCons(fn),
		h.IsKind(fn, lisp.KindSymbol):
		return false
	default:
		return true
	}
}

// WithSkipFilter sets the filter for tracing spans.
func WithSkipFilter(skipFilter SkipFilter) Option {
	return func(p *profiler) {
		p.skipFilter = skipFilter
	}
}
