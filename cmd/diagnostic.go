// Copyright © 2026 The ringlisp authors

package cmd

import (
	"fmt"
	"os"

	"github.com/luthersystems/ringlisp/diagnostic"
	"github.com/luthersystems/ringlisp/lisp"
)

func colorMode() diagnostic.ColorMode {
	switch colorFlag {
	case "always":
		return diagnostic.ColorAlways
	case "never":
		return diagnostic.ColorNever
	default:
		return diagnostic.ColorAuto
	}
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}

// lispErrorToDiagnostic converts an error or stale value to a Diagnostic
// for display.
func lispErrorToDiagnostic(rt *lisp.Runtime, val lisp.Word) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Message:  rt.Sprint(val),
	}
	if rt.Heap.IsKind(val, lisp.KindStale) {
		stats := rt.Heap.Stats()
		d.Severity = diagnostic.SeverityWarning
		d.Notes = append(d.Notes,
			"a stale value refers to a cons cell that was reclaimed when the ring heap wrapped; rerun with a larger --cells to give the computation more room")
		d.Notes = append(d.Notes, fmt.Sprintf(
			"the heap wrapped %d times and is in generation %d",
			stats.Wraps, stats.Generation))
	}
	return d
}

// renderLispError renders an error or stale value with diagnostic
// formatting to stderr.
func renderLispError(rt *lisp.Runtime, val lisp.Word) {
	d := lispErrorToDiagnostic(rt, val)
	r := newRenderer()
	_ = r.Render(os.Stderr, d)
}
