// Copyright © 2026 The ringlisp authors

package lisp

import (
	"io"
	"os"
)

// Config is a functional option for NewRuntime.
type Config func(*config)

type config struct {
	cells    int
	stderr   io.Writer
	reader   Reader
	wrapDiag bool
}

func newConfig(opts ...Config) *config {
	cfg := &config{
		cells:  DefaultHeapCells,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithHeapCells returns a Config that sizes the ring region to n cons
// cells.  Non-positive values select the default.
func WithHeapCells(n int) Config {
	return func(cfg *config) {
		cfg.cells = n
	}
}

// WithStderr returns a Config that makes the runtime write debugging
// output to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(cfg *config) {
		cfg.stderr = w
	}
}

// WithReader returns a Config that makes the runtime use r to parse
// source streams.  There is no default Reader for a runtime.
func WithReader(r Reader) Config {
	return func(cfg *config) {
		cfg.reader = r
	}
}

// WithWrapDiagnostics returns a Config that makes the heap print a
// "... generation: N" line to the runtime's stderr on every wrap.
func WithWrapDiagnostics(on bool) Config {
	return func(cfg *config) {
		cfg.wrapDiag = on
	}
}
