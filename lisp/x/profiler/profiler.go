// Copyright © 2026 The ringlisp authors

// Package profiler provides lisp.Profiler implementations that observe
// subroutine application and top-level evaluation: a callgrind file
// writer, an OpenTelemetry span annotator, and an OpenCensus span
// annotator.
package profiler

import (
	"errors"

	"github.com/luthersystems/ringlisp/lisp"
)

// profiler is a minimal lisp.Profiler
type profiler struct {
	runtime    *lisp.Runtime
	enabled    bool
	skipFilter SkipFilter
}

func (p *profiler) IsEnabled() bool {
	return p.enabled
}

type Option func(*profiler)

func (p *profiler) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *profiler) Enable() error {
	if p.enabled {
		return errors.New("profiler already enabled")
	}
	p.enabled = true
	return nil
}

func (p *profiler) SetFile(filename string) error {
	return errors.New("no need to set a file for this profiler type")
}

// funName returns a span label for fn.  Anonymous forms profile under
// "eval".
func (p *profiler) funName(fn lisp.Word) string {
	name := p.runtime.FunName(fn)
	if name == "" {
		return "eval"
	}
	return name
}

// skipTrace is a helper function to decide whether to skip tracing.
func (p *profiler) skipTrace(fn lisp.Word) bool {
	return !p.enabled || defaultSkipFilter(p.runtime, fn) ||
		p.skipFilter != nil && p.skipFilter(p.runtime, fn)
}
