// Copyright © 2026 The ringlisp authors

package profiler

import (
	"context"
	"errors"

	"github.com/luthersystems/ringlisp/lisp"
	"go.opencensus.io/trace"
)

var _ lisp.Profiler = &ocAnnotator{}

type ocAnnotator struct {
	profiler
	currentContext context.Context
	currentSpan    *trace.Span
	contexts       []context.Context
}

func NewOpenCensusAnnotator(rt *lisp.Runtime, parentContext context.Context, opts ...Option) *ocAnnotator {
	p := &ocAnnotator{
		profiler: profiler{
			runtime: rt,
		},
		currentContext: parentContext,
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *ocAnnotator) Enable() error {
	p.runtime.Profiler = p
	if p.currentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opencensus")
	}
	return p.profiler.Enable()
}

func (p *ocAnnotator) Complete() error {
	if p.currentSpan != nil {
		p.currentSpan.End()
	}
	return nil
}

func (p *ocAnnotator) Start(fn lisp.Word) func() {
	if p.skipTrace(fn) {
		return func() {}
	}
	p.contexts = append(p.contexts, p.currentContext)
	p.currentContext, p.currentSpan = trace.StartSpan(p.currentContext, p.funName(fn))
	return func() {
		p.end(fn)
	}
}

func (p *ocAnnotator) end(fn lisp.Word) {
	if !p.enabled {
		return
	}
	p.currentSpan.Annotate([]trace.Attribute{
		trace.StringAttribute("function", p.funName(fn)),
	}, "apply")
	p.currentSpan.End()
	// And pop the current context back
	n := len(p.contexts)
	if n == 0 {
		return
	}
	p.currentContext = p.contexts[n-1]
	p.contexts = p.contexts[:n-1]
	p.currentSpan = trace.FromContext(p.currentContext)
}
