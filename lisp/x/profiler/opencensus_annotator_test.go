// Copyright © 2026 The ringlisp authors

package profiler_test

import (
	"context"
	"sync"
	"testing"

	"github.com/luthersystems/ringlisp/lisp"
	"github.com/luthersystems/ringlisp/lisp/x/profiler"
	"github.com/luthersystems/ringlisp/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/trace"
)

type spanCollector struct {
	sync.Mutex
	spans []*trace.SpanData
}

func (c *spanCollector) ExportSpan(sd *trace.SpanData) {
	c.Lock()
	defer c.Unlock()
	c.spans = append(c.spans, sd)
}

func TestNewOpenCensusAnnotator(t *testing.T) {
	collector := &spanCollector{}
	trace.RegisterExporter(collector)
	t.Cleanup(func() { trace.UnregisterExporter(collector) })
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.AlwaysSample()})

	rt := lisp.NewRuntime(lisp.WithReader(parser.NewReader()))
	ppa := profiler.NewOpenCensusAnnotator(rt, context.Background())
	require.NoError(t, ppa.Enable())

	val, err := rt.EvalString("test.lisp", "(+ 1 2 (* 2 2))")
	require.NoError(t, err)
	require.Equal(t, "7", rt.Sprint(val))
	require.NoError(t, ppa.Complete())

	collector.Lock()
	defer collector.Unlock()
	assert.GreaterOrEqual(t, len(collector.spans), 3, "expected at least three spans")
	var names []string
	for _, span := range collector.spans {
		names = append(names, span.Name)
	}
	assert.Contains(t, names, "+")
	assert.Contains(t, names, "*")
}
