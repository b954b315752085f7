// Copyright © 2026 The ringlisp authors

package profiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luthersystems/ringlisp/lisp"
	"github.com/luthersystems/ringlisp/lisp/x/profiler"
	"github.com/luthersystems/ringlisp/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallgrindProfiler(t *testing.T) {
	out := filepath.Join(t.TempDir(), "callgrind.out")

	rt := lisp.NewRuntime(lisp.WithReader(parser.NewReader()))
	p := profiler.NewCallgrindProfiler(rt)
	require.Error(t, p.Enable(), "enabling without an output file fails")
	require.NoError(t, p.SetFile(out))
	require.NoError(t, p.Enable())

	val, err := rt.EvalString("test.lisp",
		"(defun f (x) (* x x)) (f 6)")
	require.NoError(t, err)
	require.Equal(t, "36", rt.Sprint(val))
	require.NoError(t, p.Complete())

	buf, err := os.ReadFile(out) //#nosec G304
	require.NoError(t, err)
	content := string(buf)
	assert.Contains(t, content, "creator: ringlisp")
	assert.Contains(t, content, "events: Time_(ns) Memory_(bytes)")
	assert.Contains(t, content, "ENTRYPOINT")
	assert.Contains(t, content, "*")
	assert.Contains(t, content, "summary ")
}

func TestCallgrindProfilerDoubleEnable(t *testing.T) {
	out := filepath.Join(t.TempDir(), "callgrind.out")
	rt := lisp.NewRuntime(lisp.WithReader(parser.NewReader()))
	p := profiler.NewCallgrindProfiler(rt)
	require.NoError(t, p.SetFile(out))
	require.NoError(t, p.Enable())
	assert.Error(t, p.Enable())
}
