// Copyright © 2026 The ringlisp authors

// Package ringtest runs scripted REPL interactions against isolated
// runtimes for use in tests.
package ringtest

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"

	"github.com/luthersystems/ringlisp/lisp"
	"github.com/luthersystems/ringlisp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a single runtime.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the printed representation of the evaluated result
	Output string // debug output written to Runtime.Stderr
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// Config tweaks the runtimes a suite runs on.
type Config struct {
	// HeapCells sizes the ring; 0 selects the default.
	HeapCells int
	// WrapDiagnostics enables "... generation: N" lines in Output.
	WrapDiagnostics bool
}

// NewTestRuntime returns a runtime configured for tests, writing debug
// output to a test logger.
func NewTestRuntime(t testing.TB, cfg Config) *lisp.Runtime {
	return lisp.NewRuntime(
		lisp.WithReader(parser.NewReader()),
		lisp.WithHeapCells(cfg.HeapCells),
		lisp.WithStderr(NewLogger(t)),
		lisp.WithWrapDiagnostics(cfg.WrapDiagnostics),
	)
}

// RunTestSuite runs each TestSequence in tests on isolated runtimes.
func RunTestSuite(t *testing.T, tests TestSuite) {
	RunTestSuiteConfig(t, tests, Config{})
}

// RunTestSuiteConfig runs each TestSequence in tests on isolated runtimes
// built from cfg.
func RunTestSuiteConfig(t *testing.T, tests TestSuite, cfg Config) {
	for i, test := range tests {
		log.Printf("test %d -- %s", i, test.Name)
		var exprBuf bytes.Buffer
		rt := lisp.NewRuntime(
			lisp.WithReader(parser.NewReader()),
			lisp.WithHeapCells(cfg.HeapCells),
			lisp.WithStderr(io.MultiWriter(os.Stderr, &exprBuf)),
			lisp.WithWrapDiagnostics(cfg.WrapDiagnostics),
		)
		for j, expr := range test.TestSequence {
			exprBuf.Reset()
			v, err := rt.ReadString("test", expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: read error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			result := rt.Sprint(rt.EvalUser(v[0]))
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if exprBuf.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected debug output %q (got %q)", i, test.Name, j, expr.Output, exprBuf.String())
			}
		}
	}
}

// RunBenchmark runs a standard benchmark that evaluates expressions
// parsed from source on a fresh runtime per iteration.
func RunBenchmark(b *testing.B, source string) {
	b.StopTimer()
	for i := 0; i < b.N; i++ {
		rt := lisp.NewRuntime(
			lisp.WithReader(parser.NewReader()),
			lisp.WithStderr(io.Discard),
		)
		exprs, err := rt.ReadString("benchmark", source)
		if err != nil {
			b.Fatalf("read error: %v", err)
		}
		b.StartTimer()
		for j, expr := range exprs {
			val := rt.EvalUser(expr)
			if rt.Heap.IsKind(val, lisp.KindError) {
				b.Fatalf("expr %d: %v", j, rt.Sprint(val))
			}
		}
		b.StopTimer()
	}
}
