// Copyright © 2026 The ringlisp authors

package lisp_test

import (
	"fmt"
	"testing"

	"github.com/luthersystems/ringlisp/lisp"
	"github.com/luthersystems/ringlisp/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprint(t *testing.T) {
	rt := lisp.NewRuntime(lisp.WithReader(parser.NewReader()))
	h := rt.Heap
	sym := rt.Symbol("abc")
	tests := []struct {
		w    lisp.Word
		want string
	}{
		{lisp.Fixnum(0), "0"},
		{lisp.Fixnum(-42), "-42"},
		{rt.Nil(), "nil"},
		{rt.T(), "t"},
		{sym, "abc"},
		{h.NewError("boom"), "<error: boom>"},
		{h.NewSubr("f", func(rt *lisp.Runtime, args lisp.Word) lisp.Word { return args }), "<subr>"},
		{h.Cons(lisp.Fixnum(1), lisp.Fixnum(2)), "(1 . 2)"},
		{h.Cons(lisp.Fixnum(1), h.Cons(lisp.Fixnum(2), rt.Nil())), "(1 2)"},
		{h.Cons(sym, h.Cons(sym, lisp.Fixnum(3))), "(abc abc . 3)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, rt.Sprint(test.w))
	}
}

func TestSprintStaleHex(t *testing.T) {
	rt := lisp.NewRuntime()
	orig := rt.Heap.Cons(lisp.Fixnum(1), lisp.Fixnum(2))
	s := rt.Heap.NewStale(orig)
	assert.Equal(t, fmt.Sprintf("<stale value: %x>", uint64(orig)), rt.Sprint(s))
}

// Closures print as an opaque token; the marker and captured environment
// must not leak.
func TestSprintClosureOpaque(t *testing.T) {
	rt := lisp.NewRuntime(lisp.WithReader(parser.NewReader()))
	val, err := rt.EvalString("test", "(lambda (x) x)")
	require.NoError(t, err)
	assert.Equal(t, "<expr>", rt.Sprint(val))
}

// Values built from fixnums, symbols, nil, and conses print to text that
// reads back as a structurally identical value.
func TestReadPrintRoundTrip(t *testing.T) {
	rt := lisp.NewRuntime(lisp.WithReader(parser.NewReader()))
	sources := []string{
		"a",
		"-7",
		"nil",
		"(a b c)",
		"(1 (2 (3 nil)) x)",
		"(quote a)",
		"((a) (b) (c 1 2 3))",
	}
	for _, src := range sources {
		exprs, err := rt.ReadString("test", src)
		require.NoError(t, err)
		require.Len(t, exprs, 1, "source %q", src)
		printed := rt.Sprint(exprs[0])
		again, err := rt.ReadString("test", printed)
		require.NoError(t, err)
		require.Len(t, again, 1, "printed %q", printed)
		assert.Equal(t, printed, rt.Sprint(again[0]), "round trip of %q", src)
	}
}
