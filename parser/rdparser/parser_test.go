// Copyright © 2026 The ringlisp authors

package rdparser_test

import (
	"testing"

	"github.com/luthersystems/ringlisp/lisp"
	"github.com/luthersystems/ringlisp/parser/rdparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRuntime() *lisp.Runtime {
	return lisp.NewRuntime(lisp.WithReader(rdparser.NewReader()))
}

func TestParser(t *testing.T) {
	tests := []struct {
		source string
		output string
	}{
		{`0`, `0`},
		{`12`, `12`},
		{`-1`, `-1`},
		{`abc`, `abc`},
		{`1+`, `1+`},
		{`-`, `-`},
		{`nil`, `nil`},
		{`()`, `nil`},
		{`(1 2 3)`, `(1 2 3)`},
		{`(a (b (c)))`, `(a (b (c)))`},
		{`'xyz`, `(quote xyz)`},
		{`'(x y z)`, `(quote (x y z))`},
		{`''a`, `(quote (quote a))`},
		{`(car '(a b))`, `(car (quote (a b)))`},
		{"(a\n  b)", `(a b)`},
	}
	for i, test := range tests {
		rt := newRuntime()
		exprs, err := rt.ReadString("test", test.source)
		require.NoError(t, err, "test %d: %q", i, test.source)
		require.Len(t, exprs, 1, "test %d: %q", i, test.source)
		assert.Equal(t, test.output, rt.Sprint(exprs[0]), "test %d: %q", i, test.source)
	}
}

func TestParserMultipleExpressions(t *testing.T) {
	rt := newRuntime()
	exprs, err := rt.ReadString("test", "(+ 1 2) foo 'bar")
	require.NoError(t, err)
	require.Len(t, exprs, 3)
	assert.Equal(t, "(+ 1 2)", rt.Sprint(exprs[0]))
	assert.Equal(t, "foo", rt.Sprint(exprs[1]))
	assert.Equal(t, "(quote bar)", rt.Sprint(exprs[2]))
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		source string
		errmsg string
	}{
		{`)`, `<error: invalid syntax>`},
		{`(1 2`, `<error: unfinished parenthesis>`},
		{`(a (b c)`, `<error: unfinished parenthesis>`},
		// The first expression parses; the trailing paren errors.
		{`(a ))`, `<error: invalid syntax>`},
	}
	rt := newRuntime()
	for i, test := range tests {
		exprs, err := rt.ReadString("test", test.source)
		require.NoError(t, err, "test %d: %q", i, test.source)
		require.NotEmpty(t, exprs, "test %d: %q", i, test.source)
		last := rt.Sprint(exprs[len(exprs)-1])
		assert.Equal(t, test.errmsg, last, "test %d: %q", i, test.source)
	}
}

func TestParserEmptySource(t *testing.T) {
	rt := newRuntime()
	exprs, err := rt.ReadString("test", "   \n  ")
	require.NoError(t, err)
	assert.Empty(t, exprs)
}

func BenchmarkParse(b *testing.B) {
	rt := newRuntime()
	for i := 0; i < b.N; i++ {
		_, err := rt.ReadString("bench", "(defun f (x) (if (eq x 0) 'done (f (- x 1))))")
		if err != nil {
			b.Fatal(err)
		}
	}
}
