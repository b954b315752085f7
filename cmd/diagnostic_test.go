// Copyright © 2026 The ringlisp authors

package cmd

import (
	"testing"

	"github.com/luthersystems/ringlisp/diagnostic"
	"github.com/luthersystems/ringlisp/lisp"
	"github.com/luthersystems/ringlisp/parser"
	"github.com/stretchr/testify/assert"
)

func TestColorMode(t *testing.T) {
	orig := colorFlag
	defer func() { colorFlag = orig }()

	colorFlag = "always"
	assert.Equal(t, diagnostic.ColorAlways, colorMode())
	colorFlag = "never"
	assert.Equal(t, diagnostic.ColorNever, colorMode())
	colorFlag = "auto"
	assert.Equal(t, diagnostic.ColorAuto, colorMode())
	colorFlag = "bogus"
	assert.Equal(t, diagnostic.ColorAuto, colorMode())
}

func TestLispErrorToDiagnostic(t *testing.T) {
	rt := lisp.NewRuntime(lisp.WithReader(parser.NewReader()))

	d := lispErrorToDiagnostic(rt, rt.Heap.NewError("boom"))
	assert.Equal(t, diagnostic.SeverityError, d.Severity)
	assert.Equal(t, "<error: boom>", d.Message)
	assert.Empty(t, d.Notes)

	stale := rt.Heap.NewStale(lisp.Fixnum(7))
	d = lispErrorToDiagnostic(rt, stale)
	assert.Equal(t, diagnostic.SeverityWarning, d.Severity)
	assert.NotEmpty(t, d.Notes)
}
