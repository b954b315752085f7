// Copyright © 2026 The ringlisp authors

package lisp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAlloc(t *testing.T) {
	h := NewHeap(8)
	w := h.Cons(Fixnum(1), Fixnum(2))
	require.True(t, h.IsCons(w))
	c := h.cell(w)
	assert.Equal(t, Fixnum(1), c.Car)
	assert.Equal(t, Fixnum(2), c.Cdr)
	assert.Equal(t, uint64(1), h.Stats().Allocs)
}

func TestHeapWrapBumpsGeneration(t *testing.T) {
	h := NewHeap(4)
	for i := 0; i < 4; i++ {
		h.Cons(Fixnum(0), Fixnum(0))
	}
	assert.Equal(t, uint8(0), h.Generation())
	h.Cons(Fixnum(0), Fixnum(0))
	assert.Equal(t, uint8(1), h.Generation())
	assert.Equal(t, uint64(1), h.Stats().Wraps)

	// The generation counter is 3 bits wide.
	for i := 0; i < 4*8; i++ {
		h.Cons(Fixnum(0), Fixnum(0))
	}
	assert.Equal(t, uint8(1), h.Generation(), "generation wraps modulo 8")
}

// A cell from the previous generation reports stale once the cursor passes
// over its address, and not before: staleness is observed lazily.
func TestHeapStaleness(t *testing.T) {
	h := NewHeap(4)
	var ws []Word
	for i := 0; i < 4; i++ {
		ws = append(ws, h.Cons(Fixnum(int64(i)), Fixnum(0)))
	}
	for _, w := range ws {
		assert.False(t, h.IsStale(w), "nothing is stale before a wrap")
	}

	// Wrap: the next allocation reuses the first cell.
	h.Cons(Fixnum(99), Fixnum(0))
	assert.True(t, h.IsStale(ws[0]), "overwritten cell is stale")
	assert.False(t, h.IsStale(ws[3]),
		"cells ahead of the cursor still read as the previous generation")

	// Two more allocations overtake ws[1] and ws[2].
	h.Cons(Fixnum(99), Fixnum(0))
	h.Cons(Fixnum(99), Fixnum(0))
	assert.True(t, h.IsStale(ws[1]))
	assert.True(t, h.IsStale(ws[2]))
	assert.False(t, h.IsStale(ws[3]))
}

func TestHeapFreeze(t *testing.T) {
	h := NewHeap(4)
	immortal := h.Cons(Fixnum(1), Fixnum(1))
	h.Freeze()

	assert.False(t, h.IsFragile(immortal))
	// Churn through many wraps; the frozen cell must never go stale or be
	// overwritten.
	for i := 0; i < 64; i++ {
		h.Cons(Fixnum(int64(i)), Fixnum(0))
	}
	assert.False(t, h.IsStale(immortal))
	c := h.cell(immortal)
	assert.Equal(t, Fixnum(1), c.Car)
	assert.Equal(t, Fixnum(1), c.Cdr)
}

func TestHeapStaleBox(t *testing.T) {
	h := NewHeap(4)
	orig := h.Cons(Fixnum(1), Fixnum(2))
	s := h.NewStale(orig)
	assert.True(t, h.IsStale(s), "a boxed stale sentinel is itself stale")
	assert.Equal(t, orig, h.Data(s).Orig)
}

func TestHeapWrapDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	h := NewHeap(2)
	h.trace = &buf
	for i := 0; i < 3; i++ {
		h.Cons(Fixnum(0), Fixnum(0))
	}
	assert.Equal(t, "... generation: 1\n", buf.String())
}

func TestHeapDataOutOfRange(t *testing.T) {
	h := NewHeap(2)
	assert.Nil(t, h.Data(Word(0)))
	assert.Nil(t, h.Data(h.Cons(Fixnum(0), Fixnum(0))))
	assert.Nil(t, h.Data(Fixnum(7)))
}
