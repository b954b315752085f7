// Copyright © 2026 The ringlisp authors

package lisp

import (
	"errors"
	"io"
	"strings"
)

// Version of the ringlisp interpreter.
const Version = "0.3"

// Reader parses a source stream into tagged values, allocating through b.
// Syntax problems are reported as first-class error values in the returned
// slice; the error return is reserved for stream failures.
type Reader interface {
	Read(name string, r io.Reader, b Builder) ([]Word, error)
}

// Builder constructs tagged values on behalf of a Reader.  *Runtime is the
// canonical implementation.
type Builder interface {
	// Cons allocates a ring cell.
	Cons(car, cdr Word) Word
	// Int returns a fixnum word.
	Int(n int64) Word
	// Symbol interns name and returns its word.
	Symbol(name string) Word
	// Nil returns the nil singleton.
	Nil() Word
	// ReadError returns a fresh error value for a syntax problem.
	ReadError(msg string) Word
	// Nreverse destructively reverses a freshly built list.  The list must
	// not be reachable from anywhere else.
	Nreverse(lst Word) Word
}

// Runtime owns the shared state of one interpreter: the ring heap, the
// intern map, and the two distinguished environments.  A Runtime is not
// safe for concurrent use; one logical thread of execution owns it.
type Runtime struct {
	Heap    *Heap
	Symbols *Interner

	// Reader parses source streams.  There is no default reader; one is
	// injected with WithReader so the core carries no parser dependency.
	Reader Reader

	// Stderr receives wrap diagnostics and other debugging output.
	Stderr io.Writer

	// Profiler, when non-nil and enabled, observes subroutine application
	// and top-level evaluation.
	Profiler Profiler

	// GlobalEnv holds t and the built-in subroutines.  Its frame sits
	// below the heap's immortal line and is frozen after initialization.
	GlobalEnv Word
	// UserEnv is a fresh frame whose tail is GlobalEnv; defun and
	// top-level setq bindings land here.
	UserEnv Word

	nilw      Word
	symT      Word
	symQuote  Word
	symIf     Word
	symLambda Word
	symDefun  Word
	symSetq   Word
	symExpr   Word
}

// NewRuntime initializes a runtime: heap, interner, primordial symbols,
// the frozen global environment, and the user environment.
func NewRuntime(opts ...Config) *Runtime {
	cfg := newConfig(opts...)
	h := NewHeap(cfg.cells)
	if cfg.wrapDiag {
		h.trace = cfg.stderr
	}
	rt := &Runtime{
		Heap:    h,
		Symbols: NewInterner(h),
		Reader:  cfg.reader,
		Stderr:  cfg.stderr,
	}
	rt.initPrimordial()
	return rt
}

func (rt *Runtime) initPrimordial() {
	h := rt.Heap
	in := rt.Symbols

	rt.nilw = in.Intern("nil")
	h.Data(rt.nilw).Kind = KindNil
	rt.symT = in.Intern("t")
	rt.symQuote = in.Intern("quote")
	rt.symIf = in.Intern("if")
	rt.symLambda = in.Intern("lambda")
	rt.symDefun = in.Intern("defun")
	rt.symSetq = in.Intern("setq")

	// The closure marker is interned for a stable word and immediately
	// removed from the map so user code cannot forge closures by spelling
	// its name.
	rt.symExpr = in.Intern("expr")
	in.Unintern("expr")

	rt.GlobalEnv = h.Cons(rt.nilw, rt.nilw)
	rt.extend(rt.symT, rt.symT, rt.GlobalEnv)
	for _, def := range langBuiltins {
		rt.extend(in.Intern(def.name), h.NewSubr(def.name, def.fn), rt.GlobalEnv)
	}
	rt.UserEnv = h.Cons(rt.nilw, rt.GlobalEnv)

	// Everything allocated so far is immortal.
	h.Freeze()
}

// Nil returns the nil singleton.
func (rt *Runtime) Nil() Word {
	return rt.nilw
}

// T returns the true symbol.
func (rt *Runtime) T() Word {
	return rt.symT
}

// Int returns a fixnum word.
func (rt *Runtime) Int(n int64) Word {
	return Fixnum(n)
}

// Cons allocates a ring cell.
func (rt *Runtime) Cons(car, cdr Word) Word {
	return rt.Heap.Cons(car, cdr)
}

// Symbol interns name and returns its word.
func (rt *Runtime) Symbol(name string) Word {
	return rt.Symbols.Intern(name)
}

// ReadError returns a fresh error value for a syntax problem.
func (rt *Runtime) ReadError(msg string) Word {
	return rt.Heap.NewError(msg)
}

var _ Builder = (*Runtime)(nil)

// Car returns the head of a cons, nil for any non-cons, and a stale
// sentinel when obj no longer belongs to the current generation.
func (rt *Runtime) Car(obj Word) Word {
	h := rt.Heap
	if h.IsStale(obj) {
		return h.NewStale(obj)
	}
	if h.IsCons(obj) {
		return h.cell(obj).Car
	}
	return rt.nilw
}

// Cdr returns the tail of a cons, nil for any non-cons, and a stale
// sentinel when obj no longer belongs to the current generation.
func (rt *Runtime) Cdr(obj Word) Word {
	h := rt.Heap
	if h.IsStale(obj) {
		return h.NewStale(obj)
	}
	if h.IsCons(obj) {
		return h.cell(obj).Cdr
	}
	return rt.nilw
}

// Nreverse destructively reverses lst in place.  Only safe on lists not
// yet reachable from anywhere else, which is how the reader builds them.
func (rt *Runtime) Nreverse(lst Word) Word {
	h := rt.Heap
	if h.IsStale(lst) {
		return h.NewStale(lst)
	}
	ret := rt.nilw
	for h.IsCons(lst) {
		c := h.cell(lst)
		tmp := c.Cdr
		c.Cdr = ret
		ret = lst
		lst = tmp
		if h.IsStale(lst) {
			return h.NewStale(lst)
		}
	}
	return ret
}

// IsClosure reports whether w is a compiled closure, a cons headed by the
// hidden marker symbol.
func (rt *Runtime) IsClosure(w Word) bool {
	return rt.Heap.IsCons(w) && rt.Car(w) == rt.symExpr
}

// FunName returns a display name for a callable word: the registered name
// of a subroutine, "<expr>" for closures, the head symbol of a form, or
// the spelling of a symbol.  Returns "" when no name applies.
func (rt *Runtime) FunName(fn Word) string {
	h := rt.Heap
	switch {
	case h.IsKind(fn, KindSubr), h.IsKind(fn, KindSymbol):
		return h.Data(fn).Name
	case rt.IsClosure(fn):
		return "<expr>"
	case h.IsCons(fn):
		if head := rt.Car(fn); h.IsKind(head, KindSymbol) {
			return h.Data(head).Name
		}
	}
	return ""
}

// ReadString parses src with the configured reader.
func (rt *Runtime) ReadString(name, src string) ([]Word, error) {
	if rt.Reader == nil {
		return nil, errors.New("no reader configured")
	}
	return rt.Reader.Read(name, strings.NewReader(src), rt)
}

// EvalString reads and evaluates every expression in src under the user
// environment and returns the value of the last one.  An empty source
// yields an "empty input" error value, matching what the reader reports
// for a vacant expression position.
func (rt *Runtime) EvalString(name, src string) (Word, error) {
	exprs, err := rt.ReadString(name, src)
	if err != nil {
		return 0, err
	}
	if len(exprs) == 0 {
		return rt.Heap.NewError("empty input"), nil
	}
	ret := rt.nilw
	for _, expr := range exprs {
		ret = rt.EvalUser(expr)
	}
	return ret, nil
}
