// Copyright © 2026 The ringlisp authors

package lisp

// An environment is a cons list of frames; each frame is an association
// list of (symbol . value) pairs.  Frames are searched newest-first.

// findVar locates the binding pair for sym, scanning each frame of env in
// order.  Symbols are interned, so comparison is word identity.  A stale
// frame chain restarts the search from the user env; the user and global
// envs sit below the immortal line, so the recovery cannot loop.  Returns
// nil when the symbol is unbound.
func (rt *Runtime) findVar(sym, env Word) Word {
	h := rt.Heap
	for h.IsCons(env) {
		if h.IsStale(env) {
			env = rt.UserEnv
		}
		alist := h.cell(env).Car
		for h.IsCons(alist) {
			if h.IsStale(alist) {
				break
			}
			if rt.Car(rt.Car(alist)) == sym {
				return rt.Car(alist)
			}
			alist = rt.Cdr(alist)
		}
		env = h.cell(env).Cdr
	}
	return rt.nilw
}

// extend prepends a (sym . val) pair to env's newest frame, mutating the
// frame cell's car.  Returns nil, or a stale sentinel if env wrapped.
func (rt *Runtime) extend(sym, val, env Word) Word {
	h := rt.Heap
	if h.IsStale(env) {
		return h.NewStale(env)
	}
	head := h.Cons(h.Cons(sym, val), h.cell(env).Car)
	if h.IsStale(env) {
		return h.NewStale(env)
	}
	h.cell(env).Car = head
	return rt.nilw
}

// pairlis walks params and args in lockstep producing an alist of
// (param . arg) pairs.  The longer list is silently truncated.  Stale on
// either side short-circuits.
func (rt *Runtime) pairlis(params, args Word) Word {
	h := rt.Heap
	if h.IsStale(params) {
		return h.NewStale(params)
	}
	if h.IsStale(args) {
		return h.NewStale(args)
	}
	ret := rt.nilw
	for h.IsCons(params) && h.IsCons(args) {
		x := rt.Car(params)
		y := rt.Car(args)
		params = rt.Cdr(params)
		args = rt.Cdr(args)
		ret = h.Cons(h.Cons(x, y), ret)
		if h.IsStale(params) {
			return h.NewStale(params)
		}
		if h.IsStale(args) {
			return h.NewStale(args)
		}
	}
	return rt.Nreverse(ret)
}
