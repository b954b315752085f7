// Copyright © 2026 The ringlisp authors

package lisp

// The evaluator is three mutually tail-called phases sharing register
// variables in a single state-machine loop.  if branches, the last form of
// a progn body, and closure application transfer control by reassigning
// the registers and continuing the loop, so deep tail chains never grow
// the Go stack.  Argument evaluation (evlis) and structural copies recurse
// on the Go stack; they are bounded by input size.

type evalPhase int

const (
	phaseEval evalPhase = iota
	phaseApply
	phaseProgn
)

// EvalUser evaluates obj in the user environment.
func (rt *Runtime) EvalUser(obj Word) Word {
	if p := rt.Profiler; p != nil && p.IsEnabled() {
		end := p.Start(obj)
		defer end()
	}
	return rt.Eval(obj, rt.UserEnv)
}

// Eval evaluates obj in env.  Errors and stale sentinels are returned as
// values; Eval never panics on reused cells.
func (rt *Runtime) Eval(obj, env Word) Word {
	h := rt.Heap
	var fn, args, body Word
	ph := phaseEval
loop:
	for {
		switch ph {
		case phaseEval:
			switch {
			case obj.IsFixnum(),
				h.IsKind(obj, KindNil),
				h.IsKind(obj, KindError),
				h.IsKind(obj, KindStale),
				h.IsKind(obj, KindSubr):
				return obj
			case h.IsKind(obj, KindSymbol):
				bind := rt.findVar(obj, env)
				if bind == rt.nilw {
					return h.NewError(h.Data(obj).Name + " has no value")
				}
				return h.cell(bind).Cdr
			case !h.IsCons(obj):
				return h.NewError("unknown object")
			}
			if h.IsStale(obj) {
				return h.NewStale(obj)
			}
			op := rt.Car(obj)
			if h.IsStale(op) {
				return h.NewStale(op)
			}
			args = rt.Cdr(obj)
			if h.IsStale(args) {
				return h.NewStale(args)
			}
			switch op {
			case rt.symQuote:
				return rt.Car(args)
			case rt.symIf:
				cond := rt.Eval(rt.Car(args), env)
				if h.IsKind(cond, KindError) {
					return cond
				}
				if h.IsStale(cond) {
					return h.NewStale(cond)
				}
				if cond == rt.nilw {
					obj = rt.Car(rt.Cdr(rt.Cdr(args)))
				} else {
					obj = rt.Car(rt.Cdr(args))
				}
				continue loop
			case rt.symLambda:
				return rt.closure(args, env)
			case rt.symDefun:
				expr := rt.closure(rt.Cdr(args), env)
				if h.IsStale(expr) {
					return h.NewStale(expr)
				}
				sym := rt.Car(args)
				if !h.IsKind(sym, KindSymbol) {
					return h.NewError("1st argument of defun must be a symbol")
				}
				rt.extend(sym, expr, rt.UserEnv)
				return sym
			case rt.symSetq:
				val := rt.Eval(rt.Car(rt.Cdr(args)), env)
				if h.IsKind(val, KindError) {
					return val
				}
				if h.IsStale(val) {
					return h.NewStale(val)
				}
				sym := rt.Car(args)
				if !h.IsKind(sym, KindSymbol) {
					return h.NewError("1st argument of setq must be a symbol")
				}
				bind := rt.findVar(sym, env)
				switch {
				case bind == rt.nilw:
					rt.extend(sym, val, rt.UserEnv)
				case bind.addr() < h.savedEnd:
					// Primordial bindings are frozen.
					return h.NewError(rt.Sprint(sym) + " is immutable")
				default:
					h.cell(bind).Cdr = val
				}
				return val
			}
			// General call: evaluate the operator and the argument list,
			// then fall through to apply.
			fn = rt.Eval(op, env)
			args = rt.evlis(args, env)
			ph = phaseApply

		case phaseApply:
			if h.IsStale(fn) {
				return h.NewStale(fn)
			}
			if h.IsStale(args) {
				return h.NewStale(args)
			}
			if h.IsKind(fn, KindError) {
				return fn
			}
			if h.IsKind(args, KindError) {
				return args
			}
			if h.IsKind(fn, KindSubr) {
				return rt.applySubr(fn, args)
			}
			if h.IsCons(fn) {
				switch rt.Car(fn) {
				case rt.symExpr:
					// fn = (marker captured-env params . body)
					o := rt.Cdr(fn)
					if h.IsStale(o) {
						return h.NewStale(o)
					}
					e := rt.Car(o)
					if h.IsStale(e) {
						return h.NewStale(e)
					}
					o = rt.Cdr(o)
					if h.IsStale(o) {
						return h.NewStale(o)
					}
					params := rt.Car(o)
					if h.IsStale(params) {
						return h.NewStale(params)
					}
					body = rt.Cdr(o)
					env = h.Cons(rt.pairlis(params, args), e)
					ph = phaseProgn
					continue loop
				case rt.symLambda:
					// A literal lambda form applied directly closes over
					// the user env.
					o := rt.Cdr(fn)
					if h.IsStale(o) {
						return h.NewStale(o)
					}
					params := rt.Car(o)
					if h.IsStale(params) {
						return h.NewStale(params)
					}
					body = rt.Cdr(o)
					env = h.Cons(rt.pairlis(params, args), rt.UserEnv)
					ph = phaseProgn
					continue loop
				}
			}
			return h.NewError("noimpl")

		case phaseProgn:
			if h.IsStale(body) {
				return h.NewStale(body)
			}
			ret := rt.nilw
			for h.IsCons(body) {
				c := h.cell(body)
				form := c.Car
				body = c.Cdr
				if body == rt.nilw {
					// Last form: evaluate in tail position.
					obj = form
					ph = phaseEval
					continue loop
				}
				ret = rt.Eval(form, env)
				if h.IsKind(ret, KindError) {
					return ret
				}
				if h.IsStale(body) {
					return h.NewStale(body)
				}
			}
			return ret
		}
	}
}

// closure wraps (params . body) with the hidden marker and the captured
// environment: (marker env params . body).
func (rt *Runtime) closure(obj, env Word) Word {
	h := rt.Heap
	return h.Cons(rt.symExpr, h.Cons(env, obj))
}

// evlis evaluates each element of lst left to right into a fresh list.
// The first error encountered is returned in place of the list.
func (rt *Runtime) evlis(lst, env Word) Word {
	h := rt.Heap
	if h.IsStale(lst) {
		return h.NewStale(lst)
	}
	ret := rt.nilw
	for h.IsCons(lst) {
		a := rt.Car(lst)
		lst = rt.Cdr(lst)
		elm := rt.Eval(a, env)
		if h.IsKind(elm, KindError) {
			return elm
		}
		ret = h.Cons(elm, ret)
		if h.IsStale(lst) {
			return h.NewStale(lst)
		}
	}
	return rt.Nreverse(ret)
}

func (rt *Runtime) applySubr(fn, args Word) Word {
	d := rt.Heap.Data(fn)
	if p := rt.Profiler; p != nil && p.IsEnabled() {
		end := p.Start(fn)
		defer end()
	}
	return d.Fn(rt, args)
}
