// Copyright © 2026 The ringlisp authors

package lisp

type builtinDef struct {
	name string
	fn   SubrFunc
}

// langBuiltins are bound in the global environment during runtime
// initialization, before the heap freezes, so the bindings are immortal
// and immutable.
var langBuiltins = []*builtinDef{
	{"car", subrCar},
	{"cdr", subrCdr},
	{"cons", subrCons},
	{"eq", subrEq},
	{"atom", subrAtom},
	{"numberp", subrNumberp},
	{"symbolp", subrSymbolp},
	{"+", subrAdd},
	{"*", subrMul},
	{"-", subrSub},
	{"/", subrDiv},
	{"mod", subrMod},
	{"list", subrList},
	{"copy", subrCopy},
}

func subrCar(rt *Runtime, args Word) Word {
	return rt.Car(rt.Car(args))
}

func subrCdr(rt *Runtime, args Word) Word {
	return rt.Cdr(rt.Car(args))
}

func subrCons(rt *Runtime, args Word) Word {
	return rt.Heap.Cons(rt.Car(args), rt.Car(rt.Cdr(args)))
}

// eq is word identity: fixnums compare by value, everything else by
// address including generation bits.
func subrEq(rt *Runtime, args Word) Word {
	x := rt.Car(args)
	y := rt.Car(rt.Cdr(args))
	if x == y {
		return rt.symT
	}
	return rt.nilw
}

func subrAtom(rt *Runtime, args Word) Word {
	if rt.Heap.IsCons(rt.Car(args)) {
		return rt.nilw
	}
	return rt.symT
}

func subrNumberp(rt *Runtime, args Word) Word {
	if rt.Car(args).IsFixnum() {
		return rt.symT
	}
	return rt.nilw
}

func subrSymbolp(rt *Runtime, args Word) Word {
	if rt.Heap.IsKind(rt.Car(args), KindSymbol) {
		return rt.symT
	}
	return rt.nilw
}

// addOrMul folds fn over zero or more fixnum arguments starting from the
// operation's identity.
func addOrMul(rt *Runtime, fn func(x, y int64) int64, init int64, args Word) Word {
	h := rt.Heap
	if h.IsStale(args) {
		return h.NewStale(args)
	}
	ret := init
	for h.IsCons(args) {
		a := rt.Car(args)
		args = rt.Cdr(args)
		if !a.IsFixnum() {
			return h.NewError("number is expected")
		}
		ret = fn(ret, a.Int())
		if h.IsStale(args) {
			return h.NewStale(args)
		}
	}
	return Fixnum(ret)
}

func subrAdd(rt *Runtime, args Word) Word {
	return addOrMul(rt, func(x, y int64) int64 { return x + y }, 0, args)
}

func subrMul(rt *Runtime, args Word) Word {
	return addOrMul(rt, func(x, y int64) int64 { return x * y }, 1, args)
}

// subOrDivOrMod applies a binary operation to exactly two fixnums.
func subOrDivOrMod(rt *Runtime, fn func(x, y int64) Word, args Word) Word {
	h := rt.Heap
	x := rt.Car(args)
	if h.IsStale(x) {
		return h.NewStale(x)
	}
	y := rt.Car(rt.Cdr(args))
	if h.IsStale(y) {
		return h.NewStale(y)
	}
	if !x.IsFixnum() || !y.IsFixnum() {
		return h.NewError("number is expected")
	}
	return fn(x.Int(), y.Int())
}

func subrSub(rt *Runtime, args Word) Word {
	return subOrDivOrMod(rt, func(x, y int64) Word { return Fixnum(x - y) }, args)
}

func subrDiv(rt *Runtime, args Word) Word {
	return subOrDivOrMod(rt, func(x, y int64) Word {
		if y == 0 {
			return rt.Heap.NewError("division by zero")
		}
		return Fixnum(x / y)
	}, args)
}

func subrMod(rt *Runtime, args Word) Word {
	return subOrDivOrMod(rt, func(x, y int64) Word {
		if y == 0 {
			return rt.Heap.NewError("division by zero")
		}
		return Fixnum(x % y)
	}, args)
}

func subrList(rt *Runtime, args Word) Word {
	return args
}

func subrCopy(rt *Runtime, args Word) Word {
	return rt.copyRec(rt.Car(args))
}

// copyRec deep-copies cons structure, stopping at non-cons leaves.  The
// copy is built of fresh cells in the current generation.
func (rt *Runtime) copyRec(obj Word) Word {
	h := rt.Heap
	if !h.IsCons(obj) {
		return obj
	}
	if h.IsStale(obj) {
		return h.NewStale(obj)
	}
	return h.Cons(rt.copyRec(rt.Car(obj)), rt.copyRec(rt.Cdr(obj)))
}
