// Copyright © 2026 The ringlisp authors

package lisp

import (
	"strconv"
	"strings"
)

// Sprint returns the printed representation of w: decimal fixnums, symbol
// spellings, standard list notation with a dot for improper tails,
// "<expr>" for closures (their internal shape must not leak), "<subr>",
// "<error: MSG>", and "<stale value: HEX>".
func (rt *Runtime) Sprint(w Word) string {
	h := rt.Heap
	if h.IsCons(w) {
		if rt.Car(w) == rt.symExpr {
			return "<expr>"
		}
		return rt.sprintList(w)
	}
	if w.IsFixnum() {
		return strconv.FormatInt(w.Int(), 10)
	}
	d := h.Data(w)
	if d == nil {
		return "<unknown object>"
	}
	switch d.Kind {
	case KindNil:
		return "nil"
	case KindSymbol:
		return d.Name
	case KindSubr:
		return "<subr>"
	case KindError:
		return "<error: " + d.Name + ">"
	case KindStale:
		return "<stale value: " + strconv.FormatUint(uint64(d.Orig), 16) + ">"
	}
	return "<unknown object>"
}

func (rt *Runtime) sprintList(w Word) string {
	h := rt.Heap
	var sb strings.Builder
	sb.WriteByte('(')
	first := true
	for h.IsCons(w) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		c := h.cell(w)
		sb.WriteString(rt.Sprint(c.Car))
		w = c.Cdr
	}
	if w != rt.nilw {
		sb.WriteString(" . ")
		sb.WriteString(rt.Sprint(w))
	}
	sb.WriteByte(')')
	return sb.String()
}
