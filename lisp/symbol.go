// Copyright © 2026 The ringlisp authors

package lisp

import "sort"

// Interner maintains the process-wide mapping from symbol names to boxed
// symbol words.  Interning the same name twice returns the same word, so
// symbol equality is word equality.
type Interner struct {
	heap *Heap
	m    map[string]Word
}

// NewInterner returns an empty interner allocating boxes on h.
func NewInterner(h *Heap) *Interner {
	return &Interner{
		heap: h,
		m:    make(map[string]Word),
	}
}

// Intern returns the unique symbol word for name, creating it on first use.
func (in *Interner) Intern(name string) Word {
	if w, ok := in.m[name]; ok {
		return w
	}
	w := in.heap.box(&Data{Kind: KindSymbol, Name: name})
	in.m[name] = w
	return w
}

// Unintern removes name from the intern map.  The box itself survives;
// only the name lookup is severed, so a later Intern of the same spelling
// yields a distinct ordinary symbol.  Used to hide the closure marker from
// user code.
func (in *Interner) Unintern(name string) {
	delete(in.m, name)
}

// Len returns the number of interned names.
func (in *Interner) Len() int {
	return len(in.m)
}

// Names returns all interned names in sorted order.
func (in *Interner) Names() []string {
	names := make([]string, 0, len(in.m))
	for name := range in.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
