// Copyright © 2026 The ringlisp authors

/*
Package parsecparser provides an alternative reader built on the goparsec
combinator library.  It accepts the same grammar as rdparser and produces
the same values, including the reader's first-class error values; the
benchmarks compare the two.
*/
package parsecparser

import (
	"io"
	"strconv"

	"github.com/luthersystems/ringlisp/lisp"
	parsec "github.com/prataprc/goparsec"
)

// NewReader returns a lisp.Reader.
func NewReader() lisp.Reader {
	return &parsecReader{}
}

type parsecReader struct{}

func (*parsecReader) Read(name string, r io.Reader, b lisp.Builder) ([]lisp.Word, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	w := &walker{b: b}
	var vals []lisp.Word
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		vals = append(vals, w.word(root))
		if w.failed {
			return vals, nil
		}
		root, s = parser(s)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		// Unconsumed source text; a stray closing paren lands here.
		vals = append(vals, b.ReadError("invalid syntax"))
	}
	return vals, nil
}

type nodeType uint

const (
	nodeInvalid nodeType = iota
	nodeSExpr
	nodeSExprUnmatched
	nodeQExpr
)

type ast struct {
	children []parsec.ParsecNode
	typ      nodeType
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return &ast{children: nodes, typ: t}
	}
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	q := parsec.Atom("'", "QUOTE")
	atom := parsec.Token(`[^\s()']+`, "ATOM")

	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(astNode(nodeSExpr), openP, exprList, closeP)
	sexprUnmatched := parsec.And(astNode(nodeSExprUnmatched), openP, exprList, parsec.End())
	qexpr := parsec.And(astNode(nodeQExpr), q, &expr)
	expr = parsec.OrdChoice(nil,
		atom,
		sexpr,
		qexpr,
		// Error matching comes last because it has the lowest precedence.
		sexprUnmatched,
	)
	return expr
}

type walker struct {
	b      lisp.Builder
	failed bool
}

func (w *walker) fail(msg string) lisp.Word {
	w.failed = true
	return w.b.ReadError(msg)
}

// word converts a parse node to a tagged value.
func (w *walker) word(node parsec.ParsecNode) lisp.Word {
	switch node := node.(type) {
	case *parsec.Terminal:
		return w.atom(node.GetValue())
	case *ast:
		switch node.typ {
		case nodeSExpr:
			return w.list(node.children)
		case nodeQExpr:
			elms := flatten(node.children)
			// elms[0] is the quote mark terminal.
			if len(elms) < 2 {
				return w.fail("invalid syntax")
			}
			elm := w.word(elms[1])
			return w.b.Cons(w.b.Symbol("quote"), w.b.Cons(elm, w.b.Nil()))
		case nodeSExprUnmatched:
			return w.fail("unfinished parenthesis")
		}
	case []parsec.ParsecNode:
		elms := flatten(node)
		if len(elms) == 1 {
			return w.word(elms[0])
		}
	}
	return w.fail("invalid syntax")
}

// list builds a cons list from the children of an sexpr node, skipping the
// paren terminals, by prepending and destructively reversing.
func (w *walker) list(nodes []parsec.ParsecNode) lisp.Word {
	acc := w.b.Nil()
	for _, n := range flatten(nodes) {
		if term, ok := n.(*parsec.Terminal); ok {
			switch term.GetName() {
			case "OPENP", "CLOSEP":
				continue
			}
		}
		elm := w.word(n)
		if w.failed {
			return elm
		}
		acc = w.b.Cons(elm, acc)
	}
	return w.b.Nreverse(acc)
}

func (w *walker) atom(text string) lisp.Word {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return w.b.Int(n)
	}
	return w.b.Symbol(text)
}

// flatten removes the nesting that nil-callback combinators introduce,
// leaving terminals and ast nodes.
func flatten(nodes []parsec.ParsecNode) []parsec.ParsecNode {
	var out []parsec.ParsecNode
	for _, n := range nodes {
		switch n := n.(type) {
		case []parsec.ParsecNode:
			out = append(out, flatten(n)...)
		case nil:
			continue
		default:
			out = append(out, n)
		}
	}
	return out
}
