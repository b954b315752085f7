// Copyright © 2026 The ringlisp authors

/*
Package rdparser provides the default recursive-descent reader.

	expr  := atom | list | "'" expr
	list  := "(" expr* ")"
	atom  := maximal run of non-delimiter characters
	delim := "(" | ")" | "'" | whitespace

An atom whose text fully parses as a signed decimal integer is a fixnum;
every other atom is interned as a symbol.  'e rewrites to (quote e).
Syntax problems become first-class error values, not Go errors.
*/
package rdparser

import (
	"io"
	"strconv"

	"github.com/luthersystems/ringlisp/lisp"
	"github.com/luthersystems/ringlisp/parser/lexer"
	"github.com/luthersystems/ringlisp/parser/token"
)

// NewReader returns a lisp.Reader.
func NewReader() lisp.Reader {
	return &reader{}
}

type reader struct{}

func (*reader) Read(name string, r io.Reader, b lisp.Builder) ([]lisp.Word, error) {
	s := token.NewScanner(name, r)
	if err := s.Err(); err != nil {
		return nil, err
	}
	p := &parser{
		lex: lexer.New(s),
		b:   b,
	}
	var vals []lisp.Word
	for {
		tok := p.next()
		if tok.Type == token.EOF {
			return vals, nil
		}
		vals = append(vals, p.parse(tok))
		if p.failed {
			// A syntax error value terminates the stream; the caller sees
			// everything parsed before it plus the error value itself.
			return vals, nil
		}
	}
}

type parser struct {
	lex    *lexer.Lexer
	b      lisp.Builder
	failed bool
}

func (p *parser) next() *token.Token {
	return p.lex.ReadToken()
}

func (p *parser) fail(msg string) lisp.Word {
	p.failed = true
	return p.b.ReadError(msg)
}

func (p *parser) parse(tok *token.Token) lisp.Word {
	switch tok.Type {
	case token.EOF:
		return p.fail("empty input")
	case token.ERROR:
		return p.fail(tok.Text)
	case token.PAREN_R:
		return p.fail("invalid syntax")
	case token.PAREN_L:
		return p.parseList()
	case token.QUOTE:
		elm := p.parse(p.next())
		return p.b.Cons(p.b.Symbol("quote"), p.b.Cons(elm, p.b.Nil()))
	case token.INT:
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			// The lexer only emits INT for text it already parsed.
			return p.fail("invalid syntax")
		}
		return p.b.Int(n)
	case token.SYMBOL:
		return p.b.Symbol(tok.Text)
	}
	return p.fail("invalid syntax")
}

// parseList accumulates elements with cons-prepending and destructively
// reverses the result, which is safe because the list is not yet
// reachable elsewhere.
func (p *parser) parseList() lisp.Word {
	acc := p.b.Nil()
	for {
		tok := p.next()
		switch tok.Type {
		case token.EOF:
			return p.fail("unfinished parenthesis")
		case token.PAREN_R:
			return p.b.Nreverse(acc)
		}
		elm := p.parse(tok)
		if p.failed {
			return elm
		}
		acc = p.b.Cons(elm, acc)
	}
}
