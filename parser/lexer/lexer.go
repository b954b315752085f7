// Copyright © 2026 The ringlisp authors

package lexer

import (
	"strconv"
	"unicode"

	"github.com/luthersystems/ringlisp/parser/token"
)

// Lexer tokenizes the s-expression grammar: parens, quote, and maximal
// runs of non-delimiter characters.
type Lexer struct {
	scanner *token.Scanner
}

func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s}
}

// ReadToken returns the next token in the stream.  At the end of the
// stream ReadToken returns an EOF token.
func (lex *Lexer) ReadToken() *token.Token {
	s := lex.scanner
	s.AcceptSeqSpace()
	s.Ignore()
	if s.EOF() {
		if err := s.Err(); err != nil {
			return &token.Token{
				Type:   token.ERROR,
				Text:   err.Error(),
				Source: s.LocStart(),
			}
		}
		return s.EmitToken(token.EOF)
	}
	switch {
	case s.AcceptRune('('):
		return s.EmitToken(token.PAREN_L)
	case s.AcceptRune(')'):
		return s.EmitToken(token.PAREN_R)
	case s.AcceptRune('\''):
		return s.EmitToken(token.QUOTE)
	}
	s.AcceptSeq(func(c rune) bool { return !isDelimiter(c) })
	return lex.emitAtom()
}

// emitAtom classifies the scanned atom text: a fully consumed signed
// decimal integer is an INT; anything else is a SYMBOL.
func (lex *Lexer) emitAtom() *token.Token {
	if _, err := strconv.ParseInt(lex.scanner.Text(), 10, 64); err == nil {
		return lex.scanner.EmitToken(token.INT)
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

func isDelimiter(c rune) bool {
	return c == '(' || c == ')' || c == '\'' || unicode.IsSpace(c)
}
