// Copyright © 2026 The ringlisp authors

package lexer

import (
	"strings"
	"testing"

	"github.com/luthersystems/ringlisp/parser/token"
	"github.com/stretchr/testify/assert"
)

func lexAll(src string) []*token.Token {
	lex := New(token.NewScanner("test", strings.NewReader(src)))
	var toks []*token.Token
	for {
		tok := lex.ReadToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF || tok.Type == token.ERROR {
			return toks
		}
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		source string
		types  []token.Type
		texts  []string
	}{
		{"", []token.Type{token.EOF}, []string{""}},
		{"   \n\t ", []token.Type{token.EOF}, []string{""}},
		{"12", []token.Type{token.INT, token.EOF}, []string{"12", ""}},
		{"-12", []token.Type{token.INT, token.EOF}, []string{"-12", ""}},
		{"-", []token.Type{token.SYMBOL, token.EOF}, []string{"-", ""}},
		{"12a", []token.Type{token.SYMBOL, token.EOF}, []string{"12a", ""}},
		{"abc", []token.Type{token.SYMBOL, token.EOF}, []string{"abc", ""}},
		{"'x", []token.Type{token.QUOTE, token.SYMBOL, token.EOF}, []string{"'", "x", ""}},
		{"(+ 1 2)", []token.Type{
			token.PAREN_L, token.SYMBOL, token.INT, token.INT, token.PAREN_R, token.EOF,
		}, []string{"(", "+", "1", "2", ")", ""}},
		{"a'b", []token.Type{token.SYMBOL, token.QUOTE, token.SYMBOL, token.EOF},
			[]string{"a", "'", "b", ""}},
		{"(a(b", []token.Type{
			token.PAREN_L, token.SYMBOL, token.PAREN_L, token.SYMBOL, token.EOF,
		}, []string{"(", "a", "(", "b", ""}},
	}
	for i, test := range tests {
		toks := lexAll(test.source)
		if !assert.Len(t, toks, len(test.types), "test %d: %q", i, test.source) {
			continue
		}
		for j, tok := range toks {
			assert.Equal(t, test.types[j], tok.Type, "test %d: %q token %d", i, test.source, j)
			assert.Equal(t, test.texts[j], tok.Text, "test %d: %q token %d", i, test.source, j)
		}
	}
}
