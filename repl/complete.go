// Copyright © 2026 The ringlisp authors

package repl

import (
	"strings"

	"github.com/luthersystems/ringlisp/lisp"
)

// symbolCompleter implements readline.AutoCompleter by enumerating
// interned symbols from the runtime.
type symbolCompleter struct {
	rt *lisp.Runtime
}

func (c *symbolCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to whitespace,
	// quote, or open paren).
	start := pos
	for start > 0 {
		switch line[start-1] {
		case ' ', '\t', '\n', '(', '\'':
		default:
			start--
			continue
		}
		break
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	var result [][]rune
	for _, name := range c.rt.Symbols.Names() {
		if strings.HasPrefix(name, prefix) {
			result = append(result, []rune(name[len(prefix):]))
		}
	}
	return result, len(prefix)
}
