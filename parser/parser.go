// Copyright © 2026 The ringlisp authors

package parser

import (
	"github.com/luthersystems/ringlisp/lisp"
	"github.com/luthersystems/ringlisp/parser/rdparser"
)

// NewReader returns a new lisp.Reader
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}
