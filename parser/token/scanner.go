// Copyright © 2026 The ringlisp authors

package token

import (
	"io"
	"unicode"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from a byte stream.  The
// grammar is line-oriented and tiny, so the scanner buffers the whole
// stream up front instead of windowing it.
type Scanner struct {
	file    string
	buf     []byte
	start   int // start of the current token
	pos     int // index of the next rune to scan
	line    int // line number at pos
	lineTok int // line number at start
	readErr error
}

// NewScanner initializes and returns a new Scanner.  A stream read
// failure is reported by Err; the bytes read before the failure remain
// scannable.
func NewScanner(file string, r io.Reader) *Scanner {
	buf, err := io.ReadAll(r)
	return &Scanner{
		file:    file,
		buf:     buf,
		line:    1,
		lineTok: 1,
		readErr: err,
	}
}

// Err returns an error encountered reading the input stream.
func (s *Scanner) Err() error {
	return s.readErr
}

// EOF reports whether the scanner has consumed the entire stream.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.buf)
}

// Peek returns the next rune to be scanned, if there is one.
func (s *Scanner) Peek() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	c, _ := utf8.DecodeRune(s.buf[s.pos:])
	return c, true
}

// ScanRune consumes one rune into the current token.
func (s *Scanner) ScanRune() bool {
	if s.EOF() {
		return false
	}
	c, n := utf8.DecodeRune(s.buf[s.pos:])
	s.pos += n
	if c == '\n' {
		s.line++
	}
	return true
}

// Accept consumes the next rune if fn approves of it.
func (s *Scanner) Accept(fn func(rune) bool) bool {
	c, ok := s.Peek()
	if !ok || !fn(c) {
		return false
	}
	return s.ScanRune()
}

// AcceptRune consumes the next rune if it equals c.
func (s *Scanner) AcceptRune(c rune) bool {
	return s.Accept(func(r rune) bool { return r == c })
}

// AcceptSeq consumes a maximal run of runes approved by fn.
func (s *Scanner) AcceptSeq(fn func(rune) bool) int {
	var n int
	for s.Accept(fn) {
		n++
	}
	return n
}

// AcceptSeqSpace consumes a maximal run of whitespace.
func (s *Scanner) AcceptSeqSpace() int {
	return s.AcceptSeq(unicode.IsSpace)
}

// Text returns the text scanned since the last call to either EmitToken
// or Ignore.
func (s *Scanner) Text() string {
	return string(s.buf[s.start:s.pos])
}

// Ignore discards the text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.pos
	s.lineTok = s.line
}

// EmitToken returns a token containing the text scanned since the last
// call to either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// LocStart returns a Location referencing the beginning of the current
// token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.start,
		Line: s.lineTok,
	}
}
