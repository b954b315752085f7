// Copyright © 2026 The ringlisp authors

package ringtest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	log := NewLogger(t)
	n, err := fmt.Fprintf(log, "one\ntwo\npartial")
	assert.NoError(t, err)
	assert.Equal(t, len("one\ntwo\npartial"), n)
	log.Flush()
	log.Flush() // idempotent on an empty buffer
}
