/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package envelope

import (
	"bytes"

	"github.com/kmyth-go/ski/pkg/skierr"
)

// cursor is a value type wrapping the remaining unparsed input. Passing it
// by value (rather than a pointer to shared mutable state) keeps parse
// purely a chain of "consume a block, get back what's left" steps: no
// caller can observe a half-advanced cursor, and a later section can never
// be read before an earlier one's getBlock call has returned.
type cursor []byte

// getBlock finds openDelim, then the following closeDelim, and returns the
// exact bytes strictly between them plus a cursor positioned at the start
// of closeDelim, so that the next call consumes it as its own openDelim.
// openDelim must be the very next thing in c (no skipping
// ahead over unexpected bytes) — this is what enforces the fixed section
// order of spec.md §6.
func (c cursor) getBlock(openDelim, closeDelim string) ([]byte, cursor, error) {
	rest, ok := cutPrefixLine(c, openDelim)
	if !ok {
		return nil, nil, skierr.New(skierr.MalformedEnvelope, "envelope.get_block")
	}

	idx := bytes.Index(rest, []byte(closeDelim))
	if idx < 0 {
		return nil, nil, skierr.New(skierr.MalformedEnvelope, "envelope.get_block")
	}

	block := rest[:idx]
	after := rest[idx:]
	return block, cursor(after), nil
}

// cutPrefixLine reports whether c begins with delim followed immediately
// by '\n', returning the remainder after that newline.
func cutPrefixLine(c cursor, delim string) ([]byte, bool) {
	d := []byte(delim)
	if len(c) < len(d)+1 {
		return nil, false
	}
	if !bytes.Equal(c[:len(d)], d) {
		return nil, false
	}
	if c[len(d)] != '\n' {
		return nil, false
	}
	return c[len(d)+1:], true
}
