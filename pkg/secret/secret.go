/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package secret provides an ownership-bearing byte container whose
// destruction always zeroizes, so that every early-return path that holds
// key material is correct by construction rather than relying on
// hand-written zeroize calls scattered through call sites.
package secret

// Bytes owns a byte slice that must be scrubbed before the memory backing
// it is released. The zero value is an empty secret that holds no bytes;
// Destroyed reports false for it until Destroy is called.
type Bytes struct {
	buf       []byte
	destroyed bool
}

// New takes ownership of buf and returns a Bytes wrapping it. Callers must
// not retain or read buf directly after this call; use Bytes instead.
func New(buf []byte) *Bytes {
	return &Bytes{buf: buf}
}

// Len reports the length of the live secret, or 0 once destroyed.
func (s *Bytes) Len() int {
	if s == nil || s.destroyed {
		return 0
	}
	return len(s.buf)
}

// Bytes returns the live secret's backing slice. The returned slice aliases
// internal storage and must not be retained past the next Destroy call.
func (s *Bytes) Bytes() []byte {
	if s == nil || s.destroyed {
		return nil
	}
	return s.buf
}

// Destroy overwrites the backing array with zeros and marks the secret dead.
// Destroy is idempotent: calling it twice (e.g. once on an error path and
// once via a deferred cleanup) is safe.
func (s *Bytes) Destroy() {
	if s == nil || s.destroyed {
		return
	}
	for i := range s.buf {
		s.buf[i] = 0
	}
	s.destroyed = true
}

// Destroyed reports whether Destroy has already run.
func (s *Bytes) Destroyed() bool {
	return s == nil || s.destroyed
}

// Clone returns a new Bytes holding an independent copy of the live secret.
// Useful when a single wrapping key must be handed to two collaborators
// that each own their own zeroization lifecycle.
func (s *Bytes) Clone() *Bytes {
	if s == nil || s.destroyed {
		return New(nil)
	}
	cp := make([]byte, len(s.buf))
	copy(cp, s.buf)
	return New(cp)
}
