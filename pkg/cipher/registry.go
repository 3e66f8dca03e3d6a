/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cipher implements the cipher-suite registry (C1): a static,
// read-only-after-init table from suite name to suite descriptor, dispatching
// wrap/unwrap calls to the descriptor's implementation.
package cipher

import (
	"github.com/kmyth-go/ski/pkg/skierr"
)

// WrapFunc encrypts plaintext under key, returning ciphertext.
type WrapFunc func(key, plaintext []byte) ([]byte, error)

// UnwrapFunc decrypts ciphertext under key, returning plaintext.
type UnwrapFunc func(key, ciphertext []byte) ([]byte, error)

// Suite is an immutable, registry-owned cipher-suite descriptor.
type Suite struct {
	name     string
	keyBytes []int
	wrap     WrapFunc
	unwrap   UnwrapFunc
}

// Name returns the suite's canonical identifier, e.g.
// "AES/KeyWrap/RFC5649Padding/128".
func (s *Suite) Name() string {
	return s.name
}

// KeyBytes returns the key sizes, in bytes, this suite accepts.
func (s *Suite) KeyBytes() []int {
	out := make([]int, len(s.keyBytes))
	copy(out, s.keyBytes)
	return out
}

func (s *Suite) acceptsKeyLen(n int) bool {
	for _, kb := range s.keyBytes {
		if kb == n {
			return true
		}
	}
	return false
}

// Wrap encrypts plaintext under key using this suite, validating key size
// before dispatching to the suite's implementation.
func (s *Suite) Wrap(key, plaintext []byte) ([]byte, error) {
	if len(key) == 0 || !s.acceptsKeyLen(len(key)) {
		return nil, skierr.New(skierr.InvalidKeySize, "cipher.wrap")
	}
	ct, err := s.wrap(key, plaintext)
	if err != nil {
		return nil, err
	}
	return ct, nil
}

// Unwrap decrypts ciphertext under key using this suite, validating key size
// before dispatching to the suite's implementation.
func (s *Suite) Unwrap(key, ciphertext []byte) ([]byte, error) {
	if len(key) == 0 || !s.acceptsKeyLen(len(key)) {
		return nil, skierr.New(skierr.InvalidKeySize, "cipher.unwrap")
	}
	pt, err := s.unwrap(key, ciphertext)
	if err != nil {
		return nil, err
	}
	return pt, nil
}

// registry is frozen by init() and never mutated afterward: concurrent
// readers need no synchronization, and there is no hot-reload path.
var registry map[string]*Suite

func register(s *Suite) {
	if registry == nil {
		registry = make(map[string]*Suite)
	}
	registry[s.name] = s
}

// Lookup resolves a suite by its exact, case-sensitive name.
func Lookup(name string) (*Suite, error) {
	s, ok := registry[name]
	if !ok {
		return nil, skierr.New(skierr.UnknownCipher, "cipher.lookup")
	}
	return s, nil
}

// Names returns the canonical names of every registered suite, for
// diagnostics and tests. Order is unspecified.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
