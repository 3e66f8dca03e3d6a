/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package aesgcm adapts Tink's AES-GCM subtle primitive
// (github.com/google/tink/go/aead/subtle) into the wrap/unwrap contract
// the cipher registry expects, so the registry can dispatch to an
// authenticated-encryption suite alongside the RFC 5649 key-wrap suite.
// Ciphertext framing is nonce || sealed, matching the subtle primitive's
// own Encrypt output.
package aesgcm

import (
	aeadsubtle "github.com/google/tink/go/aead/subtle"

	"github.com/kmyth-go/ski/pkg/skierr"
)

// MaxInput bounds plaintext/ciphertext size to keep the suite's behavior
// comparable to the key-wrap suite's MAX_WRAP_INPUT bound; Tink itself has
// no such limit for AES-GCM.
const MaxInput = (1 << 32) - 8

// Wrap encrypts plaintext under key using AES-GCM, returning
// nonce || ciphertext || tag.
func Wrap(key, plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 || len(plaintext) > MaxInput {
		return nil, skierr.New(skierr.InvalidInputSize, "aesgcm.wrap")
	}
	a, err := aeadsubtle.NewAESGCM(key)
	if err != nil {
		return nil, skierr.Wrap(skierr.CryptoBackend, "aesgcm.wrap", err)
	}
	ct, err := a.Encrypt(plaintext, nil)
	if err != nil {
		return nil, skierr.Wrap(skierr.CryptoBackend, "aesgcm.wrap", err)
	}
	return ct, nil
}

// Unwrap decrypts ciphertext (nonce || ciphertext || tag) under key using
// AES-GCM, failing IntegrityFailure on tag mismatch.
func Unwrap(key, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < aeadsubtle.AESGCMIVSize+aeadsubtle.AESGCMTagSize {
		return nil, skierr.New(skierr.InvalidInputSize, "aesgcm.unwrap")
	}
	if len(ciphertext) > MaxInput+aeadsubtle.AESGCMIVSize+aeadsubtle.AESGCMTagSize {
		return nil, skierr.New(skierr.InvalidInputSize, "aesgcm.unwrap")
	}
	a, err := aeadsubtle.NewAESGCM(key)
	if err != nil {
		return nil, skierr.Wrap(skierr.CryptoBackend, "aesgcm.unwrap", err)
	}
	pt, err := a.Decrypt(ciphertext, nil)
	if err != nil {
		return nil, skierr.New(skierr.IntegrityFailure, "aesgcm.unwrap")
	}
	return pt, nil
}
