/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package aeskw5649 implements AES Key Wrap with Padding as specified in
// RFC 5649, generalizing the classic RFC 3394 (no-padding) key-wrap
// Feistel-like construction to arbitrary-length plaintext via an
// alternative initial value that encodes the true plaintext length.
package aeskw5649

import (
	"crypto/aes"
	"encoding/binary"

	"github.com/kmyth-go/ski/pkg/skierr"
)

// MaxWrapInput is the largest plaintext Wrap accepts: 2^32 - 8 bytes, the
// largest value the RFC 5649 32-bit length field combined with the 8-byte
// semiblock rounding can represent without overflow.
const MaxWrapInput = (1 << 32) - 8

// aiv is the fixed 4-byte RFC 5649 integrity constant (RFC 5649 §3),
// distinct from the RFC 3394 IV (0xA6A6A6A6A6A6A6A6) used when no padding
// is required.
var aiv = [4]byte{0xA6, 0x59, 0x59, 0xA6}

// Wrap encrypts plaintext under key per RFC 5649 §4.1. Output length is
// ceil(len(plaintext)/8)*8 + 8.
func Wrap(key, plaintext []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, skierr.New(skierr.InvalidKeySize, "aeskw5649.wrap")
	}
	if len(plaintext) == 0 || len(plaintext) > MaxWrapInput {
		return nil, skierr.New(skierr.InvalidInputSize, "aeskw5649.wrap")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, skierr.Wrap(skierr.CryptoBackend, "aeskw5649.wrap", err)
	}

	padLen := (8 - len(plaintext)%8) % 8
	padded := make([]byte, len(plaintext)+padLen)
	copy(padded, plaintext)

	var mli [4]byte
	binary.BigEndian.PutUint32(mli[:], uint32(len(plaintext)))

	nblocks := len(padded) / 8

	if nblocks == 1 {
		// RFC 5649 §4.1: when the padded plaintext is exactly one
		// semiblock, wrap with a single AES block encryption, no
		// Feistel rounds.
		var block8 [16]byte
		copy(block8[:4], aiv[:])
		copy(block8[4:8], mli[:])
		copy(block8[8:], padded)
		out := make([]byte, 16)
		block.Encrypt(out, block8[:])
		return out, nil
	}

	var a [8]byte
	copy(a[:4], aiv[:])
	copy(a[4:], mli[:])

	r := make([]byte, len(padded))
	copy(r, padded)

	var blk [16]byte
	for j := 0; j < 6; j++ {
		for i := 0; i < nblocks; i++ {
			copy(blk[:8], a[:])
			copy(blk[8:], r[i*8:i*8+8])
			block.Encrypt(blk[:], blk[:])

			t := uint64(j*nblocks + i + 1)
			v := binary.BigEndian.Uint64(blk[:8]) ^ t
			binary.BigEndian.PutUint64(a[:], v)

			copy(r[i*8:i*8+8], blk[8:])
		}
	}

	out := make([]byte, 8+len(r))
	copy(out[:8], a[:])
	copy(out[8:], r)
	return out, nil
}

// Unwrap decrypts ciphertext under key per RFC 5649 §4.1, verifying the
// integrity constant and the recovered length before returning the first
// L bytes. Any check failure returns IntegrityFailure without exposing how
// far the check progressed (no early return on the first mismatched byte).
func Unwrap(key, ciphertext []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, skierr.New(skierr.InvalidKeySize, "aeskw5649.unwrap")
	}
	if len(ciphertext) < 16 || len(ciphertext)%8 != 0 || len(ciphertext) > MaxWrapInput+8 {
		return nil, skierr.New(skierr.InvalidInputSize, "aeskw5649.unwrap")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, skierr.Wrap(skierr.CryptoBackend, "aeskw5649.unwrap", err)
	}

	var a [8]byte
	var r []byte

	if len(ciphertext) == 16 {
		var out [16]byte
		block.Decrypt(out[:], ciphertext)
		copy(a[:], out[:8])
		r = append([]byte{}, out[8:]...)
	} else {
		copy(a[:], ciphertext[:8])
		r = append([]byte{}, ciphertext[8:]...)
		nblocks := len(r) / 8

		var blk [16]byte
		for j := 5; j >= 0; j-- {
			for i := nblocks - 1; i >= 0; i-- {
				t := uint64(j*nblocks + i + 1)
				v := binary.BigEndian.Uint64(a[:]) ^ t
				binary.BigEndian.PutUint64(blk[:8], v)
				copy(blk[8:], r[i*8:i*8+8])
				block.Decrypt(blk[:], blk[:])

				copy(a[:], blk[:8])
				copy(r[i*8:i*8+8], blk[8:])
			}
		}
	}

	ok := constantTimeEqual(a[:4], aiv[:])
	declaredLen := binary.BigEndian.Uint32(a[4:])

	validLen := declaredLen <= uint32(len(r))
	var padOK bool
	if validLen {
		padOK = true
		for i := int(declaredLen); i < len(r); i++ {
			if r[i] != 0 {
				padOK = false
			}
		}
	}

	if !ok || !validLen || !padOK {
		return nil, skierr.New(skierr.IntegrityFailure, "aeskw5649.unwrap")
	}

	return r[:declaredLen], nil
}

// constantTimeEqual compares two equal-length byte slices without
// short-circuiting on the first mismatch, so IntegrityFailure and
// PolicyFailure stay indistinguishable in timing to the extent practical.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
