/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aeskw5649_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmyth-go/ski/pkg/cipher/aeskw5649"
	"github.com/kmyth-go/ski/pkg/skierr"
)

// S1: 128-bit wrap of 20 bytes.
func TestWrapScenarioS1(t *testing.T) {
	key := make([]byte, 16)
	plaintext := make([]byte, 20)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	ct, err := aeskw5649.Wrap(key, plaintext)
	require.NoError(t, err)
	assert.Len(t, ct, 32)

	pt, err := aeskw5649.Unwrap(key, ct)
	require.NoError(t, err)
	assert.Equal(t, plaintext, pt)
}

// S2: 256-bit wrap of 1 byte.
func TestWrapScenarioS2(t *testing.T) {
	key := make([]byte, 32)
	plaintext := []byte{0xA6}

	ct, err := aeskw5649.Wrap(key, plaintext)
	require.NoError(t, err)
	assert.Len(t, ct, 16)

	pt, err := aeskw5649.Unwrap(key, ct)
	require.NoError(t, err)
	assert.Equal(t, plaintext, pt)
}

// S6: unwrap tamper detection on S1's ciphertext.
func TestUnwrapRejectsTamper(t *testing.T) {
	key := make([]byte, 16)
	plaintext := make([]byte, 20)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}
	ct, err := aeskw5649.Wrap(key, plaintext)
	require.NoError(t, err)

	tampered := append([]byte(nil), ct...)
	tampered[0] ^= 0x01

	_, err = aeskw5649.Unwrap(key, tampered)
	require.Error(t, err)
	assert.True(t, skierr.Is(err, skierr.IntegrityFailure))
}

func TestRoundTripAllKeySizes(t *testing.T) {
	for _, keyLen := range []int{16, 24, 32} {
		for _, ptLen := range []int{1, 7, 8, 9, 63, 64, 65, 4096} {
			key := make([]byte, keyLen)
			for i := range key {
				key[i] = byte(i*7 + keyLen)
			}
			pt := make([]byte, ptLen)
			for i := range pt {
				pt[i] = byte(i * 3)
			}

			ct, err := aeskw5649.Wrap(key, pt)
			require.NoErrorf(t, err, "keyLen=%d ptLen=%d", keyLen, ptLen)

			got, err := aeskw5649.Unwrap(key, ct)
			require.NoErrorf(t, err, "keyLen=%d ptLen=%d", keyLen, ptLen)
			assert.Equal(t, pt, got)
		}
	}
}

// Property 7 (size bounds).
func TestWrapRejectsSizeBounds(t *testing.T) {
	key := make([]byte, 16)

	_, err := aeskw5649.Wrap(key, nil)
	require.Error(t, err)
	assert.True(t, skierr.Is(err, skierr.InvalidInputSize))

	_, err = aeskw5649.Wrap(key, make([]byte, aeskw5649.MaxWrapInput+1))
	require.Error(t, err)
	assert.True(t, skierr.Is(err, skierr.InvalidInputSize))
}

func TestUnwrapRejectsSizeBounds(t *testing.T) {
	key := make([]byte, 16)

	_, err := aeskw5649.Unwrap(key, make([]byte, 15))
	require.Error(t, err)
	assert.True(t, skierr.Is(err, skierr.InvalidInputSize))

	_, err = aeskw5649.Unwrap(key, make([]byte, 17))
	require.Error(t, err)
	assert.True(t, skierr.Is(err, skierr.InvalidInputSize))
}

func TestWrapRejectsInvalidKeySize(t *testing.T) {
	_, err := aeskw5649.Wrap(make([]byte, 20), make([]byte, 8))
	require.Error(t, err)
}
