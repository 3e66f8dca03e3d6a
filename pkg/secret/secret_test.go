/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package secret_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmyth-go/ski/pkg/secret"
)

// Property 8: destroying a secret leaves no trace of it in the backing array.
func TestDestroyZeroizesBackingArray(t *testing.T) {
	buf := make([]byte, 32)
	for i := range buf {
		buf[i] = byte(i + 1)
	}

	s := secret.New(buf)
	assert.Equal(t, 32, s.Len())
	assert.Equal(t, buf, s.Bytes())

	s.Destroy()

	assert.True(t, s.Destroyed())
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Bytes())

	for i, b := range buf {
		assert.Equalf(t, byte(0), b, "byte %d of destroyed secret's backing array is not zero", i)
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	s := secret.New([]byte{0xAA, 0xBB, 0xCC})
	s.Destroy()
	assert.NotPanics(t, func() { s.Destroy() })
	assert.True(t, s.Destroyed())
}

func TestDestroyOnNilReceiverIsSafe(t *testing.T) {
	var s *secret.Bytes
	assert.NotPanics(t, func() { s.Destroy() })
	assert.True(t, s.Destroyed())
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Bytes())
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	original := secret.New([]byte{0x01, 0x02, 0x03})
	clone := original.Clone()

	original.Destroy()

	assert.True(t, original.Destroyed())
	assert.False(t, clone.Destroyed())
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, clone.Bytes())
}
