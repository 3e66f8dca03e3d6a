/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cipher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmyth-go/ski/pkg/cipher"
	"github.com/kmyth-go/ski/pkg/skierr"
)

func TestLookupKnownSuites(t *testing.T) {
	for _, name := range []string{
		cipher.AESKeyWrap5649Padding128,
		cipher.AESKeyWrap5649Padding192,
		cipher.AESKeyWrap5649Padding256,
		cipher.AESGCMNoPadding128,
		cipher.AESGCMNoPadding256,
	} {
		suite, err := cipher.Lookup(name)
		require.NoErrorf(t, err, "suite %s", name)
		assert.Equal(t, name, suite.Name())
	}
}

func TestLookupUnknownCipher(t *testing.T) {
	_, err := cipher.Lookup("AES/GCM/NoPadding/192")
	require.Error(t, err)
	assert.True(t, skierr.Is(err, skierr.UnknownCipher))
}

func TestLookupIsCaseSensitive(t *testing.T) {
	_, err := cipher.Lookup("aes/keywrap/rfc5649padding/128")
	require.Error(t, err)
	assert.True(t, skierr.Is(err, skierr.UnknownCipher))
}

func TestKeyWrapSuiteRoundTrip(t *testing.T) {
	suite, err := cipher.Lookup(cipher.AESKeyWrap5649Padding256)
	require.NoError(t, err)

	key := make([]byte, 32)
	plaintext := []byte("seal this wrapping key material")

	ct, err := suite.Wrap(key, plaintext)
	require.NoError(t, err)

	pt, err := suite.Unwrap(key, ct)
	require.NoError(t, err)
	assert.Equal(t, plaintext, pt)
}

func TestGCMSuiteRoundTrip(t *testing.T) {
	suite, err := cipher.Lookup(cipher.AESGCMNoPadding128)
	require.NoError(t, err)

	key := make([]byte, 16)
	plaintext := []byte("a wrapping key wrapped under gcm")

	ct, err := suite.Wrap(key, plaintext)
	require.NoError(t, err)

	pt, err := suite.Unwrap(key, ct)
	require.NoError(t, err)
	assert.Equal(t, plaintext, pt)
}

func TestWrapRejectsWrongKeySize(t *testing.T) {
	suite, err := cipher.Lookup(cipher.AESKeyWrap5649Padding128)
	require.NoError(t, err)

	_, err = suite.Wrap(make([]byte, 24), []byte("payload"))
	require.Error(t, err)
	assert.True(t, skierr.Is(err, skierr.InvalidKeySize))
}
