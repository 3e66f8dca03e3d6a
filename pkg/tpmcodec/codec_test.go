/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tpmcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmyth-go/ski/pkg/skierr"
	"github.com/kmyth-go/ski/pkg/tpmcodec"
)

func TestPublicBlobRoundTrip(t *testing.T) {
	codec := tpmcodec.Default
	orig := tpmcodec.PublicBlob{Bytes: []byte{0x00, 0x10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}

	packed, err := codec.PackPublic(orig)
	require.NoError(t, err)

	got, err := codec.UnpackPublic(packed)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestPrivateBlobRoundTrip(t *testing.T) {
	codec := tpmcodec.Default
	orig := tpmcodec.PrivateBlob{Bytes: []byte{0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA}}

	packed, err := codec.PackPrivate(orig)
	require.NoError(t, err)

	got, err := codec.UnpackPrivate(packed)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestPcrSelectionRoundTrip(t *testing.T) {
	codec := tpmcodec.Default
	orig := tpmcodec.PcrSelection{
		Banks: []tpmcodec.PcrBank{
			{HashAlg: 0x000B, Select: []byte{0x00, 0x00, 0x00, 0x00}},
			{HashAlg: 0x0004, Select: []byte{0xFF, 0x00, 0x00}},
		},
	}

	packed, err := codec.PackPcrSelection(orig)
	require.NoError(t, err)

	got, err := codec.UnpackPcrSelection(packed)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestUnpackPcrSelectionRejectsTruncation(t *testing.T) {
	codec := tpmcodec.Default
	orig := tpmcodec.PcrSelection{
		Banks: []tpmcodec.PcrBank{{HashAlg: 0x000B, Select: []byte{0x00, 0x00, 0x00}}},
	}
	packed, err := codec.PackPcrSelection(orig)
	require.NoError(t, err)

	_, err = codec.UnpackPcrSelection(packed[:len(packed)-1])
	require.Error(t, err)
	assert.True(t, skierr.Is(err, skierr.MalformedEnvelope))
}

func TestPackPublicRejectsEmpty(t *testing.T) {
	_, err := tpmcodec.Default.PackPublic(tpmcodec.PublicBlob{})
	require.Error(t, err)
	assert.True(t, skierr.Is(err, skierr.InvalidArgument))
}

func TestPackPcrSelectionRejectsEmptyBanks(t *testing.T) {
	_, err := tpmcodec.Default.PackPcrSelection(tpmcodec.PcrSelection{})
	require.Error(t, err)
	assert.True(t, skierr.Is(err, skierr.InvalidArgument))
}
