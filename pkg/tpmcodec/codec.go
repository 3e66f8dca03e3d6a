/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tpmcodec

import (
	"encoding/binary"

	"github.com/google/go-tpm/tpmutil"

	"github.com/kmyth-go/ski/pkg/skierr"
)

// Codec packs and unpacks the three TPM structures the envelope carries.
// Production code uses Default (backed by github.com/google/go-tpm/tpmutil);
// tests may substitute a codec that returns canned errors to exercise
// MalformedEnvelope propagation without a TPM marshaller dependency.
type Codec interface {
	PackPcrSelection(PcrSelection) ([]byte, error)
	UnpackPcrSelection([]byte) (PcrSelection, error)
	PackPublic(PublicBlob) ([]byte, error)
	UnpackPublic([]byte) (PublicBlob, error)
	PackPrivate(PrivateBlob) ([]byte, error)
	UnpackPrivate([]byte) (PrivateBlob, error)
}

// tpm2Codec is the production Codec, built on github.com/google/go-tpm's
// tpmutil package for the length-prefixed TPM2B_* containers.
type tpm2Codec struct{}

// Default is the production TPM marshaller.
var Default Codec = tpm2Codec{}

// PackPublic marshals a PublicBlob as TPM2B_PUBLIC: a big-endian UINT16
// size followed by the public-area bytes. tpmutil.U16Bytes already
// implements exactly this rule.
func (tpm2Codec) PackPublic(b PublicBlob) ([]byte, error) {
	if err := b.validate("tpmcodec.pack_public"); err != nil {
		return nil, err
	}
	out, err := tpmutil.Pack(tpmutil.U16Bytes(b.Bytes))
	if err != nil {
		return nil, skierr.Wrap(skierr.TpmBackend, "tpmcodec.pack_public", err)
	}
	return out, nil
}

// UnpackPublic is the inverse of PackPublic.
func (tpm2Codec) UnpackPublic(data []byte) (PublicBlob, error) {
	var u tpmutil.U16Bytes
	n, err := tpmutil.Unpack(data, &u)
	if err != nil {
		return PublicBlob{}, skierr.Wrap(skierr.MalformedEnvelope, "tpmcodec.unpack_public", err)
	}
	if n != len(data) {
		return PublicBlob{}, skierr.New(skierr.MalformedEnvelope, "tpmcodec.unpack_public")
	}
	out := PublicBlob{Bytes: []byte(u)}
	if err := out.validate("tpmcodec.unpack_public"); err != nil {
		return PublicBlob{}, skierr.New(skierr.MalformedEnvelope, "tpmcodec.unpack_public")
	}
	return out, nil
}

// PackPrivate marshals a PrivateBlob as TPM2B_PRIVATE, the same generic
// length-prefix rule as TPM2B_PUBLIC.
func (tpm2Codec) PackPrivate(b PrivateBlob) ([]byte, error) {
	if err := b.validate("tpmcodec.pack_private"); err != nil {
		return nil, err
	}
	out, err := tpmutil.Pack(tpmutil.U16Bytes(b.Bytes))
	if err != nil {
		return nil, skierr.Wrap(skierr.TpmBackend, "tpmcodec.pack_private", err)
	}
	return out, nil
}

// UnpackPrivate is the inverse of PackPrivate.
func (tpm2Codec) UnpackPrivate(data []byte) (PrivateBlob, error) {
	var u tpmutil.U16Bytes
	n, err := tpmutil.Unpack(data, &u)
	if err != nil {
		return PrivateBlob{}, skierr.Wrap(skierr.MalformedEnvelope, "tpmcodec.unpack_private", err)
	}
	if n != len(data) {
		return PrivateBlob{}, skierr.New(skierr.MalformedEnvelope, "tpmcodec.unpack_private")
	}
	out := PrivateBlob{Bytes: []byte(u)}
	if err := out.validate("tpmcodec.unpack_private"); err != nil {
		return PrivateBlob{}, skierr.New(skierr.MalformedEnvelope, "tpmcodec.unpack_private")
	}
	return out, nil
}

// PackPcrSelection marshals TPML_PCR_SELECTION: a UINT32 bank count
// followed by, per bank, a UINT16 hash alg, a UINT8 sizeofSelect, and the
// selection octets. tpmutil's generic Pack composes fixed-width fields and
// U16/U32-prefixed byte blocks but has no notion of a UINT8-prefixed block
// or of a list of heterogeneous records, so the list structure is
// assembled by hand the same way go-tpm's own command marshalling does
// internally for TPML_PCR_SELECTION. The whole buffer is built locally and
// only returned once every bank has validated, so a failure partway
// through never leaves a partial result observable to the caller.
func (tpm2Codec) PackPcrSelection(p PcrSelection) ([]byte, error) {
	if err := p.validate("tpmcodec.pack_pcr"); err != nil {
		return nil, err
	}

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(len(p.Banks)))

	for _, bank := range p.Banks {
		head, err := tpmutil.Pack(bank.HashAlg, uint8(len(bank.Select)))
		if err != nil {
			return nil, skierr.Wrap(skierr.TpmBackend, "tpmcodec.pack_pcr", err)
		}
		buf = append(buf, head...)
		buf = append(buf, bank.Select...)
	}

	return buf, nil
}

// UnpackPcrSelection is the inverse of PackPcrSelection. The scan advances
// monotonically over a local offset; on any failure the function returns
// immediately without building a partial PcrSelection.
func (tpm2Codec) UnpackPcrSelection(data []byte) (PcrSelection, error) {
	if len(data) < 4 {
		return PcrSelection{}, skierr.New(skierr.MalformedEnvelope, "tpmcodec.unpack_pcr")
	}
	count := binary.BigEndian.Uint32(data[:4])
	offset := 4

	banks := make([]PcrBank, 0, count)
	for i := uint32(0); i < count; i++ {
		if offset+3 > len(data) {
			return PcrSelection{}, skierr.New(skierr.MalformedEnvelope, "tpmcodec.unpack_pcr")
		}
		var hashAlg uint16
		var sizeofSelect uint8
		n, err := tpmutil.Unpack(data[offset:], &hashAlg, &sizeofSelect)
		if err != nil {
			return PcrSelection{}, skierr.Wrap(skierr.MalformedEnvelope, "tpmcodec.unpack_pcr", err)
		}
		offset += n

		if offset+int(sizeofSelect) > len(data) {
			return PcrSelection{}, skierr.New(skierr.MalformedEnvelope, "tpmcodec.unpack_pcr")
		}
		sel := make([]byte, sizeofSelect)
		copy(sel, data[offset:offset+int(sizeofSelect)])
		offset += int(sizeofSelect)

		banks = append(banks, PcrBank{HashAlg: hashAlg, Select: sel})
	}

	if offset != len(data) {
		return PcrSelection{}, skierr.New(skierr.MalformedEnvelope, "tpmcodec.unpack_pcr")
	}

	out := PcrSelection{Banks: banks}
	if err := out.validate("tpmcodec.unpack_pcr"); err != nil {
		return PcrSelection{}, skierr.New(skierr.MalformedEnvelope, "tpmcodec.unpack_pcr")
	}
	return out, nil
}
