/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package tpmcodec packs and unpacks the vendor-independent TPM structures
// the envelope carries — a PCR selection list and the public/private halves
// of a TPM key — into the big-endian, length-prefixed wire form defined by
// the TPM 2.0 "Structures" specification (TPML_PCR_SELECTION, TPM2B_PUBLIC,
// TPM2B_PRIVATE).
package tpmcodec

import "github.com/kmyth-go/ski/pkg/skierr"

// MaxTPM2B is the largest size a TPM2B_* container's UINT16 size prefix can
// express.
const MaxTPM2B = 0xFFFF

// PcrBank is one bank of a PCR selection: a hash algorithm and the bitmap of
// selected PCR indices within that bank, mirroring TPMS_PCR_SELECT.
type PcrBank struct {
	// HashAlg is the TPM algorithm identifier for this bank (TPMI_ALG_HASH),
	// e.g. 0x000B for TPM_ALG_SHA256.
	HashAlg uint16
	// Select is the PCR bitmap octets (sizeofSelect is its length).
	Select []byte
}

// PcrSelection is a vendor-independent TPML_PCR_SELECTION: a count of banks
// plus each bank's bitmap. Values are opaque to the rest of this module;
// only the marshalled form is manipulated outside this package.
type PcrSelection struct {
	Banks []PcrBank
}

func (p PcrSelection) validate(step string) error {
	if len(p.Banks) == 0 {
		return skierr.New(skierr.InvalidArgument, step)
	}
	for _, b := range p.Banks {
		if len(b.Select) == 0 || len(b.Select) > 0xFF {
			return skierr.New(skierr.InvalidArgument, step)
		}
	}
	return nil
}

// PublicBlob is a length-prefixed byte container mirroring TPM2B_PUBLIC.
type PublicBlob struct {
	Bytes []byte
}

func (b PublicBlob) validate(step string) error {
	if len(b.Bytes) == 0 || len(b.Bytes) > MaxTPM2B {
		return skierr.New(skierr.InvalidArgument, step)
	}
	return nil
}

// PrivateBlob is a length-prefixed byte container mirroring TPM2B_PRIVATE.
type PrivateBlob struct {
	Bytes []byte
}

func (b PrivateBlob) validate(step string) error {
	if len(b.Bytes) == 0 || len(b.Bytes) > MaxTPM2B {
		return skierr.New(skierr.InvalidArgument, step)
	}
	return nil
}
