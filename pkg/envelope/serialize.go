/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package envelope

import (
	"bytes"
	"encoding/base64"

	"github.com/kmyth-go/ski/pkg/cipher"
	"github.com/kmyth-go/ski/pkg/skierr"
	"github.com/kmyth-go/ski/pkg/tpmcodec"
)

// Serialize marshals e into the bit-exact wire format of spec.md §6, using
// codec to pack the TPM structures into their platform-independent byte
// form before base64-framing them. Serialize is a pure function of e: the
// same Envelope always produces the same bytes.
func Serialize(e Envelope, codec tpmcodec.Codec) ([]byte, error) {
	if codec == nil {
		codec = tpmcodec.Default
	}

	if e.CipherName == "" {
		return nil, skierr.New(skierr.InvalidArgument, "envelope.serialize")
	}
	if _, err := cipher.Lookup(e.CipherName); err != nil {
		return nil, err
	}
	if len(e.EncPayload) == 0 {
		return nil, skierr.New(skierr.InvalidArgument, "envelope.serialize")
	}

	pcrBytes, err := codec.PackPcrSelection(e.PcrList)
	if err != nil {
		return nil, err
	}
	skPubBytes, err := codec.PackPublic(e.SkPub)
	if err != nil {
		return nil, err
	}
	skPrivBytes, err := codec.PackPrivate(e.SkPriv)
	if err != nil {
		return nil, err
	}
	wkPubBytes, err := codec.PackPublic(e.WkPub)
	if err != nil {
		return nil, err
	}
	wkPrivBytes, err := codec.PackPrivate(e.WkPriv)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer

	writeSection(&out, DelimPcrSelection, pcrBytes)
	writeSection(&out, DelimSkPublic, skPubBytes)
	writeSection(&out, DelimSkPrivate, skPrivBytes)

	out.WriteString(DelimCipherSuite)
	out.WriteByte('\n')
	out.WriteString(e.CipherName)
	out.WriteByte('\n')

	writeSection(&out, DelimWkPublic, wkPubBytes)
	writeSection(&out, DelimWkPrivate, wkPrivBytes)
	writeSection(&out, DelimEncData, e.EncPayload)

	out.WriteString(DelimFileEnd)

	return out.Bytes(), nil
}

func writeSection(out *bytes.Buffer, delim string, raw []byte) {
	out.WriteString(delim)
	out.WriteByte('\n')
	writeBase64Wrapped(out, raw)
}

func writeBase64Wrapped(out *bytes.Buffer, raw []byte) {
	encoded := base64.StdEncoding.EncodeToString(raw)
	for len(encoded) > base64LineWidth {
		out.WriteString(encoded[:base64LineWidth])
		out.WriteByte('\n')
		encoded = encoded[base64LineWidth:]
	}
	out.WriteString(encoded)
	out.WriteByte('\n')
}
