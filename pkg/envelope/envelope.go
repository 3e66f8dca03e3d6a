/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package envelope implements the SKI envelope codec (C4): an ASCII-framed,
// base64-chunked archive carrying the five TPM blobs, the cipher-suite name,
// and the encrypted payload produced by a seal operation.
package envelope

import "github.com/kmyth-go/ski/pkg/tpmcodec"

// Section delimiters, each emitted on its own line, in the fixed order
// spec.md §6 mandates.
const (
	DelimPcrSelection = "-----PCR SELECTIONS-----"
	DelimSkPublic     = "-----STORAGE KEY PUBLIC-----"
	DelimSkPrivate    = "-----STORAGE KEY PRIVATE-----"
	DelimCipherSuite  = "-----CIPHER SUITE-----"
	DelimWkPublic     = "-----SYM KEY PUBLIC-----"
	DelimWkPrivate    = "-----SYM KEY PRIVATE-----"
	DelimEncData      = "-----ENC DATA-----"
	DelimFileEnd      = "-----FILE END-----"
)

// base64LineWidth is the column width base64 output is wrapped to. Not
// pinned by the original callers; 64 is assumed here as the widely used
// OpenSSL default (see spec.md §9 Open Questions).
const base64LineWidth = 64

// Envelope is the seven-field persisted SKI artifact (spec.md §3).
type Envelope struct {
	PcrList    tpmcodec.PcrSelection
	SkPub      tpmcodec.PublicBlob
	SkPriv     tpmcodec.PrivateBlob
	CipherName string
	WkPub      tpmcodec.PublicBlob
	WkPriv     tpmcodec.PrivateBlob
	EncPayload []byte
}
