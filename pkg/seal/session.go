/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package seal implements the seal/unseal orchestrator (C5): the
// end-to-end pipeline that composes the cipher registry, the RFC 5649
// engine, the TPM marshaller, and the envelope codec against an abstract
// TpmSession capability.
package seal

import (
	"context"

	"github.com/kmyth-go/ski/pkg/tpmcodec"
)

// PcrPolicy names the PCR bank/index selection a storage key is bound to.
// It is the in-memory counterpart of tpmcodec.PcrSelection, kept separate
// because a policy is an input to TpmSession.CreateStorageKey and
// TpmSession.Seal (what the caller wants sealed against) while
// PcrSelection is the envelope's record of that selection, which
// Orchestrator.Seal fills from the policy's banks.
type PcrPolicy struct {
	Banks []tpmcodec.PcrBank
}

// TpmSession is the abstract TPM 2.0 capability this module consumes but
// does not design (spec.md §4.5): an ESAPI/TCTI-backed host library is
// expected to satisfy it. Sessions are not required to be thread-safe; the
// orchestrator never shares one across concurrent Seal/Unseal calls.
type TpmSession interface {
	// CreateStorageKey derives an SRK-bound storage key under pcrPolicy,
	// returning its public/private blobs and a handle scoped to this call.
	CreateStorageKey(ctx context.Context, pcrPolicy PcrPolicy) (skPub tpmcodec.PublicBlob, skPriv tpmcodec.PrivateBlob, handle StorageKeyHandle, err error)
	// Seal encrypts plaintextKey under the storage key referenced by
	// handle so that unsealing it again requires the same PCR state.
	Seal(ctx context.Context, handle StorageKeyHandle, plaintextKey []byte, pcrPolicy PcrPolicy) (wkPub tpmcodec.PublicBlob, wkPriv tpmcodec.PrivateBlob, err error)
	// Unseal loads the storage-key hierarchy and releases the wrapped key
	// only if the current PCR state still matches the sealed policy.
	Unseal(ctx context.Context, skPub tpmcodec.PublicBlob, skPriv tpmcodec.PrivateBlob, wkPub tpmcodec.PublicBlob, wkPriv tpmcodec.PrivateBlob) (plaintextKey []byte, err error)
	// Random returns n cryptographically secure random bytes from the TPM.
	Random(ctx context.Context, n int) ([]byte, error)
}

// StorageKeyHandle scopes a TPM handle to the orchestrator call that
// created it; TpmSession implementations are responsible for releasing
// the underlying TPM resource on every exit path.
type StorageKeyHandle interface {
	// Close releases the TPM handle. Close must be idempotent.
	Close(ctx context.Context) error
}

// PeerTransport is the abstract ECDH remote-key-agreement capability named
// in spec.md §1/§9 but explicitly out of scope to design: this module
// declares the shape so other packages can depend on the abstraction, and
// never ships a concrete implementation.
type PeerTransport interface {
	// ExchangeKey performs whatever peer protocol is needed to agree a
	// shared secret with a remote party, returning it for the caller to
	// feed into its own key-derivation step.
	ExchangeKey(ctx context.Context, peerID string) ([]byte, error)
}
