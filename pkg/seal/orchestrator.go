/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package seal

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/kmyth-go/ski/pkg/cipher"
	"github.com/kmyth-go/ski/pkg/envelope"
	"github.com/kmyth-go/ski/pkg/secret"
	"github.com/kmyth-go/ski/pkg/skierr"
	"github.com/kmyth-go/ski/pkg/tpmcodec"
)

// Orchestrator composes the cipher registry, a TpmSession, and the envelope
// codec into the Seal/Unseal pipeline of spec.md §4.5. It owns no TPM
// resources itself — every handle it opens against the session is closed
// before the call returns, and every wrapping key it generates or recovers
// is destroyed before the call returns.
type Orchestrator struct {
	session TpmSession
	retry   RetryPolicy
	logger  log.Logger
}

// Option configures an Orchestrator at construction time.
type Option func(*Orchestrator)

// WithRetryPolicy overrides DefaultRetryPolicy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(o *Orchestrator) { o.retry = p }
}

// WithLogger attaches a structured logger for non-secret diagnostics.
// Operation IDs, step names, and error kinds may be logged; key material,
// plaintext, and TPM blobs never are. The default is log.NewNopLogger().
func WithLogger(logger log.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// NewOrchestrator builds an Orchestrator bound to session.
func NewOrchestrator(session TpmSession, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		session: session,
		retry:   DefaultRetryPolicy,
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Seal implements spec.md §4.5's seal sequence: generate a wrapping key from
// the TPM's RNG, wrap payload under it with suiteName, create a PCR-bound
// storage key, seal the wrapping key under that storage key, and assemble
// the resulting Envelope. The wrapping key is destroyed before Seal returns
// on every path, success or failure.
func (o *Orchestrator) Seal(ctx context.Context, payload []byte, pcrPolicy PcrPolicy, suiteName string) (envelope.Envelope, error) {
	opID := uuid.New().String()
	logger := log.With(o.logger, "op", "seal", "op_id", opID)

	suite, err := cipher.Lookup(suiteName)
	if err != nil {
		level.Warn(logger).Log("step", "lookup_suite", "err", err)
		return envelope.Envelope{}, err
	}

	keyLens := suite.KeyBytes()
	if len(keyLens) == 0 {
		return envelope.Envelope{}, skierr.New(skierr.UnknownCipher, "seal.orchestrator")
	}

	var wkRaw []byte
	err = withRetry(ctx, o.retry, func() error {
		b, rerr := o.session.Random(ctx, keyLens[0])
		if rerr != nil {
			return rerr
		}
		wkRaw = b
		return nil
	})
	if err != nil {
		level.Error(logger).Log("step", "random", "err", err)
		return envelope.Envelope{}, err
	}

	wk := secret.New(wkRaw)
	defer wk.Destroy()

	encPayload, err := suite.Wrap(wk.Bytes(), payload)
	if err != nil {
		level.Error(logger).Log("step", "wrap_payload", "err", err)
		return envelope.Envelope{}, err
	}

	var (
		skPub  tpmcodec.PublicBlob
		skPriv tpmcodec.PrivateBlob
		handle StorageKeyHandle
	)
	err = withRetry(ctx, o.retry, func() error {
		p, pr, h, cerr := o.session.CreateStorageKey(ctx, pcrPolicy)
		if cerr != nil {
			return cerr
		}
		skPub, skPriv, handle = p, pr, h
		return nil
	})
	if err != nil {
		level.Error(logger).Log("step", "create_storage_key", "err", err)
		return envelope.Envelope{}, err
	}
	defer func() {
		if cerr := handle.Close(ctx); cerr != nil {
			level.Warn(logger).Log("step", "close_storage_key", "err", cerr)
		}
	}()

	var wkPub tpmcodec.PublicBlob
	var wkPriv tpmcodec.PrivateBlob
	err = withRetry(ctx, o.retry, func() error {
		p, pr, serr := o.session.Seal(ctx, handle, wk.Bytes(), pcrPolicy)
		if serr != nil {
			return serr
		}
		wkPub, wkPriv = p, pr
		return nil
	})
	if err != nil {
		level.Error(logger).Log("step", "seal_wrapping_key", "err", err)
		return envelope.Envelope{}, err
	}

	level.Info(logger).Log("step", "done")

	return envelope.Envelope{
		PcrList:    tpmcodec.PcrSelection{Banks: pcrPolicy.Banks},
		SkPub:      skPub,
		SkPriv:     skPriv,
		CipherName: suiteName,
		WkPub:      wkPub,
		WkPriv:     wkPriv,
		EncPayload: encPayload,
	}, nil
}

// Unseal implements the mirror of Seal: recover the wrapping key from the
// TPM (which releases it only if the live PCR state still matches the
// sealed policy), then unwrap the payload under it. The recovered wrapping
// key is destroyed before Unseal returns on every path.
func (o *Orchestrator) Unseal(ctx context.Context, env envelope.Envelope) ([]byte, error) {
	opID := uuid.New().String()
	logger := log.With(o.logger, "op", "unseal", "op_id", opID)

	suite, err := cipher.Lookup(env.CipherName)
	if err != nil {
		level.Warn(logger).Log("step", "lookup_suite", "err", err)
		return nil, err
	}

	var wkRaw []byte
	err = withRetry(ctx, o.retry, func() error {
		b, uerr := o.session.Unseal(ctx, env.SkPub, env.SkPriv, env.WkPub, env.WkPriv)
		if uerr != nil {
			return uerr
		}
		wkRaw = b
		return nil
	})
	if err != nil {
		level.Error(logger).Log("step", "unseal_wrapping_key", "err", err)
		return nil, err
	}

	wk := secret.New(wkRaw)
	defer wk.Destroy()

	payload, err := suite.Unwrap(wk.Bytes(), env.EncPayload)
	if err != nil {
		level.Error(logger).Log("step", "unwrap_payload", "err", err)
		return nil, err
	}

	level.Info(logger).Log("step", "done")
	return payload, nil
}
