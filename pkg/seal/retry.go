/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package seal

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kmyth-go/ski/pkg/skierr"
)

// RetryPolicy bounds how hard the orchestrator retries a transient
// TpmBackend failure from the TpmSession before giving up. The zero value
// is a valid policy: it is treated as DefaultRetryPolicy.
type RetryPolicy struct {
	// InitialInterval is the first backoff delay.
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	// MaxElapsedTime bounds the total time spent retrying a single call.
	MaxElapsedTime time.Duration `mapstructure:"max_elapsed_time"`
	// MaxRetries bounds the number of retry attempts, independent of
	// MaxElapsedTime.
	MaxRetries uint64 `mapstructure:"max_retries"`
}

// DefaultRetryPolicy is used when an Orchestrator is constructed without an
// explicit RetryPolicy.
var DefaultRetryPolicy = RetryPolicy{
	InitialInterval: 50 * time.Millisecond,
	MaxElapsedTime:  2 * time.Second,
	MaxRetries:      3,
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	if p == (RetryPolicy{}) {
		p = DefaultRetryPolicy
	}
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.InitialInterval
	eb.MaxElapsedTime = p.MaxElapsedTime

	var b backoff.BackOff = eb
	if p.MaxRetries > 0 {
		b = backoff.WithMaxRetries(b, p.MaxRetries)
	}
	return backoff.WithContext(b, ctx)
}

// withRetry runs fn, retrying only on a skierr.Error of kind TpmBackend —
// the only kind that represents a transient TPM transport hiccup.
// PolicyFailure and IntegrityFailure are never transient and are returned
// immediately via backoff.Permanent.
func withRetry(ctx context.Context, policy RetryPolicy, fn func() error) error {
	op := func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if skierr.Is(err, skierr.TpmBackend) {
			return err
		}
		return backoff.Permanent(err)
	}
	return backoff.Retry(op, policy.backOff(ctx))
}
