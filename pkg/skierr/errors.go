/*
Copyright Kmyth-Go Authors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package skierr defines the flat, exhaustive error taxonomy shared by every
// component of the sealed-key envelope core. No component returns a bare
// error from the standard library or a third-party crypto/TPM dependency
// without first classifying it into one of these kinds.
package skierr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is one of the ten error categories the envelope core can surface.
// Kind values are exhaustive and flat: no kind wraps another kind.
type Kind int

const (
	// InvalidArgument is a null/empty required input or an out-of-range size.
	InvalidArgument Kind = iota
	// UnknownCipher is a suite name absent from the registry.
	UnknownCipher
	// InvalidKeySize is a wrap/unwrap key outside the suite's allowed sizes.
	InvalidKeySize
	// InvalidInputSize is a plaintext/ciphertext outside the suite's bounds or misaligned.
	InvalidInputSize
	// IntegrityFailure is an unwrap authentication/IV check failure.
	IntegrityFailure
	// MalformedEnvelope covers delimiter, base64, and TPM unmarshal failures.
	MalformedEnvelope
	// PolicyFailure is a TPM refusal to release sealed material.
	PolicyFailure
	// CryptoBackend is an unexpected error from an underlying crypto library.
	CryptoBackend
	// TpmBackend is an unexpected error from an underlying TPM library.
	TpmBackend
	// ResourceExhausted is an allocation failure.
	ResourceExhausted
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case UnknownCipher:
		return "UnknownCipher"
	case InvalidKeySize:
		return "InvalidKeySize"
	case InvalidInputSize:
		return "InvalidInputSize"
	case IntegrityFailure:
		return "IntegrityFailure"
	case MalformedEnvelope:
		return "MalformedEnvelope"
	case PolicyFailure:
		return "PolicyFailure"
	case CryptoBackend:
		return "CryptoBackend"
	case TpmBackend:
		return "TpmBackend"
	case ResourceExhausted:
		return "ResourceExhausted"
	default:
		return "Unknown"
	}
}

// Error is the single error type every public operation in this module
// returns. It never carries secret material: step names the failing stage
// for diagnostics only, and cause (when present) must itself already be
// free of key/plaintext/ciphertext bytes.
type Error struct {
	kind  Kind
	step  string
	cause error
}

// New builds an Error with no wrapped cause.
func New(kind Kind, step string) *Error {
	return &Error{kind: kind, step: step}
}

// Wrap builds an Error that attributes cause to a failing step, recording
// cause via github.com/pkg/errors so callers can still recover a stack trace
// with errors.Cause / errors.Unwrap.
func Wrap(kind Kind, step string, cause error) *Error {
	return &Error{kind: kind, step: step, cause: errors.WithStack(cause)}
}

// Kind reports the error's category.
func (e *Error) Kind() Kind {
	return e.kind
}

// Step reports the failing step name, e.g. "envelope.parse" or "cipher.wrap".
func (e *Error) Step() string {
	return e.step
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("ski: %s: %s: %v", e.step, e.kind, e.cause)
	}
	return fmt.Sprintf("ski: %s: %s", e.step, e.kind)
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, skierr.New(skierr.IntegrityFailure, "")) — only the
// Kind is compared, not the step or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind
}

// Is reports whether err is a skierr.Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.kind == kind
}
