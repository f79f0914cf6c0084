package verification

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedInput is the class of errors where the inputs do not have the shape a
	// block and its sidecars must have. No cryptography was attempted.
	ErrMalformedInput = errors.New("malformed verification input")
	// ErrVerificationFailure is the class of errors where well formed inputs failed a check.
	ErrVerificationFailure = errors.New("blob verification failed")

	ErrBlobCountMismatch     = errors.Wrap(ErrMalformedInput, "commitment and sidecar counts differ")
	ErrSidecarMismatch       = errors.Wrap(ErrMalformedInput, "sidecar does not belong at this position")
	ErrMalformedTransaction  = errors.Wrap(ErrMalformedInput, "malformed blob transaction")
	ErrCommitmentMismatch    = errors.Wrap(ErrVerificationFailure, "sidecar commitment differs from block commitment")
	ErrVersionedHashMismatch = errors.Wrap(ErrVerificationFailure, "versioned hashes do not match commitments")
	ErrProofBatchInvalid     = errors.Wrap(ErrVerificationFailure, "kzg proof batch did not verify")
	ErrSidecarProofInvalid   = errors.Wrap(ErrVerificationFailure, "sidecar kzg proof did not verify")
)

// IsMalformed reports whether err says the inputs were structurally wrong.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsVerificationFailure reports whether err says well formed inputs failed verification.
func IsVerificationFailure(err error) bool {
	return errors.Is(err, ErrVerificationFailure)
}
