package verification

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/blockchain/kzg"
	field_params "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

type verifyConfig struct {
	bisect bool
}

// Option tunes VerifyBlobSidecars.
type Option func(*verifyConfig)

// WithBisection re-checks each proof when the batch fails, so the error names the
// offending commitments via *kzg.ProofError.
func WithBisection() Option {
	return func(c *verifyConfig) { c.bisect = true }
}

// VerifyBlobSidecars checks that sidecars carry exactly the blobs committed to by a block at slot
// with root blockRoot. txs are the block's execution transactions and commitments its blob kzg
// commitments. Structural checks run before any cryptography and the first failure is returned.
func VerifyBlobSidecars(
	ctx context.Context,
	slot primitives.Slot,
	blockRoot [32]byte,
	txs [][]byte,
	commitments [][]byte,
	sidecars []*ethpb.BlobSidecar,
	opts ...Option,
) error {
	ctx, span := trace.StartSpan(ctx, "verification.VerifyBlobSidecars")
	defer span.End()
	span.AddAttributes(trace.Int64Attribute("slot", int64(slot)), trace.Int64Attribute("blobs", int64(len(sidecars))))

	cfg := &verifyConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if err := verifySidecarShape(slot, blockRoot, commitments, sidecars); err != nil {
		return err
	}
	if err := verifyVersionedHashes(txs, commitments); err != nil {
		return err
	}
	return verifyProofs(ctx, cfg, slot, blockRoot, sidecars)
}

func verifySidecarShape(slot primitives.Slot, blockRoot [32]byte, commitments [][]byte, sidecars []*ethpb.BlobSidecar) error {
	if len(commitments) != len(sidecars) {
		return errors.Wrapf(ErrBlobCountMismatch, "%d commitments, %d sidecars", len(commitments), len(sidecars))
	}
	for i, sc := range sidecars {
		if sc == nil {
			return errors.Wrapf(ErrSidecarMismatch, "sidecar %d is nil", i)
		}
		if err := verifySidecarLengths(sc); err != nil {
			return errors.Wrapf(err, "sidecar %d", i)
		}
		if sc.Index != uint64(i) {
			return errors.Wrapf(ErrSidecarMismatch, "sidecar %d has index %d", i, sc.Index)
		}
		if sc.Slot != slot {
			return errors.Wrapf(ErrSidecarMismatch, "sidecar %d has slot %d, block slot %d", i, sc.Slot, slot)
		}
		if !bytes.Equal(sc.BlockRoot, blockRoot[:]) {
			return errors.Wrapf(ErrSidecarMismatch, "sidecar %d has block root %#x, block root %#x", i, sc.BlockRoot, blockRoot)
		}
		if !bytes.Equal(sc.KzgCommitment, commitments[i]) {
			return errors.Wrapf(ErrCommitmentMismatch, "sidecar %d commitment %#x, block commitment %#x", i, sc.KzgCommitment, commitments[i])
		}
	}
	return nil
}

func verifySidecarLengths(sc *ethpb.BlobSidecar) error {
	if len(sc.Blob) != field_params.BlobLength {
		return errors.Wrapf(ErrSidecarMismatch, "blob is %d bytes", len(sc.Blob))
	}
	if len(sc.KzgCommitment) != field_params.KzgCommitmentLength {
		return errors.Wrapf(ErrSidecarMismatch, "commitment is %d bytes", len(sc.KzgCommitment))
	}
	if len(sc.KzgProof) != field_params.KzgProofLength {
		return errors.Wrapf(ErrSidecarMismatch, "proof is %d bytes", len(sc.KzgProof))
	}
	return nil
}

// VerifySidecarKZGProof checks a single sidecar's blob against its own commitment and proof.
// It says nothing about whether the commitment belongs to any block.
func VerifySidecarKZGProof(sc *ethpb.BlobSidecar) error {
	if sc == nil {
		return errors.Wrap(ErrSidecarMismatch, "nil sidecar")
	}
	if err := verifySidecarLengths(sc); err != nil {
		return errors.Wrapf(err, "sidecar %d", sc.Index)
	}
	blob := kzg.BytesToBlob(sc.Blob)
	err := kzg.VerifyBlobKZGProof(&blob, kzg.BytesToCommitment(sc.KzgCommitment), kzg.BytesToProof(sc.KzgProof))
	if err == nil {
		return nil
	}
	if errors.Is(err, kzg.ErrSetupNotLoaded) {
		return err
	}
	return errors.Wrapf(ErrSidecarProofInvalid, "sidecar %d: %v", sc.Index, err)
}

func verifyVersionedHashes(txs [][]byte, commitments [][]byte) error {
	hashes, err := BlobVersionedHashes(txs)
	if err != nil {
		return err
	}
	if len(hashes) != len(commitments) {
		return errors.Wrapf(ErrVersionedHashMismatch, "%d versioned hashes, %d commitments", len(hashes), len(commitments))
	}
	for i, c := range commitments {
		if want := kzg.KZGCommitmentToVersionedHash(c); hashes[i] != want {
			return errors.Wrapf(ErrVersionedHashMismatch, "hash %d is %#x, commitment gives %#x", i, hashes[i], want)
		}
	}
	return nil
}

func verifyProofs(ctx context.Context, cfg *verifyConfig, slot primitives.Slot, blockRoot [32]byte, sidecars []*ethpb.BlobSidecar) error {
	if len(sidecars) == 0 {
		return nil
	}
	blobs := make([]kzg.Blob, len(sidecars))
	cmts := make([]kzg.Commitment, len(sidecars))
	proofs := make([]kzg.Proof, len(sidecars))
	for i, sc := range sidecars {
		blobs[i] = kzg.BytesToBlob(sc.Blob)
		cmts[i] = kzg.BytesToCommitment(sc.KzgCommitment)
		proofs[i] = kzg.BytesToProof(sc.KzgProof)
	}

	verify := kzg.VerifyBlobKZGProofBatch
	if cfg.bisect {
		verify = kzg.BisectBlobKZGProofs
	}
	start := time.Now()
	done := make(chan error, 1)
	go func() {
		done <- verify(blobs, cmts, proofs)
	}()

	var err error
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err = <-done:
	}
	kzgBatchVerificationDuration.Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		if errors.Is(err, kzg.ErrSetupNotLoaded) {
			kzgBatchVerificationTotal.WithLabelValues("not_loaded").Inc()
			return err
		}
		kzgBatchVerificationTotal.WithLabelValues("invalid").Inc()
		log.WithError(err).WithFields(logrus.Fields{
			"slot":     slot,
			"root":     fmt.Sprintf("%#x", blockRoot),
			"blobsLen": len(sidecars),
		}).Debug("Blob proof batch failed")
		return &proofBatchError{cause: err}
	}
	kzgBatchVerificationTotal.WithLabelValues("valid").Inc()
	return nil
}

// proofBatchError is ErrProofBatchInvalid carrying the kzg error, so errors.As can still reach
// a *kzg.ProofError produced by bisection.
type proofBatchError struct {
	cause error
}

func (e *proofBatchError) Error() string {
	return ErrProofBatchInvalid.Error() + ": " + e.cause.Error()
}

func (e *proofBatchError) Is(target error) bool {
	return target == ErrProofBatchInvalid || target == ErrVerificationFailure
}

func (e *proofBatchError) Unwrap() error {
	return e.cause
}
