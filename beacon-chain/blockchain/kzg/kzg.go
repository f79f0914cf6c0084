package kzg

import (
	"fmt"
	"strings"

	GoKZG "github.com/crate-crypto/go-kzg-4844"
	"github.com/pkg/errors"
	field_params "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/crypto/hash"
)

// Blob is the 4096 field element payload a commitment is made over.
type Blob [field_params.BlobLength]byte

// Commitment is a compressed G1 point committing to a Blob.
type Commitment [field_params.KzgCommitmentLength]byte

// Proof is a compressed G1 point proving a Blob matches its Commitment.
type Proof [field_params.KzgProofLength]byte

// ErrKzgProofFailed is the error ProofError unwraps to.
var ErrKzgProofFailed = errors.New("failed to prove commitment to blob data")

// BlobToKZGCommitment computes the commitment to blob.
func BlobToKZGCommitment(blob *Blob) (Commitment, error) {
	c, err := loadedContext()
	if err != nil {
		return Commitment{}, err
	}
	cmt, err := c.BlobToKZGCommitment((*GoKZG.Blob)(blob), 0)
	if err != nil {
		return Commitment{}, err
	}
	return Commitment(cmt), nil
}

// ComputeBlobKZGProof computes the proof that blob matches commitment.
func ComputeBlobKZGProof(blob *Blob, commitment Commitment) (Proof, error) {
	c, err := loadedContext()
	if err != nil {
		return Proof{}, err
	}
	proof, err := c.ComputeBlobKZGProof((*GoKZG.Blob)(blob), GoKZG.KZGCommitment(commitment), 0)
	if err != nil {
		return Proof{}, err
	}
	return Proof(proof), nil
}

// VerifyBlobKZGProof checks a single blob against its commitment and proof.
func VerifyBlobKZGProof(blob *Blob, commitment Commitment, proof Proof) error {
	c, err := loadedContext()
	if err != nil {
		return err
	}
	return c.VerifyBlobKZGProof((*GoKZG.Blob)(blob), GoKZG.KZGCommitment(commitment), GoKZG.KZGProof(proof))
}

// VerifyBlobKZGProofBatch checks all blobs against their commitments and proofs in one pairing check.
// The three slices are index aligned.
func VerifyBlobKZGProofBatch(blobs []Blob, commitments []Commitment, proofs []Proof) error {
	c, err := loadedContext()
	if err != nil {
		return err
	}
	if len(blobs) != len(commitments) || len(blobs) != len(proofs) {
		return errors.Errorf("batch length mismatch: %d blobs, %d commitments, %d proofs", len(blobs), len(commitments), len(proofs))
	}
	if len(blobs) == 0 {
		return nil
	}
	gBlobs := make([]GoKZG.Blob, len(blobs))
	gCmts := make([]GoKZG.KZGCommitment, len(blobs))
	gProofs := make([]GoKZG.KZGProof, len(blobs))
	for i := range blobs {
		gBlobs[i] = GoKZG.Blob(blobs[i])
		gCmts[i] = GoKZG.KZGCommitment(commitments[i])
		gProofs[i] = GoKZG.KZGProof(proofs[i])
	}
	return c.VerifyBlobKZGProofBatch(gBlobs, gCmts, gProofs)
}

// FailedProof names a blob that did not verify against its commitment.
type FailedProof struct {
	Index      int
	Commitment Commitment
}

// ProofError lists the blobs of a batch that failed individual verification.
type ProofError struct {
	failed []FailedProof
}

// NewProofError builds a ProofError from the failing entries.
func NewProofError(failed []FailedProof) *ProofError {
	return &ProofError{failed: failed}
}

func (e *ProofError) Error() string {
	cmts := make([]string, len(e.failed))
	for i := range e.failed {
		cmts[i] = fmt.Sprintf("%d:%#x", e.failed[i].Index, e.failed[i].Commitment)
	}
	return fmt.Sprintf("%s: bad commitments=%s", ErrKzgProofFailed.Error(), strings.Join(cmts, ","))
}

// Failed returns the failing (index, commitment) pairs in index order.
func (e *ProofError) Failed() []FailedProof {
	return e.failed
}

func (e *ProofError) Unwrap() error {
	return ErrKzgProofFailed
}

// BisectBlobKZGProofs verifies the batch, and if it fails checks each blob on its own.
// A failure is reported as a *ProofError naming every blob that did not verify.
func BisectBlobKZGProofs(blobs []Blob, commitments []Commitment, proofs []Proof) error {
	batchErr := VerifyBlobKZGProofBatch(blobs, commitments, proofs)
	if batchErr == nil {
		return nil
	}
	if errors.Is(batchErr, ErrSetupNotLoaded) || len(blobs) != len(commitments) || len(blobs) != len(proofs) {
		return batchErr
	}
	failed := make([]FailedProof, 0, len(blobs))
	for i := range blobs {
		if err := VerifyBlobKZGProof(&blobs[i], commitments[i], proofs[i]); err != nil {
			failed = append(failed, FailedProof{Index: i, Commitment: commitments[i]})
		}
	}
	if len(failed) == 0 {
		// Every element verifies alone, so the batch failure has no element to blame.
		return errors.Wrap(batchErr, "batch failed but no single proof did")
	}
	return NewProofError(failed)
}

// KZGCommitmentToVersionedHash derives the versioned hash a blob transaction uses to reference commitment.
func KZGCommitmentToVersionedHash(commitment []byte) [32]byte {
	h := hash.Hash(commitment)
	h[0] = params.BeaconConfig().VersionedHashVersionKzg
	return h
}

// BytesToBlob copies b into a Blob, truncating or zero padding as needed.
func BytesToBlob(b []byte) (ret Blob) {
	copy(ret[:], b)
	return
}

// BytesToCommitment copies b into a Commitment.
func BytesToCommitment(b []byte) (ret Commitment) {
	copy(ret[:], b)
	return
}

// BytesToProof copies b into a Proof.
func BytesToProof(b []byte) (ret Proof) {
	copy(ret[:], b)
	return
}
