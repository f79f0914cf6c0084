package eth

import (
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

// BlobSidecar carries one blob of a block together with its commitment and proof.
type BlobSidecar struct {
	BlockRoot       []byte `ssz-size:"32"`
	Index           uint64
	Slot            primitives.Slot
	BlockParentRoot []byte `ssz-size:"32"`
	ProposerIndex   primitives.ValidatorIndex
	Blob            []byte `ssz-size:"131072"`
	KzgCommitment   []byte `ssz-size:"48"`
	KzgProof        []byte `ssz-size:"48"`
}

type SignedBlobSidecar struct {
	Message   *BlobSidecar
	Signature []byte `ssz-size:"96"`
}

// BlobSidecarRecord is the persisted form of all sidecars of one block, keyed by BlockRoot.
type BlobSidecarRecord struct {
	BlockRoot       []byte `ssz-size:"32"`
	Slot            primitives.Slot
	BlockParentRoot []byte `ssz-size:"32"`
	ProposerIndex   primitives.ValidatorIndex
	Sidecars        []*BlobSidecar `ssz-max:"6"`
}
