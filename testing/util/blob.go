package util

import (
	"encoding/binary"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/prysmaticlabs/blobnode/beacon-chain/blockchain/kzg"
	field_params "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/stretchr/testify/require"
)

// GenerateTestBlob writes the big-endian u32 seed+i at the start of field element i.
func GenerateTestBlob(seed uint32) *kzg.Blob {
	b := &kzg.Blob{}
	for i := 0; i < field_params.FieldElementsPerBlob; i++ {
		binary.BigEndian.PutUint32(b[i*field_params.BytesPerFieldElement:], seed+uint32(i))
	}
	return b
}

// GetRandBlob returns a blob whose field elements are the canonical encodings of seed*4096+i.
func GetRandBlob(seed uint64) *kzg.Blob {
	b := &kzg.Blob{}
	var e fr.Element
	for i := 0; i < field_params.FieldElementsPerBlob; i++ {
		e.SetUint64(seed*field_params.FieldElementsPerBlob + uint64(i))
		fe := e.Bytes()
		copy(b[i*field_params.BytesPerFieldElement:], fe[:])
	}
	return b
}

// BlobTransaction builds an opaque blob transaction referencing hashes. Only the type byte and
// the versioned hash section are populated.
func BlobTransaction(hashes ...[32]byte) []byte {
	cfg := params.BeaconConfig()
	hashesOffset := cfg.OpaqueTxBlobVersionedHashesOffset + 64
	tx := make([]byte, hashesOffset+len(hashes)*32)
	tx[0] = cfg.BlobTxType
	binary.LittleEndian.PutUint32(tx[cfg.OpaqueTxBlobVersionedHashesOffset:], uint32(hashesOffset-cfg.OpaqueTxMessageOffset))
	for i, h := range hashes {
		copy(tx[hashesOffset+i*32:], h[:])
	}
	return tx
}

// BlobFixture is a blob with its commitment and proof.
type BlobFixture struct {
	Blob       *kzg.Blob
	Commitment kzg.Commitment
	Proof      kzg.Proof
}

// GenerateBlobFixtures builds n blobs with valid commitments and proofs. The kzg setup must be loaded.
func GenerateBlobFixtures(t testing.TB, seed uint64, n int) []BlobFixture {
	fixtures := make([]BlobFixture, n)
	for i := range fixtures {
		b := GetRandBlob(seed + uint64(i))
		cmt, err := kzg.BlobToKZGCommitment(b)
		require.NoError(t, err)
		proof, err := kzg.ComputeBlobKZGProof(b, cmt)
		require.NoError(t, err)
		fixtures[i] = BlobFixture{Blob: b, Commitment: cmt, Proof: proof}
	}
	return fixtures
}

// GenerateTestDenebBlockWithSidecars builds a deneb block carrying n blobs, one blob transaction
// referencing all of them, and the matching sidecars. It loads the kzg setup if needed.
func GenerateTestDenebBlockWithSidecars(t testing.TB, parent [32]byte, slot primitives.Slot, n int) (blocks.ROBlock, []*ethpb.BlobSidecar) {
	require.NoError(t, kzg.Start())
	fixtures := GenerateBlobFixtures(t, uint64(slot)*field_params.MaxBlobsPerBlock, n)

	pb := NewBeaconBlockDeneb()
	pb.Block.Slot = slot
	pb.Block.ParentRoot = parent[:]
	pb.Block.ProposerIndex = primitives.ValidatorIndex(slot % 64)
	pb.Block.Body.ExecutionPayload.BlockNumber = uint64(slot)
	cmts := make([][]byte, n)
	hashes := make([][32]byte, n)
	for i, f := range fixtures {
		cmts[i] = append([]byte{}, f.Commitment[:]...)
		hashes[i] = kzg.KZGCommitmentToVersionedHash(cmts[i])
	}
	pb.Block.Body.BlobKzgCommitments = cmts
	if n > 0 {
		pb.Block.Body.ExecutionPayload.Transactions = [][]byte{BlobTransaction(hashes...)}
	}

	sb, err := blocks.NewSignedBeaconBlock(pb)
	require.NoError(t, err)
	rb, err := blocks.NewROBlock(sb)
	require.NoError(t, err)

	root := rb.Root()
	sidecars := make([]*ethpb.BlobSidecar, n)
	for i, f := range fixtures {
		sidecars[i] = &ethpb.BlobSidecar{
			BlockRoot:       root[:],
			Index:           uint64(i),
			Slot:            slot,
			BlockParentRoot: parent[:],
			ProposerIndex:   pb.Block.ProposerIndex,
			Blob:            append([]byte{}, f.Blob[:]...),
			KzgCommitment:   cmts[i],
			KzgProof:        append([]byte{}, f.Proof[:]...),
		}
	}
	return rb, sidecars
}

// GenerateTestBlockInput builds a post-blob BlockInput with n blobs.
func GenerateTestBlockInput(t testing.TB, parent [32]byte, slot primitives.Slot, n int, opts ...blocks.BlockInputOption) blocks.PostBlobBlockInput {
	rb, sidecars := GenerateTestDenebBlockWithSidecars(t, parent, slot, n)
	in, err := blocks.NewPostBlobBlockInput(rb, sidecars, opts...)
	require.NoError(t, err)
	return in
}
