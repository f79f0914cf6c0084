package blocks_test

import (
	"testing"

	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/blobnode/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denebWithCommitments(t *testing.T, n int) blocks.ROBlock {
	pb := util.NewBeaconBlockDeneb()
	for i := 0; i < n; i++ {
		c := make([]byte, 48)
		c[0] = byte(i)
		pb.Block.Body.BlobKzgCommitments = append(pb.Block.Body.BlobKzgCommitments, c)
	}
	sb, err := blocks.NewSignedBeaconBlock(pb)
	require.NoError(t, err)
	rb, err := blocks.NewROBlock(sb)
	require.NoError(t, err)
	return rb
}

func sidecarsWithIndices(idx ...uint64) []*ethpb.BlobSidecar {
	scs := make([]*ethpb.BlobSidecar, len(idx))
	for i, x := range idx {
		scs[i] = &ethpb.BlobSidecar{Index: x}
	}
	return scs
}

func TestNewPostBlobBlockInput(t *testing.T) {
	rb := denebWithCommitments(t, 2)

	in, err := blocks.NewPostBlobBlockInput(rb, sidecarsWithIndices(0, 1))
	require.NoError(t, err)
	assert.Equal(t, blocks.BlockInputPostBlob, in.Type())
	assert.Equal(t, rb.Root(), in.Root())
	assert.Equal(t, blocks.BlockSourceGossip, in.Source())
	blobs, err := in.Blobs()
	require.NoError(t, err)
	assert.Len(t, blobs, 2)

	_, err = blocks.NewPostBlobBlockInput(rb, sidecarsWithIndices(0))
	require.ErrorIs(t, err, blocks.ErrBlobInputMismatch)
	_, err = blocks.NewPostBlobBlockInput(rb, sidecarsWithIndices(1, 0))
	require.ErrorIs(t, err, blocks.ErrBlobInputMismatch)
	_, err = blocks.NewPostBlobBlockInput(rb, []*ethpb.BlobSidecar{{Index: 0}, nil})
	require.ErrorIs(t, err, blocks.ErrNilObject)

	_, err = blocks.NewPostBlobBlockInput(util.GenerateTestCapellaBlock(t, [32]byte{}, 1), nil)
	require.Error(t, err)
}

func TestNewPreBlobBlockInput(t *testing.T) {
	rb := util.GenerateTestCapellaBlock(t, [32]byte{'a'}, 5)
	in, err := blocks.NewPreBlobBlockInput(rb, blocks.WithSource(blocks.BlockSourceRangeSync))
	require.NoError(t, err)
	assert.Equal(t, blocks.BlockInputPreBlob, in.Type())
	assert.Equal(t, blocks.BlockSourceRangeSync, in.Source())
	assert.Nil(t, in.SerializedData())
	_, err = in.Blobs()
	require.Error(t, err)

	_, err = blocks.NewPreBlobBlockInput(denebWithCommitments(t, 0))
	require.ErrorIs(t, err, blocks.ErrUnsupportedVersion)
}

func TestNewBlockInput_PicksVariant(t *testing.T) {
	in, err := blocks.NewBlockInput(util.GenerateTestCapellaBlock(t, [32]byte{}, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, blocks.BlockInputPreBlob, in.Type())

	in, err = blocks.NewBlockInput(denebWithCommitments(t, 1), sidecarsWithIndices(0))
	require.NoError(t, err)
	assert.Equal(t, blocks.BlockInputPostBlob, in.Type())
}

func TestWithSerializedBytes(t *testing.T) {
	orig, err := blocks.NewPostBlobBlockInput(denebWithCommitments(t, 1), sidecarsWithIndices(0), blocks.WithSerializedData([]byte{1}))
	require.NoError(t, err)

	updated := orig.WithSerializedBytes([]byte{2, 3})
	assert.Equal(t, []byte{1}, orig.SerializedData())
	assert.Equal(t, []byte{2, 3}, updated.SerializedData())
	assert.Equal(t, orig.Root(), updated.Root())
	assert.Equal(t, blocks.BlockInputPostBlob, updated.Type())

	blobs, err := updated.Blobs()
	require.NoError(t, err)
	origBlobs, err := orig.Blobs()
	require.NoError(t, err)
	assert.Equal(t, origBlobs, blobs)
}

func TestBlockSourceString(t *testing.T) {
	assert.Equal(t, "by_root", blocks.BlockSourceByRoot.String())
	assert.Equal(t, "api", blocks.BlockSourceAPI.String())
	assert.Equal(t, "post_blob", blocks.BlockInputPostBlob.String())
}
