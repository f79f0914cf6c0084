package blocks_test

import (
	"testing"

	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/blobnode/runtime/version"
	"github.com/prysmaticlabs/blobnode/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignedBeaconBlock(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		_, err := blocks.NewSignedBeaconBlock(nil)
		require.ErrorIs(t, err, blocks.ErrNilObject)
	})
	t.Run("unsupported", func(t *testing.T) {
		_, err := blocks.NewSignedBeaconBlock(&ethpb.BeaconBlockHeader{})
		require.ErrorIs(t, err, blocks.ErrUnsupportedSignedBeaconBlock)
	})
	t.Run("nil block", func(t *testing.T) {
		_, err := blocks.NewSignedBeaconBlock(&ethpb.SignedBeaconBlockDeneb{})
		require.ErrorIs(t, err, blocks.ErrNilBeaconBlock)
	})
	t.Run("capella", func(t *testing.T) {
		pb := util.NewBeaconBlockCapella()
		pb.Block.Slot = 7
		b, err := blocks.NewSignedBeaconBlock(pb)
		require.NoError(t, err)
		assert.Equal(t, version.Capella, b.Version())
		assert.Equal(t, pb.Block.Slot, b.Block().Slot())
		_, err = b.Block().Body().BlobKzgCommitments()
		require.Error(t, err)
	})
	t.Run("deneb", func(t *testing.T) {
		pb := util.NewBeaconBlockDeneb()
		pb.Block.Body.BlobKzgCommitments = [][]byte{make([]byte, 48)}
		b, err := blocks.NewSignedBeaconBlock(pb)
		require.NoError(t, err)
		assert.Equal(t, version.Deneb, b.Version())
		cmts, err := b.Block().Body().BlobKzgCommitments()
		require.NoError(t, err)
		assert.Len(t, cmts, 1)
	})
}

func TestUnmarshalSignedBeaconBlock(t *testing.T) {
	pb := util.NewBeaconBlockDeneb()
	pb.Block.Slot = 33
	pb.Block.Body.ExecutionPayload.Transactions = [][]byte{{1, 2, 3}}
	b, err := blocks.NewSignedBeaconBlock(pb)
	require.NoError(t, err)
	enc, err := b.MarshalSSZ()
	require.NoError(t, err)
	assert.Equal(t, len(enc), b.SizeSSZ())

	got, err := blocks.UnmarshalSignedBeaconBlock(version.Deneb, enc)
	require.NoError(t, err)
	wantRoot, err := b.Block().HashTreeRoot()
	require.NoError(t, err)
	gotRoot, err := got.Block().HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
	assert.Equal(t, [][]byte{{1, 2, 3}}, got.Block().Body().Transactions())

	_, err = blocks.UnmarshalSignedBeaconBlock(version.Capella, enc)
	require.Error(t, err)
	_, err = blocks.UnmarshalSignedBeaconBlock(version.Phase0, enc)
	require.ErrorIs(t, err, blocks.ErrUnsupportedVersion)
	_, err = blocks.UnmarshalSignedBeaconBlock(version.Deneb, enc[:len(enc)-1])
	require.Error(t, err)
}

func TestBeaconBlockIsNil(t *testing.T) {
	require.ErrorIs(t, blocks.BeaconBlockIsNil(nil), blocks.ErrNilSignedBeaconBlock)
	b, err := blocks.NewSignedBeaconBlock(util.NewBeaconBlockCapella())
	require.NoError(t, err)
	require.NoError(t, blocks.BeaconBlockIsNil(b))
}
