package blocks_test

import (
	"testing"

	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	"github.com/prysmaticlabs/blobnode/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewROBlock(t *testing.T) {
	sb, err := blocks.NewSignedBeaconBlock(util.NewBeaconBlockDeneb())
	require.NoError(t, err)
	want, err := sb.Block().HashTreeRoot()
	require.NoError(t, err)

	rb, err := blocks.NewROBlock(sb)
	require.NoError(t, err)
	assert.Equal(t, want, rb.Root())

	rb, err = blocks.NewROBlockWithRoot(sb, [32]byte{'x'})
	require.NoError(t, err)
	assert.Equal(t, [32]byte{'x'}, rb.Root())

	_, err = blocks.NewROBlock(nil)
	require.ErrorIs(t, err, blocks.ErrNilSignedBeaconBlock)
	_, err = blocks.NewROBlockWithRoot(nil, [32]byte{'x'})
	require.ErrorIs(t, err, blocks.ErrNilSignedBeaconBlock)
}
