package das

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	"github.com/prysmaticlabs/blobnode/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_BlockThenSidecars(t *testing.T) {
	c := NewCache(time.Minute)
	rb, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{1}, util.DenebSlot()+1, 2)
	key := KeyFromBlock(rb)

	require.NoError(t, c.StashBlock(rb, blocks.WithSource(blocks.BlockSourceGossip)))
	_, ok := c.Complete(key)
	assert.False(t, ok)

	stashed, err := c.StashSidecar(sidecars[1])
	require.NoError(t, err)
	assert.True(t, stashed)
	_, ok = c.Complete(key)
	assert.False(t, ok)

	stashed, err = c.StashSidecar(sidecars[0])
	require.NoError(t, err)
	assert.True(t, stashed)

	in, ok := c.Complete(key)
	require.True(t, ok)
	assert.Equal(t, blocks.BlockInputPostBlob, in.Type())
	got, err := in.Blobs()
	require.NoError(t, err)
	assert.Equal(t, sidecars, got)

	// Handed out once.
	_, ok = c.Complete(key)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_SidecarsBeforeBlock(t *testing.T) {
	c := NewCache(time.Minute)
	rb, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{2}, util.DenebSlot()+2, 1)

	stashed, err := c.StashSidecar(sidecars[0])
	require.NoError(t, err)
	require.True(t, stashed)
	_, ok := c.Complete(KeyFromSidecar(sidecars[0]))
	assert.False(t, ok)

	require.NoError(t, c.StashBlock(rb))
	in, ok := c.Complete(KeyFromBlock(rb))
	require.True(t, ok)
	assert.Equal(t, rb.Root(), in.Root())
}

func TestCache_FirstSidecarWins(t *testing.T) {
	c := NewCache(time.Minute)
	_, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{3}, util.DenebSlot()+3, 1)

	first := *sidecars[0]
	second := *sidecars[0]
	second.KzgProof = make([]byte, 48)

	stashed, err := c.StashSidecar(&first)
	require.NoError(t, err)
	assert.True(t, stashed)
	stashed, err = c.StashSidecar(&second)
	require.NoError(t, err)
	assert.False(t, stashed)
}

func TestCache_MismatchedSidecar(t *testing.T) {
	c := NewCache(time.Minute)
	rb, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{4}, util.DenebSlot()+4, 1)

	bogus := *sidecars[0]
	bogus.KzgCommitment = make([]byte, 48)

	// A disagreeing sidecar seen before the block is dropped when the block arrives.
	_, err := c.StashSidecar(&bogus)
	require.NoError(t, err)
	require.NoError(t, c.StashBlock(rb))
	_, ok := c.Complete(KeyFromBlock(rb))
	assert.False(t, ok)

	// Once the block is known, disagreeing sidecars are refused outright.
	_, err = c.StashSidecar(&bogus)
	assert.ErrorIs(t, err, ErrCommitmentMismatch)

	stashed, err := c.StashSidecar(sidecars[0])
	require.NoError(t, err)
	assert.True(t, stashed)
	_, ok = c.Complete(KeyFromBlock(rb))
	assert.True(t, ok)
}

func TestCache_IndexOutOfRange(t *testing.T) {
	c := NewCache(time.Minute)
	rb, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{5}, util.DenebSlot()+5, 2)

	far := *sidecars[0]
	far.Index = 6
	_, err := c.StashSidecar(&far)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, c.StashBlock(rb))
	beyond := *sidecars[1]
	beyond.Index = 3
	_, err = c.StashSidecar(&beyond)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = c.StashSidecar(nil)
	assert.ErrorIs(t, err, blocks.ErrNilObject)
}

func TestCache_PreBlobBlockCompletesImmediately(t *testing.T) {
	c := NewCache(time.Minute)
	rb := util.GenerateTestCapellaBlock(t, [32]byte{6}, 12)
	require.NoError(t, c.StashBlock(rb))
	in, ok := c.Complete(KeyFromBlock(rb))
	require.True(t, ok)
	assert.Equal(t, blocks.BlockInputPreBlob, in.Type())
}

func TestCache_Expiry(t *testing.T) {
	c := NewCache(20 * time.Millisecond)
	rb, _ := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{7}, util.DenebSlot()+7, 1)
	before := testutil.ToFloat64(pendingExpired)
	require.NoError(t, c.StashBlock(rb))

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(pendingExpired) > before
	}, 2*time.Second, 10*time.Millisecond)
	_, ok := c.Complete(KeyFromBlock(rb))
	assert.False(t, ok)
}

func TestCache_DeleteIsNotExpiry(t *testing.T) {
	c := NewCache(time.Minute)
	rb, _ := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{8}, util.DenebSlot()+8, 1)
	require.NoError(t, c.StashBlock(rb))
	before := testutil.ToFloat64(pendingExpired)
	c.Delete(KeyFromBlock(rb))
	assert.Equal(t, before, testutil.ToFloat64(pendingExpired))
	assert.Equal(t, 0, c.Len())
}
