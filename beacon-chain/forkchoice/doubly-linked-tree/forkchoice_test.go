package doublylinkedtree

import (
	"fmt"
	"testing"

	"github.com/prysmaticlabs/blobnode/beacon-chain/forkchoice"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ forkchoice.ForkChoicer = (*ForkChoice)(nil)

func indexToHash(i uint64) [32]byte {
	var r [32]byte
	r[0] = byte(i)
	r[1] = byte(i >> 8)
	return r
}

// builds genesis(0) <- 1 <- 2 and 1 <- 3 (slot 2, competing fork)
func setupForks(t *testing.T) *ForkChoice {
	f := New()
	require.NoError(t, f.InsertNode(0, indexToHash(0), [32]byte{}))
	require.NoError(t, f.InsertNode(1, indexToHash(1), indexToHash(0)))
	require.NoError(t, f.InsertNode(2, indexToHash(2), indexToHash(1)))
	require.NoError(t, f.InsertNode(2, indexToHash(3), indexToHash(1)))
	return f
}

func TestForkChoice_InsertNode(t *testing.T) {
	f := setupForks(t)
	assert.Equal(t, 4, f.NodeCount())
	assert.True(t, f.HasNode(indexToHash(2)))
	assert.True(t, f.HasParent(indexToHash(1)))
	assert.False(t, f.HasParent(indexToHash(0)))

	// Duplicate insert is a no-op.
	require.NoError(t, f.InsertNode(1, indexToHash(1), indexToHash(0)))
	assert.Equal(t, 4, f.NodeCount())

	err := f.InsertNode(5, indexToHash(9), indexToHash(8))
	require.ErrorIs(t, err, errInvalidParentRoot)
	err = f.InsertNode(1, indexToHash(10), indexToHash(2))
	require.ErrorIs(t, err, errSlotNotAfterParent)
}

func TestForkChoice_Head(t *testing.T) {
	f := New()
	assert.Equal(t, primitives.Slot(0), f.Head().Slot)
	assert.Equal(t, [32]byte{}, f.Head().Root)

	f = setupForks(t)
	head := f.Head()
	// Slot 2 tie between roots 2 and 3, larger root wins.
	assert.Equal(t, primitives.Slot(2), head.Slot)
	assert.Equal(t, indexToHash(3), head.Root)
	assert.Equal(t, indexToHash(1), head.ParentRoot)

	require.NoError(t, f.InsertNode(3, indexToHash(4), indexToHash(2)))
	assert.Equal(t, indexToHash(4), f.Head().Root)
}

func TestForkChoice_HasBlockHex(t *testing.T) {
	f := setupForks(t)
	r := indexToHash(2)
	assert.True(t, f.HasBlockHex(fmt.Sprintf("%#x", r)))
	assert.False(t, f.HasBlockHex(fmt.Sprintf("%#x", indexToHash(77))))
	assert.False(t, f.HasBlockHex("0x1234"))
	assert.False(t, f.HasBlockHex("not hex"))
}

func TestForkChoice_Prune(t *testing.T) {
	f := setupForks(t)
	require.NoError(t, f.InsertNode(3, indexToHash(4), indexToHash(2)))

	require.ErrorIs(t, f.Prune(indexToHash(99)), errUnknownFinalizedRoot)

	require.NoError(t, f.Prune(indexToHash(2)))
	assert.Equal(t, 2, f.NodeCount())
	assert.False(t, f.HasNode(indexToHash(3)))
	assert.False(t, f.HasNode(indexToHash(0)))
	assert.Equal(t, indexToHash(4), f.Head().Root)

	// Pruning to the current root is a no-op.
	require.NoError(t, f.Prune(indexToHash(2)))
	assert.Equal(t, 2, f.NodeCount())
}

func TestForkChoice_PruneMovesHead(t *testing.T) {
	f := setupForks(t)
	require.Equal(t, indexToHash(3), f.Head().Root)
	require.NoError(t, f.Prune(indexToHash(2)))
	head := f.Head()
	assert.Equal(t, indexToHash(2), head.Root)
	assert.Equal(t, indexToHash(1), head.ParentRoot)
}
