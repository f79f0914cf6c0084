package verification

import (
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxPeekBlobVersionedHashes(t *testing.T) {
	cfg := params.BeaconConfig()
	h1, h2 := [32]byte{1, 1}, [32]byte{1, 2}

	t.Run("non blob tx", func(t *testing.T) {
		hashes, err := TxPeekBlobVersionedHashes([]byte{0x02, 0xff})
		require.NoError(t, err)
		assert.Empty(t, hashes)
	})
	t.Run("empty tx", func(t *testing.T) {
		hashes, err := TxPeekBlobVersionedHashes(nil)
		require.NoError(t, err)
		assert.Empty(t, hashes)
	})
	t.Run("two hashes", func(t *testing.T) {
		hashes, err := TxPeekBlobVersionedHashes(util.BlobTransaction(h1, h2))
		require.NoError(t, err)
		assert.Equal(t, [][32]byte{h1, h2}, hashes)
	})
	t.Run("too short for offset", func(t *testing.T) {
		tx := make([]byte, cfg.OpaqueTxBlobVersionedHashesOffset+3)
		tx[0] = cfg.BlobTxType
		_, err := TxPeekBlobVersionedHashes(tx)
		require.ErrorIs(t, err, ErrMalformedTransaction)
		require.True(t, IsMalformed(err))
	})
	t.Run("offset past end", func(t *testing.T) {
		tx := util.BlobTransaction(h1)
		binary.LittleEndian.PutUint32(tx[cfg.OpaqueTxBlobVersionedHashesOffset:], 0xffffffff)
		_, err := TxPeekBlobVersionedHashes(tx)
		require.ErrorIs(t, err, ErrMalformedTransaction)
	})
	t.Run("partial hash", func(t *testing.T) {
		tx := append(util.BlobTransaction(h1), 0x00)
		_, err := TxPeekBlobVersionedHashes(tx)
		require.ErrorIs(t, err, ErrMalformedTransaction)
	})
}

func TestBlobVersionedHashes_AcrossTransactions(t *testing.T) {
	h1, h2, h3 := [32]byte{1, 1}, [32]byte{1, 2}, [32]byte{1, 3}
	txs := [][]byte{util.BlobTransaction(h1), {0x02, 0x00}, util.BlobTransaction(h2, h3)}
	hashes, err := BlobVersionedHashes(txs)
	require.NoError(t, err)
	assert.Equal(t, [][32]byte{h1, h2, h3}, hashes)

	bad := append(util.BlobTransaction(h1), 1, 2, 3)
	_, err = BlobVersionedHashes([][]byte{util.BlobTransaction(h1), bad})
	require.True(t, errors.Is(err, ErrMalformedTransaction))
	assert.Contains(t, err.Error(), "transaction 1")
}
