package verification

import (
	"encoding/binary"

	"github.com/pkg/errors"
	field_params "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/config/params"
)

// TxPeekBlobVersionedHashes returns the versioned hashes referenced by an opaque transaction
// without decoding it. Transactions that are not blob transactions reference none.
func TxPeekBlobVersionedHashes(tx []byte) ([][32]byte, error) {
	cfg := params.BeaconConfig()
	if len(tx) == 0 || tx[0] != cfg.BlobTxType {
		return nil, nil
	}
	offsetPos := cfg.OpaqueTxBlobVersionedHashesOffset
	if len(tx) < offsetPos+4 {
		return nil, errors.Wrapf(ErrMalformedTransaction, "length %d too short for hashes offset at %d", len(tx), offsetPos)
	}
	rel := uint64(binary.LittleEndian.Uint32(tx[offsetPos : offsetPos+4]))
	start := uint64(cfg.OpaqueTxMessageOffset) + rel
	if start > uint64(len(tx)) {
		return nil, errors.Wrapf(ErrMalformedTransaction, "hashes start %d beyond length %d", start, len(tx))
	}
	rest := tx[start:]
	if len(rest)%field_params.VersionedHashLength != 0 {
		return nil, errors.Wrapf(ErrMalformedTransaction, "%d trailing bytes are not a list of hashes", len(rest))
	}
	hashes := make([][32]byte, len(rest)/field_params.VersionedHashLength)
	for i := range hashes {
		copy(hashes[i][:], rest[i*field_params.VersionedHashLength:])
	}
	return hashes, nil
}

// BlobVersionedHashes collects the versioned hashes of every blob transaction in txs, in order.
func BlobVersionedHashes(txs [][]byte) ([][32]byte, error) {
	var all [][32]byte
	for i, tx := range txs {
		h, err := TxPeekBlobVersionedHashes(tx)
		if err != nil {
			return nil, errors.Wrapf(err, "transaction %d", i)
		}
		all = append(all, h...)
	}
	return all, nil
}
