package eth

import (
	ssz "github.com/ferranbt/fastssz"
)

// MarshalSSZ ssz marshals the ExecutionPayload object
func (e *ExecutionPayload) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(e)
}

// MarshalSSZTo ssz marshals the ExecutionPayload object to a target array
func (e *ExecutionPayload) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	offset := int(264)

	if dst, err = appendFixed(dst, e.ParentHash, 32); err != nil {
		return
	}
	if dst, err = appendFixed(dst, e.FeeRecipient, 20); err != nil {
		return
	}
	if dst, err = appendFixed(dst, e.StateRoot, 32); err != nil {
		return
	}
	if dst, err = appendFixed(dst, e.ReceiptsRoot, 32); err != nil {
		return
	}
	if dst, err = appendFixed(dst, e.PrevRandao, 32); err != nil {
		return
	}
	dst = ssz.MarshalUint64(dst, e.BlockNumber)
	dst = ssz.MarshalUint64(dst, e.GasLimit)
	dst = ssz.MarshalUint64(dst, e.GasUsed)
	dst = ssz.MarshalUint64(dst, e.Timestamp)
	if dst, err = appendFixed(dst, e.BaseFeePerGas, 32); err != nil {
		return
	}
	if dst, err = appendFixed(dst, e.BlockHash, 32); err != nil {
		return
	}

	// Offset (11) 'Transactions'
	dst = ssz.WriteOffset(dst, offset)

	dst = ssz.MarshalUint64(dst, e.BlobGasUsed)
	dst = ssz.MarshalUint64(dst, e.ExcessBlobGas)

	// Field (11) 'Transactions'
	return marshalByteLists(dst, e.Transactions, 1048576, 1073741824)
}

// UnmarshalSSZ ssz unmarshals the ExecutionPayload object
func (e *ExecutionPayload) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size < 264 {
		return ssz.ErrSize
	}

	e.ParentHash = append(e.ParentHash[:0], buf[0:32]...)
	e.FeeRecipient = append(e.FeeRecipient[:0], buf[32:52]...)
	e.StateRoot = append(e.StateRoot[:0], buf[52:84]...)
	e.ReceiptsRoot = append(e.ReceiptsRoot[:0], buf[84:116]...)
	e.PrevRandao = append(e.PrevRandao[:0], buf[116:148]...)
	e.BlockNumber = ssz.UnmarshallUint64(buf[148:156])
	e.GasLimit = ssz.UnmarshallUint64(buf[156:164])
	e.GasUsed = ssz.UnmarshallUint64(buf[164:172])
	e.Timestamp = ssz.UnmarshallUint64(buf[172:180])
	e.BaseFeePerGas = append(e.BaseFeePerGas[:0], buf[180:212]...)
	e.BlockHash = append(e.BlockHash[:0], buf[212:244]...)

	// Offset (11) 'Transactions'
	o11 := ssz.ReadOffset(buf[244:248])
	if o11 != 264 || o11 > size {
		return ssz.ErrOffset
	}

	e.BlobGasUsed = ssz.UnmarshallUint64(buf[248:256])
	e.ExcessBlobGas = ssz.UnmarshallUint64(buf[256:264])

	// Field (11) 'Transactions'
	txs, err := unmarshalByteLists(buf[o11:], 1048576, 1073741824)
	if err != nil {
		return err
	}
	e.Transactions = txs
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the ExecutionPayload object
func (e *ExecutionPayload) SizeSSZ() (size int) {
	size = 264
	size += sizeByteLists(e.Transactions)
	return
}

// HashTreeRoot ssz hashes the ExecutionPayload object
func (e *ExecutionPayload) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(e)
}

// HashTreeRootWith ssz hashes the ExecutionPayload object with a hasher
func (e *ExecutionPayload) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()

	if len(e.ParentHash) != 32 || len(e.FeeRecipient) != 20 || len(e.StateRoot) != 32 ||
		len(e.ReceiptsRoot) != 32 || len(e.PrevRandao) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(e.ParentHash)
	hh.PutBytes(e.FeeRecipient)
	hh.PutBytes(e.StateRoot)
	hh.PutBytes(e.ReceiptsRoot)
	hh.PutBytes(e.PrevRandao)
	hh.PutUint64(e.BlockNumber)
	hh.PutUint64(e.GasLimit)
	hh.PutUint64(e.GasUsed)
	hh.PutUint64(e.Timestamp)
	if len(e.BaseFeePerGas) != 32 || len(e.BlockHash) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(e.BaseFeePerGas)
	hh.PutBytes(e.BlockHash)
	if err := hashByteLists(hh, e.Transactions, 1048576, 1073741824); err != nil {
		return err
	}
	hh.PutUint64(e.BlobGasUsed)
	hh.PutUint64(e.ExcessBlobGas)

	hh.Merkleize(indx)
	return nil
}
