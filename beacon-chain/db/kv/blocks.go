package kv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	"github.com/prysmaticlabs/blobnode/consensus-types/interfaces"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	"github.com/prysmaticlabs/blobnode/encoding/bytesutil"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

// Block retrieval by root.
func (s *Store) Block(ctx context.Context, blockRoot [32]byte) (interfaces.ReadOnlySignedBeaconBlock, error) {
	ctx, span := trace.StartSpan(ctx, "BeaconDB.Block")
	defer span.End()
	if v, ok := s.blockCache.Get(blockRoot); v != nil && ok {
		return v.(interfaces.ReadOnlySignedBeaconBlock), nil
	}
	ver, enc, err := s.blockBytes(ctx, blockRoot)
	if err != nil {
		return nil, err
	}
	blk, err := blocks.UnmarshalSignedBeaconBlock(ver, enc)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode block %#x", blockRoot)
	}
	s.blockCache.Add(blockRoot, blk)
	return blk, nil
}

// BlockBytes returns the ssz encoding of the block stored under blockRoot, exactly as written.
func (s *Store) BlockBytes(ctx context.Context, blockRoot [32]byte) ([]byte, error) {
	ctx, span := trace.StartSpan(ctx, "BeaconDB.BlockBytes")
	defer span.End()
	_, enc, err := s.blockBytes(ctx, blockRoot)
	return enc, err
}

func (s *Store) blockBytes(_ context.Context, blockRoot [32]byte) (int, []byte, error) {
	var data []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		data = bytesutil.SafeCopyBytes(tx.Bucket(blocksBucket).Get(blockRoot[:]))
		return nil
	}); err != nil {
		return 0, nil, err
	}
	if data == nil {
		return 0, nil, errors.Wrapf(ErrNotFound, "block %#x", blockRoot)
	}
	return decodeBlockBytes(data)
}

// HasBlock checks if a block by root exists in the db.
func (s *Store) HasBlock(ctx context.Context, blockRoot [32]byte) bool {
	_, span := trace.StartSpan(ctx, "BeaconDB.HasBlock")
	defer span.End()
	if v, ok := s.blockCache.Get(blockRoot); v != nil && ok {
		return true
	}
	exists := false
	if err := s.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(blocksBucket).Get(blockRoot[:]) != nil
		return nil
	}); err != nil { // This view never returns an error, but we'll handle anyway for sanity.
		panic(err)
	}
	return exists
}

// SaveBlock stores the canonical ssz encoding of a block, keyed by its hash tree root.
func (s *Store) SaveBlock(ctx context.Context, signed interfaces.ReadOnlySignedBeaconBlock) error {
	ctx, span := trace.StartSpan(ctx, "BeaconDB.SaveBlock")
	defer span.End()
	if err := blocks.BeaconBlockIsNil(signed); err != nil {
		return err
	}
	blockRoot, err := signed.Block().HashTreeRoot()
	if err != nil {
		return err
	}
	enc, err := signed.MarshalSSZ()
	if err != nil {
		return errors.Wrap(err, "could not marshal block")
	}
	if err := s.SaveBlockBytes(ctx, blockRoot, signed.Block().Slot(), signed.Version(), enc); err != nil {
		return err
	}
	s.blockCache.Add(blockRoot, signed)
	return nil
}

// SaveBlockBytes stores enc, the ssz encoding of a block of the given fork version, without
// re-encoding it. The block is also marked unreconciled in the same transaction.
func (s *Store) SaveBlockBytes(ctx context.Context, blockRoot [32]byte, slot primitives.Slot, version int, enc []byte) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.SaveBlockBytes")
	defer span.End()
	if len(enc) == 0 {
		return errors.New("cannot save empty block encoding")
	}
	value, err := encodeBlockBytes(version, enc)
	if err != nil {
		return err
	}
	return s.db.Batch(func(tx *bolt.Tx) error {
		if err := tx.Bucket(blocksBucket).Put(blockRoot[:], value); err != nil {
			return err
		}
		return markUnreconciled(tx, blockRoot, slot)
	})
}

// DeleteBlocks removes the blocks with the given roots in a single transaction. Unknown roots
// are skipped.
func (s *Store) DeleteBlocks(ctx context.Context, blockRoots [][32]byte) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.DeleteBlocks")
	defer span.End()
	if err := s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(blocksBucket)
		for _, r := range blockRoots {
			if err := bkt.Delete(r[:]); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	for _, r := range blockRoots {
		s.blockCache.Remove(r)
	}
	return nil
}
