package kv

import (
	"context"

	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	"github.com/prysmaticlabs/blobnode/encoding/bytesutil"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

// markUnreconciled records that blockRoot was written before fork choice had ruled on it.
// It must run inside the transaction that writes the block or its sidecar record.
func markUnreconciled(tx *bolt.Tx, blockRoot [32]byte, slot primitives.Slot) error {
	return tx.Bucket(unreconciledRootsBucket).Put(blockRoot[:], bytesutil.Uint64ToBytesBigEndian(uint64(slot)))
}

// UnreconciledRoots returns every block root still awaiting a fork choice verdict, with its slot.
func (s *Store) UnreconciledRoots(ctx context.Context) (map[[32]byte]primitives.Slot, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.UnreconciledRoots")
	defer span.End()
	roots := make(map[[32]byte]primitives.Slot)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(unreconciledRootsBucket).ForEach(func(k, v []byte) error {
			roots[bytesutil.ToBytes32(k)] = primitives.Slot(bytesutil.BytesToUint64BigEndian(v))
			return nil
		})
	})
	return roots, err
}

// ClearUnreconciled drops the markers for the given roots.
func (s *Store) ClearUnreconciled(ctx context.Context, blockRoots [][32]byte) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.ClearUnreconciled")
	defer span.End()
	if len(blockRoots) == 0 {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(unreconciledRootsBucket)
		for _, r := range blockRoots {
			if err := bkt.Delete(r[:]); err != nil {
				return err
			}
		}
		return nil
	})
}
