package kv

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	field_params "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/encoding/bytesutil"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

var (
	errEmptySidecarRecord = errors.New("nil or empty blob sidecar record")
	errBlobRootMismatch   = errors.New("sidecar root mismatch")
)

// SaveBlobSidecarRecord stores the sidecars of one block, keyed by its root. The root is marked
// unreconciled in the same transaction, as block writes are.
func (s *Store) SaveBlobSidecarRecord(ctx context.Context, rec *ethpb.BlobSidecarRecord) error {
	ctx, span := trace.StartSpan(ctx, "BeaconDB.SaveBlobSidecarRecord")
	defer span.End()
	if rec == nil || len(rec.BlockRoot) != field_params.RootLength {
		return errEmptySidecarRecord
	}
	for i, sc := range rec.Sidecars {
		if sc == nil || !bytes.Equal(sc.BlockRoot, rec.BlockRoot) {
			return errors.Wrapf(errBlobRootMismatch, "sidecar %d", i)
		}
	}
	enc, err := encode(ctx, rec)
	if err != nil {
		return err
	}
	return s.db.Batch(func(tx *bolt.Tx) error {
		if err := tx.Bucket(blobSidecarsBucket).Put(rec.BlockRoot, enc); err != nil {
			return err
		}
		return markUnreconciled(tx, bytesutil.ToBytes32(rec.BlockRoot), rec.Slot)
	})
}

// BlobSidecarRecord returns the sidecars stored for blockRoot.
func (s *Store) BlobSidecarRecord(ctx context.Context, blockRoot [32]byte) (*ethpb.BlobSidecarRecord, error) {
	ctx, span := trace.StartSpan(ctx, "BeaconDB.BlobSidecarRecord")
	defer span.End()
	var enc []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(blobSidecarsBucket).Get(blockRoot[:])
		if v != nil {
			enc = make([]byte, len(v))
			copy(enc, v)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, errors.Wrapf(ErrNotFound, "blob sidecars for %#x", blockRoot)
	}
	rec := &ethpb.BlobSidecarRecord{}
	if err := decode(ctx, enc, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// HasBlobSidecarRecord checks if sidecars for blockRoot exist in the db.
func (s *Store) HasBlobSidecarRecord(ctx context.Context, blockRoot [32]byte) bool {
	_, span := trace.StartSpan(ctx, "BeaconDB.HasBlobSidecarRecord")
	defer span.End()
	exists := false
	// #nosec G104. Always returns nil.
	_ = s.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(blobSidecarsBucket).Get(blockRoot[:]) != nil
		return nil
	})
	return exists
}

// DeleteBlobSidecarRecords removes the records for the given roots in a single transaction.
func (s *Store) DeleteBlobSidecarRecords(ctx context.Context, blockRoots [][32]byte) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.DeleteBlobSidecarRecords")
	defer span.End()
	return s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(blobSidecarsBucket)
		for _, r := range blockRoots {
			if err := bkt.Delete(r[:]); err != nil {
				return err
			}
		}
		return nil
	})
}
