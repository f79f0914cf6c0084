// Package iface defines the actual database interface used
// by a beacon node, also containing useful, scoped interfaces such as
// a ReadOnlyDatabase.
package iface

import (
	"context"
	"io"

	"github.com/prysmaticlabs/blobnode/consensus-types/interfaces"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
)

// ReadOnlyDatabase defines a struct which only has read access to database methods.
type ReadOnlyDatabase interface {
	// Block related methods.
	Block(ctx context.Context, blockRoot [32]byte) (interfaces.ReadOnlySignedBeaconBlock, error)
	BlockBytes(ctx context.Context, blockRoot [32]byte) ([]byte, error)
	HasBlock(ctx context.Context, blockRoot [32]byte) bool
	// Blob related methods.
	BlobSidecarRecord(ctx context.Context, blockRoot [32]byte) (*ethpb.BlobSidecarRecord, error)
	HasBlobSidecarRecord(ctx context.Context, blockRoot [32]byte) bool
	// Reconciliation markers.
	UnreconciledRoots(ctx context.Context) (map[[32]byte]primitives.Slot, error)
}

// NoHeadAccessDatabase defines a struct without access to chain head data.
type NoHeadAccessDatabase interface {
	ReadOnlyDatabase

	// Block related methods.
	SaveBlock(ctx context.Context, block interfaces.ReadOnlySignedBeaconBlock) error
	SaveBlockBytes(ctx context.Context, blockRoot [32]byte, slot primitives.Slot, version int, enc []byte) error
	DeleteBlocks(ctx context.Context, blockRoots [][32]byte) error
	// Blob related methods.
	SaveBlobSidecarRecord(ctx context.Context, rec *ethpb.BlobSidecarRecord) error
	DeleteBlobSidecarRecords(ctx context.Context, blockRoots [][32]byte) error
	// Reconciliation markers.
	ClearUnreconciled(ctx context.Context, blockRoots [][32]byte) error
}

// Database interface with full access.
type Database interface {
	io.Closer
	NoHeadAccessDatabase

	DatabasePath() string
	ClearDB() error
}
