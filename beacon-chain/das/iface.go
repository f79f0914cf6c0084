// Package das joins gossiped blocks with the blob sidecars they commit to.
package das

import (
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
)

// PendingStore joins gossiped blocks with their blob sidecars. Whichever arrives first waits in
// the store; Complete hands out the assembled BlockInput exactly once.
type PendingStore interface {
	StashBlock(b blocks.ROBlock, opts ...blocks.BlockInputOption) error
	StashSidecar(sc *ethpb.BlobSidecar) (bool, error)
	Complete(key Key) (blocks.BlockInput, bool)
}
