package forkchoice

import (
	forkchoicetypes "github.com/prysmaticlabs/blobnode/beacon-chain/forkchoice/types"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

// Gateway is the read-only view of fork choice the ingestion pipeline relies on.
type Gateway interface {
	// HasBlockHex reports whether fork choice holds the block with the 0x-prefixed hex root.
	HasBlockHex(rootHex string) bool
	Head() forkchoicetypes.BlockRef
}

// ForkChoicer is the fork choice store the node runs. Only the block importer writes to it.
type ForkChoicer interface {
	Gateway
	InsertNode(slot primitives.Slot, root, parentRoot [32]byte) error
	HasNode(root [32]byte) bool
	NodeCount() int
	Prune(finalizedRoot [32]byte) error
}
