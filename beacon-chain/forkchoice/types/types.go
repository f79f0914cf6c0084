package types

import (
	"fmt"

	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

// BlockRef identifies a block known to fork choice.
type BlockRef struct {
	Slot       primitives.Slot
	Root       [32]byte
	ParentRoot [32]byte
}

func (r BlockRef) String() string {
	return fmt.Sprintf("slot=%d root=%#x", r.Slot, r.Root)
}
