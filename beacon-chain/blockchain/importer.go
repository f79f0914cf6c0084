package blockchain

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/forkchoice"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
)

// BlockImporter validates a block against its pre-state and, when valid, inserts it into fork choice.
type BlockImporter interface {
	ImportBlock(ctx context.Context, b blocks.ROBlock) error
}

// BlockInputReceiver is the entry point for complete block inputs coming from the network.
type BlockInputReceiver interface {
	ReceiveBlockInputs(ctx context.Context, inputs []blocks.BlockInput) error
}

// ForkChoiceImporter accepts every block whose parent fork choice already knows. State transition
// is left to the consensus engine the node runs alongside.
type ForkChoiceImporter struct {
	fc forkchoice.ForkChoicer
}

var _ BlockImporter = (*ForkChoiceImporter)(nil)

// NewForkChoiceImporter returns an importer that writes into fc.
func NewForkChoiceImporter(fc forkchoice.ForkChoicer) *ForkChoiceImporter {
	return &ForkChoiceImporter{fc: fc}
}

// ImportBlock inserts b into fork choice.
func (i *ForkChoiceImporter) ImportBlock(ctx context.Context, b blocks.ROBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	blk := b.Block()
	if err := i.fc.InsertNode(blk.Slot(), b.Root(), blk.ParentRoot()); err != nil {
		return errors.Wrapf(err, "could not insert block %#x into fork choice", b.Root())
	}
	return nil
}
