package blockchain

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/verification"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	"github.com/prysmaticlabs/blobnode/runtime/logging"
	"go.opencensus.io/trace"
)

// ReceiveBlockInputs runs a batch of block inputs through import:
//  1. Check the blob sidecars of every post-blob input and drop the inputs that fail.
//  2. Eagerly persist the remaining inputs while the importer processes them in order.
//  3. Once both settle, record which roots were imported and prune the writes fork choice did not keep.
//
// The first error met is returned after the whole batch has been handled.
func (s *Service) ReceiveBlockInputs(ctx context.Context, inputs []blocks.BlockInput) error {
	ctx, span := trace.StartSpan(ctx, "blockChain.ReceiveBlockInputs")
	defer span.End()

	var firstErr error
	record := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	valid := make([]blocks.BlockInput, 0, len(inputs))
	for _, in := range inputs {
		if err := verifyBlockInput(ctx, in); err != nil {
			invalidBlockInputs.Inc()
			log.WithError(err).WithFields(logging.BlockFields(in)).Warn("Dropping block input with invalid blob sidecars")
			record(errors.Wrapf(err, "block %s", rootString(in.Root())))
			continue
		}
		valid = append(valid, in)
	}
	if len(valid) == 0 {
		return firstErr
	}

	persisted := make(chan error, 1)
	go func() {
		persisted <- s.persister.Persist(ctx, valid)
	}()

	imported := make([][32]byte, 0, len(valid))
	for _, in := range valid {
		if err := s.cfg.Importer.ImportBlock(ctx, in.Block()); err != nil {
			importFailures.Inc()
			log.WithError(err).WithFields(logging.BlockFields(in)).Warn("Could not import block")
			record(err)
			continue
		}
		imported = append(imported, in.Root())
	}

	if err := <-persisted; err != nil {
		log.WithError(err).Error("Could not persist block inputs")
		record(err)
	}
	if err := s.persister.MarkImported(ctx, imported); err != nil {
		log.WithError(err).Warn("Could not mark imported blocks")
	}
	if err := s.persister.PruneUnimported(ctx, valid); err != nil {
		log.WithError(err).Error("Could not prune unimported blocks")
		record(err)
	}
	return firstErr
}

func verifyBlockInput(ctx context.Context, in blocks.BlockInput) error {
	switch in := in.(type) {
	case blocks.PreBlobBlockInput:
		return nil
	case blocks.PostBlobBlockInput:
		sidecars, err := in.Blobs()
		if err != nil {
			return err
		}
		blk := in.Block().Block()
		commitments, err := blk.Body().BlobKzgCommitments()
		if err != nil {
			return err
		}
		return verification.VerifyBlobSidecars(
			ctx, blk.Slot(), in.Root(), blk.Body().Transactions(), commitments, sidecars, verification.WithBisection(),
		)
	default:
		return errors.Wrapf(blocks.ErrUnknownBlockInput, "%T", in)
	}
}
