package sync

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/das"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	"github.com/prysmaticlabs/blobnode/runtime/logging"
	"github.com/prysmaticlabs/blobnode/runtime/version"
	"go.opencensus.io/trace"
)

func (s *Service) beaconBlockSubscriber(ctx context.Context, msg *GossipMessage) error {
	ctx, span := trace.StartSpan(ctx, "sync.beaconBlockSubscriber")
	defer span.End()

	signed, err := blocks.NewSignedBeaconBlock(msg.Decoded)
	if err != nil {
		return reject(errors.Wrap(errWrongMessage, err.Error()))
	}
	rb, err := blocks.NewROBlock(signed)
	if err != nil {
		return reject(err)
	}
	if _, seen := s.seenBlockCache.ContainsOrAdd(rb.Root(), true); seen {
		return ignore(errors.Errorf("block %#x already seen", rb.Root()))
	}
	opts := []blocks.BlockInputOption{
		blocks.WithSource(blocks.BlockSourceGossip),
		blocks.WithSerializedData(msg.SerializedData),
	}

	if rb.Version() < version.Deneb {
		in, err := blocks.NewPreBlobBlockInput(rb, opts...)
		if err != nil {
			s.seenBlockCache.Remove(rb.Root())
			return reject(err)
		}
		return s.receiveBlockInput(ctx, in)
	}
	if err := s.cfg.pending.StashBlock(rb, opts...); err != nil {
		s.seenBlockCache.Remove(rb.Root())
		return reject(err)
	}
	return s.tryComplete(ctx, das.KeyFromBlock(rb))
}

// tryComplete hands the pending entry for key to the blockchain service once every sidecar
// the block commits to has arrived.
func (s *Service) tryComplete(ctx context.Context, key das.Key) error {
	in, ok := s.cfg.pending.Complete(key)
	if !ok {
		return nil
	}
	pendingBlockInputsCompleted.Inc()
	return s.receiveBlockInput(ctx, in)
}

func (s *Service) receiveBlockInput(ctx context.Context, in blocks.BlockInput) error {
	if err := s.cfg.receiver.ReceiveBlockInputs(ctx, []blocks.BlockInput{in}); err != nil {
		log.WithError(err).WithFields(logging.BlockFields(in)).Debug("Could not receive gossiped block")
		s.forgetInput(in)
		return importVerdict(err)
	}
	log.WithFields(logging.BlockFields(in)).Debug("Received gossiped block")
	return nil
}

// forgetInput drops in's block and sidecars from the seen caches, so a later copy of any of
// them is processed again instead of being ignored.
func (s *Service) forgetInput(in blocks.BlockInput) {
	root := in.Root()
	s.seenBlockCache.Remove(root)
	if in.Type() != blocks.BlockInputPostBlob {
		return
	}
	scs, err := in.Blobs()
	if err != nil {
		return
	}
	for _, sc := range scs {
		s.seenBlobCache.Remove(blobSeenKey{root: root, index: sc.Index})
	}
}
