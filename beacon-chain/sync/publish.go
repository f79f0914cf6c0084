package sync

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
	"github.com/prysmaticlabs/blobnode/consensus-types/interfaces"
	"github.com/prysmaticlabs/blobnode/monitoring/tracing"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"go.opencensus.io/trace"
)

// PublishVoluntaryExit gossips a signed exit. The epoch must already be set by the caller.
func (s *Service) PublishVoluntaryExit(ctx context.Context, exit *ethpb.SignedVoluntaryExit) error {
	if exit == nil || exit.Exit == nil {
		return errNilMessage
	}
	return s.publish(ctx, "sync.PublishVoluntaryExit", exit)
}

func (s *Service) PublishBlsToExecutionChange(ctx context.Context, change *ethpb.SignedBLSToExecutionChange) error {
	if change == nil || change.Message == nil {
		return errNilMessage
	}
	return s.publish(ctx, "sync.PublishBlsToExecutionChange", change)
}

func (s *Service) PublishSyncCommitteeContribution(ctx context.Context, c *ethpb.SignedContributionAndProof) error {
	if c == nil || c.Message == nil || c.Message.Contribution == nil {
		return errNilMessage
	}
	return s.publish(ctx, "sync.PublishSyncCommitteeContribution", c)
}

func (s *Service) PublishLightClientOptimisticUpdate(ctx context.Context, u *ethpb.LightClientOptimisticUpdate) error {
	if u == nil {
		return errNilMessage
	}
	return s.publish(ctx, "sync.PublishLightClientOptimisticUpdate", u)
}

func (s *Service) PublishLightClientFinalityUpdate(ctx context.Context, u *ethpb.LightClientFinalityUpdate) error {
	if u == nil {
		return errNilMessage
	}
	return s.publish(ctx, "sync.PublishLightClientFinalityUpdate", u)
}

// PublishBeaconBlock gossips a signed block on the block topic of the current fork.
func (s *Service) PublishBeaconBlock(ctx context.Context, b interfaces.ReadOnlySignedBeaconBlock) error {
	if b == nil || b.IsNil() {
		return errNilMessage
	}
	pb, err := b.Proto()
	if err != nil {
		return errors.Wrap(err, "could not get block proto")
	}
	msg, ok := pb.(p2p.Message)
	if !ok {
		return errors.Wrapf(p2p.ErrMessageNotMapped, "%T", pb)
	}
	return s.publish(ctx, "sync.PublishBeaconBlock", msg)
}

// PublishBlobSidecar gossips a sidecar on the subnet derived from its index.
func (s *Service) PublishBlobSidecar(ctx context.Context, sc *ethpb.SignedBlobSidecar) error {
	if sc == nil || sc.Message == nil {
		return errNilMessage
	}
	return s.publish(ctx, "sync.PublishBlobSidecar", sc)
}

func (s *Service) publish(ctx context.Context, name string, msg p2p.Message) error {
	ctx, span := trace.StartSpan(ctx, name)
	defer span.End()
	if err := s.cfg.broadcaster.Broadcast(ctx, msg); err != nil {
		tracing.AnnotateError(span, err)
		return errors.Wrapf(err, "could not publish %T", msg)
	}
	return nil
}
