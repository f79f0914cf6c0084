package sync

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
)

var errStaleUpdate = errors.New("light client update is not newer than the last one forwarded")

func (s *Service) lightClientOptimisticUpdateSubscriber(_ context.Context, msg *GossipMessage) error {
	u, ok := msg.Decoded.(*ethpb.LightClientOptimisticUpdate)
	if !ok {
		return reject(errors.Wrapf(errWrongMessage, "%T", msg.Decoded))
	}
	if u.AttestedHeader == nil || u.SyncAggregate == nil {
		return reject(errNilMessage)
	}
	return s.advanceLightClientSlot(&s.lastOptimisticSlot, u.SignatureSlot)
}

func (s *Service) lightClientFinalityUpdateSubscriber(_ context.Context, msg *GossipMessage) error {
	u, ok := msg.Decoded.(*ethpb.LightClientFinalityUpdate)
	if !ok {
		return reject(errors.Wrapf(errWrongMessage, "%T", msg.Decoded))
	}
	if u.AttestedHeader == nil || u.FinalizedHeader == nil || u.SyncAggregate == nil {
		return reject(errNilMessage)
	}
	return s.advanceLightClientSlot(&s.lastFinalitySlot, u.SignatureSlot)
}

func (s *Service) advanceLightClientSlot(last *primitives.Slot, slot primitives.Slot) error {
	s.lightClientLock.Lock()
	defer s.lightClientLock.Unlock()
	if slot <= *last {
		return ignore(errors.Wrapf(errStaleUpdate, "signature slot %d, last %d", slot, *last))
	}
	*last = slot
	return nil
}
