package sync

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
)

type contributionSeenKey struct {
	slot         primitives.Slot
	subcommittee uint64
	aggregator   primitives.ValidatorIndex
}

func (s *Service) syncContributionSubscriber(_ context.Context, msg *GossipMessage) error {
	m, ok := msg.Decoded.(*ethpb.SignedContributionAndProof)
	if !ok {
		return reject(errors.Wrapf(errWrongMessage, "%T", msg.Decoded))
	}
	if m.Message == nil || m.Message.Contribution == nil {
		return reject(errNilMessage)
	}
	c := m.Message.Contribution
	if c.AggregationBits.Count() == 0 {
		return reject(errors.New("contribution has no participants"))
	}
	key := contributionSeenKey{slot: c.Slot, subcommittee: c.SubcommitteeIndex, aggregator: m.Message.AggregatorIndex}
	if _, seen := s.seenContributionCache.ContainsOrAdd(key, true); seen {
		return ignore(errors.Errorf("contribution of aggregator %d at slot %d already seen", key.aggregator, key.slot))
	}
	if err := s.cfg.syncCommStore.SaveSyncCommitteeContribution(c); err != nil {
		return ignore(err)
	}
	return nil
}
