package sync

import (
	"context"

	"github.com/pkg/errors"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
)

func (s *Service) blsToExecutionChangeSubscriber(_ context.Context, msg *GossipMessage) error {
	change, ok := msg.Decoded.(*ethpb.SignedBLSToExecutionChange)
	if !ok {
		return reject(errors.Wrapf(errWrongMessage, "%T", msg.Decoded))
	}
	if change.Message == nil {
		return reject(errNilMessage)
	}
	if _, seen := s.seenBLSToExecCache.ContainsOrAdd(change.Message.ValidatorIndex, true); seen {
		return ignore(errors.Errorf("bls to execution change of validator %d already seen", change.Message.ValidatorIndex))
	}
	if !s.cfg.blsToExecPool.InsertBLSToExecChange(change) {
		return ignore(errors.New("bls to execution change not added to pool"))
	}
	return nil
}
