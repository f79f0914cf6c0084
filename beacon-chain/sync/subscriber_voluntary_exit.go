package sync

import (
	"context"

	"github.com/pkg/errors"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
)

func (s *Service) voluntaryExitSubscriber(_ context.Context, msg *GossipMessage) error {
	exit, ok := msg.Decoded.(*ethpb.SignedVoluntaryExit)
	if !ok {
		return reject(errors.Wrapf(errWrongMessage, "%T", msg.Decoded))
	}
	if exit.Exit == nil {
		return reject(errNilMessage)
	}
	if _, seen := s.seenExitCache.ContainsOrAdd(exit.Exit.ValidatorIndex, true); seen {
		return ignore(errors.Errorf("exit of validator %d already seen", exit.Exit.ValidatorIndex))
	}
	if !s.cfg.exitPool.InsertVoluntaryExit(exit) {
		return ignore(errors.New("exit not added to pool"))
	}
	return nil
}
