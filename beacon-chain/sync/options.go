package sync

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/blockchain"
	"github.com/prysmaticlabs/blobnode/beacon-chain/das"
	"github.com/prysmaticlabs/blobnode/beacon-chain/operations/blstoexec"
	"github.com/prysmaticlabs/blobnode/beacon-chain/operations/synccommittee"
	"github.com/prysmaticlabs/blobnode/beacon-chain/operations/voluntaryexits"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
)

type Option func(s *Service) error

func WithP2P(p p2p.P2P) Option {
	return func(s *Service) error {
		s.cfg.p2p = p
		return nil
	}
}

// WithBroadcaster overrides the publisher used by the Publish methods. Defaults to the p2p service.
func WithBroadcaster(b p2p.Broadcaster) Option {
	return func(s *Service) error {
		s.cfg.broadcaster = b
		return nil
	}
}

func WithBlockInputReceiver(r blockchain.BlockInputReceiver) Option {
	return func(s *Service) error {
		s.cfg.receiver = r
		return nil
	}
}

// WithPendingStore sets where post-blob blocks wait for their sidecars.
func WithPendingStore(store das.PendingStore) Option {
	return func(s *Service) error {
		s.cfg.pending = store
		return nil
	}
}

func WithExitPool(pool voluntaryexits.PoolManager) Option {
	return func(s *Service) error {
		s.cfg.exitPool = pool
		return nil
	}
}

func WithBLSToExecPool(pool blstoexec.PoolManager) Option {
	return func(s *Service) error {
		s.cfg.blsToExecPool = pool
		return nil
	}
}

func WithSyncCommitteeStore(store *synccommittee.Store) Option {
	return func(s *Service) error {
		s.cfg.syncCommStore = store
		return nil
	}
}

// WithGossipHandlers replaces the default handler of every gossip type present in h.
func WithGossipHandlers(h GossipHandlers) Option {
	return func(s *Service) error {
		for t, fn := range h {
			if fn == nil {
				return errors.Errorf("nil gossip handler for %s", t)
			}
			s.cfg.handlers[t] = fn
		}
		return nil
	}
}
