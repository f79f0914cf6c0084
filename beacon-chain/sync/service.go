// Package sync turns gossip traffic into calls on the node's pools, the pending block input
// cache and the blockchain service, and publishes locally produced messages.
package sync

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/blockchain"
	"github.com/prysmaticlabs/blobnode/beacon-chain/das"
	"github.com/prysmaticlabs/blobnode/beacon-chain/operations/blstoexec"
	"github.com/prysmaticlabs/blobnode/beacon-chain/operations/synccommittee"
	"github.com/prysmaticlabs/blobnode/beacon-chain/operations/voluntaryexits"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

var (
	errNilP2P      = errors.New("sync service requires a p2p service")
	errNilReceiver = errors.New("sync service requires a block input receiver")
	errStopped     = errors.New("sync service stopped")
)

type config struct {
	p2p           p2p.P2P
	broadcaster   p2p.Broadcaster
	receiver      blockchain.BlockInputReceiver
	pending       das.PendingStore
	exitPool      voluntaryexits.PoolManager
	blsToExecPool blstoexec.PoolManager
	syncCommStore *synccommittee.Store
	handlers      GossipHandlers
}

// Service is responsible for the gossip side of the node.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config

	// subscribeLock serialises subscribe and unsubscribe so a topic moves through one
	// transition at a time. subscriptionsLock only guards the map.
	subscribeLock     sync.Mutex
	subscriptionsLock sync.RWMutex
	subscriptions     map[string]*topicSubscription

	seenBlockCache        *lru.Cache
	seenBlobCache         *lru.Cache
	seenExitCache         *lru.Cache
	seenBLSToExecCache    *lru.Cache
	seenContributionCache *lru.Cache

	lightClientLock    sync.Mutex
	lastOptimisticSlot primitives.Slot
	lastFinalitySlot   primitives.Slot
}

// NewService initializes a new sync service. WithP2P and WithBlockInputReceiver are required;
// every other collaborator has an in-memory default.
func NewService(ctx context.Context, opts ...Option) (*Service, error) {
	ctx, cancel := context.WithCancel(ctx)
	s := &Service{
		ctx:           ctx,
		cancel:        cancel,
		cfg:           &config{handlers: make(GossipHandlers)},
		subscriptions: make(map[string]*topicSubscription),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			cancel()
			return nil, err
		}
	}
	if err := s.setDefaults(); err != nil {
		cancel()
		return nil, err
	}
	if err := s.initCaches(); err != nil {
		cancel()
		return nil, err
	}
	return s, nil
}

func (s *Service) setDefaults() error {
	if s.cfg.p2p == nil {
		return errNilP2P
	}
	if s.cfg.receiver == nil {
		return errNilReceiver
	}
	if s.cfg.broadcaster == nil {
		s.cfg.broadcaster = s.cfg.p2p
	}
	if s.cfg.pending == nil {
		s.cfg.pending = das.NewCache(params.BeaconConfig().PendingBlockInputTTL)
	}
	if s.cfg.exitPool == nil {
		s.cfg.exitPool = voluntaryexits.NewPool()
	}
	if s.cfg.blsToExecPool == nil {
		s.cfg.blsToExecPool = blstoexec.NewPool()
	}
	if s.cfg.syncCommStore == nil {
		s.cfg.syncCommStore = synccommittee.NewStore()
	}
	for t, h := range s.defaultGossipHandlers() {
		if _, ok := s.cfg.handlers[t]; !ok {
			s.cfg.handlers[t] = h
		}
	}
	return nil
}

func (s *Service) initCaches() error {
	size := params.BeaconNetworkConfig().SeenCacheSize
	caches := []**lru.Cache{
		&s.seenBlockCache,
		&s.seenBlobCache,
		&s.seenExitCache,
		&s.seenBLSToExecCache,
		&s.seenContributionCache,
	}
	for _, c := range caches {
		cache, err := lru.New(size)
		if err != nil {
			return errors.Wrap(err, "could not create seen cache")
		}
		*c = cache
	}
	return nil
}

// Start subscribes to the core gossip topics of the current fork.
func (s *Service) Start() {
	if err := s.SubscribeGossipCoreTopics(); err != nil {
		log.WithError(err).Error("Could not subscribe to gossip topics")
		return
	}
	log.WithField("topics", len(s.subscribedTopics())).Info("Subscribed to gossip topics")
}

// Stop leaves every topic and aborts in-flight handlers.
func (s *Service) Stop() error {
	defer s.cancel()
	return s.UnsubscribeGossipCoreTopics()
}

// Status reports an error once the service has been stopped.
func (s *Service) Status() error {
	if s.ctx.Err() != nil {
		return errStopped
	}
	return nil
}

// ExitPool exposes the voluntary exits gathered from gossip.
func (s *Service) ExitPool() voluntaryexits.PoolManager {
	return s.cfg.exitPool
}

// BLSToExecPool exposes the BLS to execution changes gathered from gossip.
func (s *Service) BLSToExecPool() blstoexec.PoolManager {
	return s.cfg.blsToExecPool
}

// SyncCommitteeStore exposes the sync committee contributions gathered from gossip.
func (s *Service) SyncCommitteeStore() *synccommittee.Store {
	return s.cfg.syncCommStore
}
