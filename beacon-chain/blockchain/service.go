// Package blockchain imports complete block inputs: it checks their blobs, writes them to the
// database ahead of fork choice and removes what fork choice does not keep.
package blockchain

import (
	"context"
	"sync"

	"github.com/prysmaticlabs/blobnode/async"
)

// Service owns the persistence coordinator and drives the receive pipeline.
type Service struct {
	ctx       context.Context
	cancel    context.CancelFunc
	cfg       *config
	persister *Persister

	statusLock sync.RWMutex
	statusErr  error
}

var _ BlockInputReceiver = (*Service)(nil)

// NewService instantiates a new block service instance that will
// be registered into a running beacon node.
func NewService(ctx context.Context, opts ...Option) (*Service, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if cfg.Importer == nil {
		return nil, errNilImporter
	}
	p, err := newPersister(cfg)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Service{
		ctx:       ctx,
		cancel:    cancel,
		cfg:       cfg,
		persister: p,
	}, nil
}

// Start resolves writes left over from a previous run, then sweeps periodically.
func (s *Service) Start() {
	log.Info("Starting blockchain service")
	s.reconcile()
	async.RunEvery(s.ctx, s.cfg.ReconcileInterval, s.reconcile)
}

// Stop the blockchain service's sweep.
func (s *Service) Stop() error {
	defer s.cancel()
	log.Info("Stopping blockchain service")
	return nil
}

// Status reports the outcome of the last sweep.
func (s *Service) Status() error {
	s.statusLock.RLock()
	defer s.statusLock.RUnlock()
	return s.statusErr
}

// Persister returns the service's persistence coordinator.
func (s *Service) Persister() *Persister {
	return s.persister
}

func (s *Service) reconcile() {
	err := s.persister.ReconcileUnimported(s.ctx)
	if err != nil && s.ctx.Err() == nil {
		log.WithError(err).Error("Could not reconcile unimported blocks")
	}
	s.statusLock.Lock()
	s.statusErr = err
	s.statusLock.Unlock()
}
