package blockchain

import (
	"time"

	"github.com/prysmaticlabs/blobnode/beacon-chain/db"
	"github.com/prysmaticlabs/blobnode/beacon-chain/forkchoice"
	"github.com/prysmaticlabs/blobnode/config/params"
)

type config struct {
	BeaconDB          db.NoHeadAccessDatabase
	ForkChoice        forkchoice.Gateway
	Importer          BlockImporter
	ReconcileInterval time.Duration
}

// Option is a functional option for the persister and the blockchain service.
type Option func(c *config) error

// WithDatabase sets the store eager writes go to.
func WithDatabase(beaconDB db.NoHeadAccessDatabase) Option {
	return func(c *config) error {
		c.BeaconDB = beaconDB
		return nil
	}
}

// WithForkChoiceGateway sets the fork choice view used to decide which writes to keep.
func WithForkChoiceGateway(fc forkchoice.Gateway) Option {
	return func(c *config) error {
		c.ForkChoice = fc
		return nil
	}
}

// WithBlockImporter sets the collaborator that validates blocks and inserts them into fork choice.
func WithBlockImporter(i BlockImporter) Option {
	return func(c *config) error {
		c.Importer = i
		return nil
	}
}

// WithReconcileInterval overrides how often unreconciled writes are swept.
func WithReconcileInterval(d time.Duration) Option {
	return func(c *config) error {
		c.ReconcileInterval = d
		return nil
	}
}

func newConfig(opts []Option) (*config, error) {
	c := &config{ReconcileInterval: params.BeaconConfig().ReconcileInterval}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
