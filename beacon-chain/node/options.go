package node

import (
	"github.com/prysmaticlabs/blobnode/beacon-chain/blockchain"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
	regularsync "github.com/prysmaticlabs/blobnode/beacon-chain/sync"
)

// Option for beacon node configuration.
type Option func(bn *BeaconNode) error

// WithBlockchainFlagOptions includes functional options for the blockchain service related to CLI flags.
func WithBlockchainFlagOptions(opts []blockchain.Option) Option {
	return func(bn *BeaconNode) error {
		bn.serviceFlagOpts.blockchainFlagOpts = opts
		return nil
	}
}

// WithSyncOptions includes functional options for the sync service, applied after the node's own.
func WithSyncOptions(opts []regularsync.Option) Option {
	return func(bn *BeaconNode) error {
		bn.serviceFlagOpts.syncFlagOpts = opts
		return nil
	}
}

// WithP2PConfig replaces the p2p configuration otherwise read from flags.
func WithP2PConfig(cfg *p2p.Config) Option {
	return func(bn *BeaconNode) error {
		bn.p2pConfig = cfg
		return nil
	}
}
