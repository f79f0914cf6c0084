// Package testing provides p2p fakes and helpers for tests of packages built on top of p2p.
package testing

import (
	"context"
	"testing"
	"time"

	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/encoding/bytesutil"
	"github.com/stretchr/testify/require"
)

// NewTestP2P starts a p2p service on a random local port on the Deneb fork. It is stopped when
// the test ends.
func NewTestP2P(t testing.TB) *p2p.Service {
	return NewTestP2PAtFork(t, bytesutil.ToBytes4(params.BeaconConfig().DenebForkVersion))
}

// NewTestP2PAtFork is NewTestP2P for an arbitrary fork version.
func NewTestP2PAtFork(t testing.TB, forkVersion [4]byte) *p2p.Service {
	s, err := p2p.NewService(context.Background(), &p2p.Config{
		ForkVersion:           forkVersion,
		GenesisValidatorsRoot: [32]byte{'g', 'v', 'r'},
	})
	require.NoError(t, err)
	s.Start()
	t.Cleanup(func() {
		require.NoError(t, s.Stop())
	})
	return s
}

// Connect dials b from a.
func Connect(t testing.TB, a, b *p2p.Service) {
	id := b.NetworkIdentity()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, a.ConnectToPeer(ctx, id.ID, id.Addrs))
}
