package testing

import (
	"fmt"
	"sync"

	"github.com/prysmaticlabs/blobnode/beacon-chain/forkchoice"
	forkchoicetypes "github.com/prysmaticlabs/blobnode/beacon-chain/forkchoice/types"
)

var _ forkchoice.Gateway = (*Gateway)(nil)

// Gateway is a settable fork choice view for tests.
type Gateway struct {
	mu      sync.RWMutex
	known   map[string]bool
	HeadRef forkchoicetypes.BlockRef
}

// NewGateway returns a fake that knows the given roots.
func NewGateway(roots ...[32]byte) *Gateway {
	g := &Gateway{known: make(map[string]bool)}
	for _, r := range roots {
		g.Add(r)
	}
	return g
}

// Add marks root as known.
func (g *Gateway) Add(root [32]byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.known[fmt.Sprintf("%#x", root)] = true
}

// Remove forgets root.
func (g *Gateway) Remove(root [32]byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.known, fmt.Sprintf("%#x", root))
}

// HasBlockHex --
func (g *Gateway) HasBlockHex(rootHex string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.known[rootHex]
}

// Head --
func (g *Gateway) Head() forkchoicetypes.BlockRef {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.HeadRef
}
