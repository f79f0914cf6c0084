package p2p

import (
	"context"
	"sort"
	"sync"
	"time"

	pubsub "github.com/libp2p/go-libp2p-pubsub"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/core/protocol"
	"github.com/prysmaticlabs/blobnode/config/params"
)

var _ pubsub.RawTracer = (*meshTracer)(nil)

// meshTracer keeps the set of mesh peers per topic as reported by gossipsub graft and prune events.
type meshTracer struct {
	lock sync.RWMutex
	mesh map[string]map[peer.ID]struct{}
}

func newMeshTracer() *meshTracer {
	return &meshTracer{mesh: make(map[string]map[peer.ID]struct{})}
}

func (m *meshTracer) Join(topic string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.mesh[topic]; !ok {
		m.mesh[topic] = make(map[peer.ID]struct{})
	}
}

func (m *meshTracer) Leave(topic string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.mesh, topic)
}

func (m *meshTracer) Graft(p peer.ID, topic string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	peers, ok := m.mesh[topic]
	if !ok {
		peers = make(map[peer.ID]struct{})
		m.mesh[topic] = peers
	}
	peers[p] = struct{}{}
}

func (m *meshTracer) Prune(p peer.ID, topic string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.mesh[topic], p)
}

func (m *meshTracer) RemovePeer(p peer.ID) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, peers := range m.mesh {
		delete(peers, p)
	}
}

func (*meshTracer) AddPeer(peer.ID, protocol.ID) {}
func (*meshTracer) ValidateMessage(*pubsub.Message) {}
func (*meshTracer) DeliverMessage(*pubsub.Message) {}
func (*meshTracer) RejectMessage(*pubsub.Message, string) {}
func (*meshTracer) DuplicateMessage(*pubsub.Message) {}
func (*meshTracer) ThrottlePeer(peer.ID) {}
func (*meshTracer) RecvRPC(*pubsub.RPC) {}
func (*meshTracer) SendRPC(*pubsub.RPC, peer.ID) {}
func (*meshTracer) DropRPC(*pubsub.RPC, peer.ID) {}
func (*meshTracer) UndeliverableMessage(*pubsub.Message) {}

func (m *meshTracer) size(topic string) int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.mesh[topic])
}

func (m *meshTracer) snapshot() map[string][]peer.ID {
	m.lock.RLock()
	defer m.lock.RUnlock()
	out := make(map[string][]peer.ID, len(m.mesh))
	for topic, peers := range m.mesh {
		ids := make([]peer.ID, 0, len(peers))
		for p := range peers {
			ids = append(ids, p)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		out[topic] = ids
	}
	return out
}

// DumpMeshPeers returns the mesh peers of every joined topic.
func (s *Service) DumpMeshPeers() map[string][]peer.ID {
	return s.mesh.snapshot()
}

// HasSomeMeshPeer reports whether any topic has at least one mesh peer.
func (s *Service) HasSomeMeshPeer() bool {
	for _, peers := range s.mesh.snapshot() {
		if len(peers) > 0 {
			return true
		}
	}
	return false
}

// WaitForMeshPeer blocks until topic has a mesh peer. There is no internal deadline; the wait ends
// when ctx is done.
func (s *Service) WaitForMeshPeer(ctx context.Context, topic string) error {
	return waitForMeshPeer(ctx, s.mesh, topic, params.BeaconConfig().MeshPeerPollInterval)
}

func waitForMeshPeer(ctx context.Context, m *meshTracer, topic string, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		if m.size(topic) > 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
