package p2p

import (
	"context"
	"testing"
	"time"

	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshTracer_GraftPruneLeave(t *testing.T) {
	m := newMeshTracer()
	m.Join("a")
	m.Graft(peer.ID("p1"), "a")
	m.Graft(peer.ID("p2"), "a")
	m.Graft(peer.ID("p1"), "b")
	assert.Equal(t, 2, m.size("a"))
	assert.Equal(t, []peer.ID{"p1", "p2"}, m.snapshot()["a"])

	m.Prune(peer.ID("p2"), "a")
	assert.Equal(t, 1, m.size("a"))

	m.RemovePeer(peer.ID("p1"))
	assert.Equal(t, 0, m.size("a"))
	assert.Equal(t, 0, m.size("b"))

	m.Leave("a")
	_, ok := m.snapshot()["a"]
	assert.False(t, ok)
}

func TestWaitForMeshPeer_EndsOnCancel(t *testing.T) {
	m := newMeshTracer()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- waitForMeshPeer(ctx, m, "topic", time.Millisecond)
	}()
	select {
	case err := <-done:
		t.Fatalf("wait returned early: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestWaitForMeshPeer_ReturnsOnGraft(t *testing.T) {
	m := newMeshTracer()
	go func() {
		time.Sleep(10 * time.Millisecond)
		m.Graft(peer.ID("p"), "topic")
	}()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, waitForMeshPeer(ctx, m, "topic", time.Millisecond))
}
