package testing

import (
	"context"
	"sync"

	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
)

// MockBroadcaster implements p2p.Broadcaster for testing.
type MockBroadcaster struct {
	lock              sync.Mutex
	BroadcastCalled   bool
	BroadcastMessages []p2p.Message
	Err               error
}

var _ p2p.Broadcaster = (*MockBroadcaster)(nil)

// Broadcast records a broadcast occurred.
func (m *MockBroadcaster) Broadcast(_ context.Context, msg p2p.Message) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.BroadcastCalled = true
	m.BroadcastMessages = append(m.BroadcastMessages, msg)
	return nil
}

// Messages returns a copy of the broadcast messages.
func (m *MockBroadcaster) Messages() []p2p.Message {
	m.lock.Lock()
	defer m.lock.Unlock()
	return append([]p2p.Message(nil), m.BroadcastMessages...)
}
