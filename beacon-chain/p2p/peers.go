package p2p

import (
	"context"

	"github.com/ethereum/go-ethereum/event"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PeerEventType distinguishes connection from disconnection events.
type PeerEventType int

const (
	PeerConnected PeerEventType = iota
	PeerDisconnected
)

func (t PeerEventType) String() string {
	switch t {
	case PeerConnected:
		return "connected"
	case PeerDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// PeerEvent is sent to every peer event subscriber.
type PeerEvent struct {
	Type      PeerEventType
	PeerID    peer.ID
	Direction network.Direction
}

var errSelfConnect = errors.New("cannot connect to self")

// SubscribePeerEvents delivers a PeerEvent on ch for every peer that connects or disconnects.
// Every subscriber receives every event, in the order the host observed them.
func (s *Service) SubscribePeerEvents(ch chan<- *PeerEvent) event.Subscription {
	return s.peerFeed.Subscribe(ch)
}

// registerConnectionHandlers reports only the first connection and the last disconnection
// of each peer, so redundant transports do not produce duplicate events.
func (s *Service) registerConnectionHandlers() {
	s.host.Network().Notify(&network.NotifyBundle{
		ConnectedF: func(net network.Network, conn network.Conn) {
			if len(net.ConnsToPeer(conn.RemotePeer())) > 1 {
				return
			}
			s.queuePeerEvent(&PeerEvent{Type: PeerConnected, PeerID: conn.RemotePeer(), Direction: conn.Stat().Direction})
		},
		DisconnectedF: func(net network.Network, conn network.Conn) {
			if net.Connectedness(conn.RemotePeer()) == network.Connected {
				return
			}
			s.queuePeerEvent(&PeerEvent{Type: PeerDisconnected, PeerID: conn.RemotePeer(), Direction: conn.Stat().Direction})
		},
	})
}

func (s *Service) queuePeerEvent(ev *PeerEvent) {
	select {
	case s.peerEvents <- ev:
	case <-s.ctx.Done():
	}
}

// dispatchPeerEvents forwards queued events to the feed from a single goroutine so the
// libp2p notifier never blocks on a slow subscriber and ordering is kept.
func (s *Service) dispatchPeerEvents() {
	for {
		select {
		case ev := <-s.peerEvents:
			log.WithFields(logrus.Fields{
				"peer":      ev.PeerID.String(),
				"direction": ev.Direction.String(),
			}).Debugf("Peer %s", ev.Type)
			s.peerFeed.Send(ev)
		case <-s.ctx.Done():
			return
		}
	}
}

// ConnectToPeer dials the peer at the given addresses.
func (s *Service) ConnectToPeer(ctx context.Context, id peer.ID, addrs []ma.Multiaddr) error {
	if id == s.host.ID() {
		return errSelfConnect
	}
	if err := s.host.Connect(ctx, peer.AddrInfo{ID: id, Addrs: addrs}); err != nil {
		return errors.Wrapf(err, "could not connect to %s", id)
	}
	return nil
}

// ConnectToPeerAddr dials a peer given as a multiaddr ending in /p2p/<id>.
func (s *Service) ConnectToPeerAddr(ctx context.Context, addr string) error {
	info, err := peer.AddrInfoFromString(addr)
	if err != nil {
		return errors.Wrapf(err, "invalid peer address %q", addr)
	}
	return s.ConnectToPeer(ctx, info.ID, info.Addrs)
}

// DisconnectPeer closes every connection to the peer.
func (s *Service) DisconnectPeer(id peer.ID) error {
	return s.host.Network().ClosePeer(id)
}

// ConnectedPeerCount returns the number of peers with at least one open connection.
func (s *Service) ConnectedPeerCount() int {
	return len(s.host.Network().Peers())
}

func (s *Service) connectStaticPeers() {
	for _, addr := range s.cfg.StaticPeers {
		go func(addr string) {
			if err := s.ConnectToPeerAddr(s.ctx, addr); err != nil {
				log.WithError(err).WithField("addr", addr).Warn("Could not connect to static peer")
			}
		}(addr)
	}
}
