package p2p

import (
	"context"

	"github.com/ethereum/go-ethereum/event"
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	"github.com/libp2p/go-libp2p/core/peer"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p/encoder"
)

// P2P represents the full p2p interface composed of all of the sub-interfaces.
type P2P interface {
	Broadcaster
	EncodingProvider
	PubSubProvider
	PubSubTopicUser
	MeshProvider
	PeerManager
	TopicProvider
}

// Broadcaster broadcasts messages to peers over the p2p pubsub protocol.
type Broadcaster interface {
	Broadcast(context.Context, Message) error
}

// EncodingProvider provides p2p network encoding.
type EncodingProvider interface {
	Encoding() encoder.NetworkEncoding
}

// PubSubProvider provides the p2p pubsub protocol.
type PubSubProvider interface {
	PubSub() *pubsub.PubSub
}

// PubSubTopicUser provides way to join, use and leave PubSub topics.
type PubSubTopicUser interface {
	JoinTopic(topic string, opts ...pubsub.TopicOpt) (*pubsub.Topic, error)
	LeaveTopic(topic string) error
	PublishToTopic(ctx context.Context, topic string, data []byte, opts ...pubsub.PubOpt) error
	SubscribeToTopic(topic string, opts ...pubsub.SubOpt) (*pubsub.Subscription, error)
}

// MeshProvider exposes the gossipsub mesh as seen by the local router.
type MeshProvider interface {
	DumpMeshPeers() map[string][]peer.ID
	HasSomeMeshPeer() bool
	WaitForMeshPeer(ctx context.Context, topic string) error
}

// PeerManager abstracts some peer management methods from libp2p.
type PeerManager interface {
	PeerID() peer.ID
	NetworkIdentity() peer.AddrInfo
	ConnectToPeer(ctx context.Context, id peer.ID, addrs []ma.Multiaddr) error
	DisconnectPeer(id peer.ID) error
	ConnectedPeerCount() int
	SubscribePeerEvents(ch chan<- *PeerEvent) event.Subscription
}

// TopicProvider renders gossip topics under the node's current fork digest.
type TopicProvider interface {
	Topic(t GossipType, subnet uint64) string
	ForkDigest() [4]byte
	ForkRuntimeVersion() int
}
