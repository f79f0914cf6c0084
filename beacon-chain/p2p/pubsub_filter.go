package p2p

import (
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	pubsubpb "github.com/libp2p/go-libp2p-pubsub/pb"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/prysmaticlabs/blobnode/config/params"
)

var _ pubsub.SubscriptionFilter = (*subscriptionFilter)(nil)

// pubsubSubscriptionRequestLimit bounds the subscriptions a peer may announce in one RPC.
const pubsubSubscriptionRequestLimit = 200

// subscriptionFilter only lets the node and its peers subscribe to known topics under the
// node's own fork digest.
type subscriptionFilter struct {
	forkDigest [4]byte
}

// CanSubscribe returns true if the topic is of interest and we could subscribe to it.
func (sf *subscriptionFilter) CanSubscribe(topic string) bool {
	g, err := ParseGossipTopic(topic)
	if err != nil {
		return false
	}
	if g.ForkDigest != sf.forkDigest {
		return false
	}
	if g.Type == GossipBlobSidecar && g.Subnet >= params.BeaconConfig().BlobsidecarSubnetCount {
		return false
	}
	return true
}

// FilterIncomingSubscriptions is invoked for all RPCs containing subscription notifications.
// This method returns only the topics of interest and may return an error if the subscription
// request contains too many topics.
func (sf *subscriptionFilter) FilterIncomingSubscriptions(_ peer.ID, subs []*pubsubpb.RPC_SubOpts) ([]*pubsubpb.RPC_SubOpts, error) {
	if len(subs) > pubsubSubscriptionRequestLimit {
		return nil, pubsub.ErrTooManySubscriptions
	}
	return pubsub.FilterSubscriptions(subs, sf.CanSubscribe), nil
}

func newSubscriptionFilter(forkDigest [4]byte) pubsub.SubscriptionFilter {
	return &subscriptionFilter{forkDigest: forkDigest}
}
