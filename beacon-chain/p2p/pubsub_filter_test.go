package p2p

import (
	"fmt"
	"testing"

	pubsub "github.com/libp2p/go-libp2p-pubsub"
	pubsubpb "github.com/libp2p/go-libp2p-pubsub/pb"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionFilter_CanSubscribe(t *testing.T) {
	digest := [4]byte{9, 9, 9, 9}
	sf := newSubscriptionFilter(digest)

	assert.True(t, sf.CanSubscribe(GossipTopic{ForkDigest: digest, Type: GossipBeaconBlock}.String()))
	assert.True(t, sf.CanSubscribe(GossipTopic{ForkDigest: digest, Type: GossipBlobSidecar, Subnet: 5}.String()))
	assert.False(t, sf.CanSubscribe(GossipTopic{ForkDigest: digest, Type: GossipBlobSidecar, Subnet: 6}.String()))
	assert.False(t, sf.CanSubscribe(GossipTopic{ForkDigest: [4]byte{1}, Type: GossipBeaconBlock}.String()))
	assert.False(t, sf.CanSubscribe("/eth2/09090909/beacon_attestation_1/ssz_snappy"))
	assert.False(t, sf.CanSubscribe("random"))
}

func TestSubscriptionFilter_FilterIncomingSubscriptions(t *testing.T) {
	digest := [4]byte{9, 9, 9, 9}
	sf := newSubscriptionFilter(digest)
	good := GossipTopic{ForkDigest: digest, Type: GossipVoluntaryExit}.String()
	yes := true

	subs := []*pubsubpb.RPC_SubOpts{
		{Topicid: &good, Subscribe: &yes},
		{Topicid: stringPtr("/eth2/00000000/voluntary_exit/ssz_snappy"), Subscribe: &yes},
	}
	filtered, err := sf.FilterIncomingSubscriptions(peer.ID("p"), subs)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, good, filtered[0].GetTopicid())

	many := make([]*pubsubpb.RPC_SubOpts, pubsubSubscriptionRequestLimit+1)
	for i := range many {
		many[i] = &pubsubpb.RPC_SubOpts{Topicid: stringPtr(fmt.Sprintf("t%d", i)), Subscribe: &yes}
	}
	_, err = sf.FilterIncomingSubscriptions(peer.ID("p"), many)
	assert.ErrorIs(t, err, pubsub.ErrTooManySubscriptions)
}

func stringPtr(s string) *string {
	return &s
}
