package p2p

import (
	"reflect"

	fastssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/blobnode/runtime/version"
)

// Message is an ssz container that travels over gossip.
type Message interface {
	fastssz.Marshaler
	fastssz.Unmarshaler
}

// gossipTopicMappings represent the gossip type to ssz container map for easy lookup.
var gossipTopicMappings = map[GossipType]func() Message{
	GossipBeaconBlock:                 func() Message { return &ethpb.SignedBeaconBlockDeneb{} },
	GossipBlobSidecar:                 func() Message { return &ethpb.SignedBlobSidecar{} },
	GossipVoluntaryExit:               func() Message { return &ethpb.SignedVoluntaryExit{} },
	GossipBLSToExecutionChange:        func() Message { return &ethpb.SignedBLSToExecutionChange{} },
	GossipSyncCommitteeContribution:   func() Message { return &ethpb.SignedContributionAndProof{} },
	GossipLightClientFinalityUpdate:   func() Message { return &ethpb.LightClientFinalityUpdate{} },
	GossipLightClientOptimisticUpdate: func() Message { return &ethpb.LightClientOptimisticUpdate{} },
}

// GossipTopicMappings returns an empty container to decode messages of gossip type t into,
// versioned by the fork the topic belongs to.
func GossipTopicMappings(t GossipType, forkVersion int) (Message, error) {
	if t == GossipBeaconBlock && forkVersion < version.Deneb {
		return &ethpb.SignedBeaconBlockCapella{}, nil
	}
	newMsg, ok := gossipTopicMappings[t]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTopic, "no container for %s", t)
	}
	return newMsg(), nil
}

// GossipTypeMapping is the inverse of GossipTopicMappings so that an arbitrary ssz message
// can be mapped to a gossip type.
var GossipTypeMapping = make(map[reflect.Type]GossipType, len(gossipTopicMappings)+1)

func init() {
	for k, v := range gossipTopicMappings {
		GossipTypeMapping[reflect.TypeOf(v())] = k
	}
	// Specially handle Capella objects.
	GossipTypeMapping[reflect.TypeOf(&ethpb.SignedBeaconBlockCapella{})] = GossipBeaconBlock
}
