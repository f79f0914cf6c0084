package p2p

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p/encoder"
)

const (
	// BlockTopicName is the gossip name of signed beacon blocks.
	BlockTopicName = "beacon_block"
	// BlobSidecarTopicPrefix is followed by the subnet id of a blob sidecar topic.
	BlobSidecarTopicPrefix = "blob_sidecar_"
	// ExitTopicName is the gossip name of signed voluntary exits.
	ExitTopicName = "voluntary_exit"
	// BLSToExecutionChangeTopicName is the gossip name of signed withdrawal credential changes.
	BLSToExecutionChangeTopicName = "bls_to_execution_change"
	// SyncContributionAndProofTopicName is the gossip name of signed sync committee contributions.
	SyncContributionAndProofTopicName = "sync_committee_contribution_and_proof"
	// LightClientFinalityUpdateTopicName is the gossip name of light client finality updates.
	LightClientFinalityUpdateTopicName = "light_client_finality_update"
	// LightClientOptimisticUpdateTopicName is the gossip name of light client optimistic updates.
	LightClientOptimisticUpdateTopicName = "light_client_optimistic_update"

	topicPrefix = "eth2"
)

// ErrUnknownTopic is returned for topics that do not parse into a known gossip type.
var ErrUnknownTopic = errors.New("unknown gossip topic")

// GossipType identifies a kind of gossip message independently of the fork digest and subnet.
type GossipType int

const (
	GossipBeaconBlock GossipType = iota
	GossipBlobSidecar
	GossipVoluntaryExit
	GossipBLSToExecutionChange
	GossipSyncCommitteeContribution
	GossipLightClientFinalityUpdate
	GossipLightClientOptimisticUpdate
)

var gossipTypeNames = map[GossipType]string{
	GossipBeaconBlock:                 BlockTopicName,
	GossipBlobSidecar:                 BlobSidecarTopicPrefix + "{subnet}",
	GossipVoluntaryExit:               ExitTopicName,
	GossipBLSToExecutionChange:        BLSToExecutionChangeTopicName,
	GossipSyncCommitteeContribution:   SyncContributionAndProofTopicName,
	GossipLightClientFinalityUpdate:   LightClientFinalityUpdateTopicName,
	GossipLightClientOptimisticUpdate: LightClientOptimisticUpdateTopicName,
}

func (t GossipType) String() string {
	if n, ok := gossipTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// AllGossipTypes lists every gossip type the node understands.
func AllGossipTypes() []GossipType {
	return []GossipType{
		GossipBeaconBlock,
		GossipBlobSidecar,
		GossipVoluntaryExit,
		GossipBLSToExecutionChange,
		GossipSyncCommitteeContribution,
		GossipLightClientFinalityUpdate,
		GossipLightClientOptimisticUpdate,
	}
}

// GossipTopic is a parsed gossip topic.
type GossipTopic struct {
	ForkDigest [4]byte
	Type       GossipType
	// Subnet is only meaningful for subnet topics such as blob sidecars.
	Subnet uint64
}

// Name returns the message part of the topic.
func (g GossipTopic) Name() string {
	if g.Type == GossipBlobSidecar {
		return BlobSidecarTopicPrefix + strconv.FormatUint(g.Subnet, 10)
	}
	return gossipTypeNames[g.Type]
}

// String renders the full topic: /eth2/<digest>/<name>/ssz_snappy.
func (g GossipTopic) String() string {
	return fmt.Sprintf("/%s/%x/%s%s", topicPrefix, g.ForkDigest, g.Name(), encoder.SszNetworkEncoder{}.ProtocolSuffix())
}

// ParseGossipTopic is the inverse of GossipTopic.String.
func ParseGossipTopic(topic string) (GossipTopic, error) {
	parts := strings.Split(topic, "/")
	// The topic must start with a slash, which means the first part will be empty.
	if len(parts) != 5 || parts[0] != "" || parts[1] != topicPrefix || parts[4] != encoder.ProtocolSuffixSSZSnappy {
		return GossipTopic{}, errors.Wrapf(ErrUnknownTopic, "%q", topic)
	}
	var g GossipTopic
	digest, err := decodeDigest(parts[2])
	if err != nil {
		return GossipTopic{}, errors.Wrapf(ErrUnknownTopic, "%q: %v", topic, err)
	}
	g.ForkDigest = digest
	name := parts[3]
	if strings.HasPrefix(name, BlobSidecarTopicPrefix) {
		subnet, err := strconv.ParseUint(strings.TrimPrefix(name, BlobSidecarTopicPrefix), 10, 64)
		if err != nil {
			return GossipTopic{}, errors.Wrapf(ErrUnknownTopic, "%q: bad subnet", topic)
		}
		g.Type = GossipBlobSidecar
		g.Subnet = subnet
		return g, nil
	}
	for t, n := range gossipTypeNames {
		if t != GossipBlobSidecar && n == name {
			g.Type = t
			return g, nil
		}
	}
	return GossipTopic{}, errors.Wrapf(ErrUnknownTopic, "%q", topic)
}

func decodeDigest(s string) ([4]byte, error) {
	var d [4]byte
	b, err := hexutil.Decode("0x" + s)
	if err != nil {
		return d, err
	}
	if len(b) != len(d) {
		return d, errors.Errorf("fork digest %q has wrong length", s)
	}
	copy(d[:], b)
	return d, nil
}
