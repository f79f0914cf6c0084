package params

import (
	"time"

	"github.com/mohae/deepcopy"
)

// NetworkConfig defines the gossip network parameters.
type NetworkConfig struct {
	GossipMaxSize              uint64        `yaml:"GOSSIP_MAX_SIZE"` // GossipMaxSize is the maximum allowed size of uncompressed gossip messages.
	SeenTTL                    time.Duration // SeenTTL is how long message ids are remembered by gossipsub.
	SeenCacheSize              int           // SeenCacheSize bounds each per-topic dedupe cache.
	PubsubQueueSize            int           // PubsubQueueSize is the outbound and validation queue length.
	MessageDomainInvalidSnappy [4]byte       `yaml:"MESSAGE_DOMAIN_INVALID_SNAPPY"` // MessageDomainInvalidSnappy is the 4-byte domain for gossip message-id isolation of invalid snappy messages.
	MessageDomainValidSnappy   [4]byte       `yaml:"MESSAGE_DOMAIN_VALID_SNAPPY"`   // MessageDomainValidSnappy is the 4-byte domain for gossip message-id isolation of valid snappy messages.
}

var networkConfig = &NetworkConfig{
	GossipMaxSize:              1 << 20,
	SeenTTL:                    550 * 12 * time.Second,
	SeenCacheSize:              1024,
	PubsubQueueSize:            600,
	MessageDomainInvalidSnappy: [4]byte{0o0, 0o0, 0o0, 0o0},
	MessageDomainValidSnappy:   [4]byte{0o1, 0o0, 0o0, 0o0},
}

// BeaconNetworkConfig returns the current network config for
// the beacon chain.
func BeaconNetworkConfig() *NetworkConfig {
	return networkConfig
}

// OverrideBeaconNetworkConfig will override the network
// config with the added argument.
func OverrideBeaconNetworkConfig(cfg *NetworkConfig) {
	networkConfig = cfg.Copy()
}

// Copy returns Copy of the config object.
func (c *NetworkConfig) Copy() *NetworkConfig {
	config, ok := deepcopy.Copy(*c).(NetworkConfig)
	if !ok {
		config = *networkConfig
	}
	return &config
}
