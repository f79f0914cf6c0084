package params

import (
	"math"
	"time"
)

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	if mainnetBeaconConfig.ForkVersionSchedule == nil {
		mainnetBeaconConfig.InitializeForkSchedule()
	}
	return mainnetBeaconConfig
}

var mainnetBeaconConfig = &BeaconChainConfig{
	PresetBase: "mainnet",
	ConfigName: MainnetName,

	SecondsPerSlot: 12,
	SlotsPerEpoch:  32,
	MinGenesisTime: 1606824000,
	GenesisDelay:   604800,
	FarFutureEpoch: math.MaxUint64,

	GenesisForkVersion:   []byte{0, 0, 0, 0},
	AltairForkVersion:    []byte{1, 0, 0, 0},
	AltairForkEpoch:      74240,
	BellatrixForkVersion: []byte{2, 0, 0, 0},
	BellatrixForkEpoch:   144896,
	CapellaForkVersion:   []byte{3, 0, 0, 0},
	CapellaForkEpoch:     194048,
	DenebForkVersion:     []byte{4, 0, 0, 0},
	DenebForkEpoch:       269568,

	BlobTxType:                        5,
	VersionedHashVersionKzg:           1,
	OpaqueTxMessageOffset:             70,
	OpaqueTxBlobVersionedHashesOffset: 70 + 188,
	MaxBlobsPerBlock:                  6,
	BlobsidecarSubnetCount:            6,
	MinEpochsForBlobsSidecarsRequest:  4096,

	MaximumGossipClockDisparity: 500 * time.Millisecond,
	MeshPeerPollInterval:        500 * time.Millisecond,
	PendingBlockInputTTL:        time.Minute,
	ReconcileInterval:           time.Minute,
}
