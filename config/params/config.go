// Package params defines important constants that are essential to the node's services.
package params

import (
	"time"

	fieldparams "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	"github.com/prysmaticlabs/blobnode/encoding/bytesutil"
)

// BeaconChainConfig contains constant configs for node to participate in beacon chain.
type BeaconChainConfig struct {
	PresetBase string `yaml:"PRESET_BASE" spec:"true"`
	ConfigName string `yaml:"CONFIG_NAME" spec:"true"`

	// Time parameters.
	SecondsPerSlot uint64           `yaml:"SECONDS_PER_SLOT" spec:"true"`
	SlotsPerEpoch  primitives.Slot  `yaml:"SLOTS_PER_EPOCH" spec:"true"`
	MinGenesisTime uint64           `yaml:"MIN_GENESIS_TIME" spec:"true"`
	GenesisDelay   uint64           `yaml:"GENESIS_DELAY" spec:"true"`
	FarFutureEpoch primitives.Epoch `yaml:"FAR_FUTURE_EPOCH"`

	// Fork-related values.
	GenesisForkVersion   []byte           `yaml:"GENESIS_FORK_VERSION" spec:"true"`
	AltairForkVersion    []byte           `yaml:"ALTAIR_FORK_VERSION" spec:"true"`
	AltairForkEpoch      primitives.Epoch `yaml:"ALTAIR_FORK_EPOCH" spec:"true"`
	BellatrixForkVersion []byte           `yaml:"BELLATRIX_FORK_VERSION" spec:"true"`
	BellatrixForkEpoch   primitives.Epoch `yaml:"BELLATRIX_FORK_EPOCH" spec:"true"`
	CapellaForkVersion   []byte           `yaml:"CAPELLA_FORK_VERSION" spec:"true"`
	CapellaForkEpoch     primitives.Epoch `yaml:"CAPELLA_FORK_EPOCH" spec:"true"`
	DenebForkVersion     []byte           `yaml:"DENEB_FORK_VERSION" spec:"true"`
	DenebForkEpoch       primitives.Epoch `yaml:"DENEB_FORK_EPOCH" spec:"true"`
	ForkVersionSchedule  map[[fieldparams.VersionLength]byte]primitives.Epoch
	ForkVersionNames     map[[fieldparams.VersionLength]byte]string

	// Blob values.
	BlobTxType                        uint8            // BlobTxType is the type byte of an opaque blob-carrying transaction.
	VersionedHashVersionKzg           uint8            `yaml:"VERSIONED_HASH_VERSION_KZG" spec:"true"`
	OpaqueTxMessageOffset             int              // OpaqueTxMessageOffset is where the signed message begins inside an opaque blob transaction.
	OpaqueTxBlobVersionedHashesOffset int              // OpaqueTxBlobVersionedHashesOffset is where the u32 offset to the versioned hashes is stored.
	MaxBlobsPerBlock                  uint64           `yaml:"MAX_BLOBS_PER_BLOCK" spec:"true"`
	BlobsidecarSubnetCount            uint64           `yaml:"BLOB_SIDECAR_SUBNET_COUNT" spec:"true"`
	MinEpochsForBlobsSidecarsRequest  primitives.Epoch `yaml:"MIN_EPOCHS_FOR_BLOB_SIDECARS_REQUESTS" spec:"true"`

	// Gossip timing.
	MaximumGossipClockDisparity time.Duration // MaximumGossipClockDisparity is the maximum tolerated clock skew for gossiped messages.
	MeshPeerPollInterval        time.Duration // MeshPeerPollInterval is how often mesh-peer waits re-check the mesh.
	PendingBlockInputTTL        time.Duration // PendingBlockInputTTL is how long a block waits for its blob sidecars.
	ReconcileInterval           time.Duration // ReconcileInterval is how often unreconciled eager writes are swept.
}

// InitializeForkSchedule initializes the schedules forks baked into the config.
func (b *BeaconChainConfig) InitializeForkSchedule() {
	b.ForkVersionSchedule = configForkSchedule(b)
	b.ForkVersionNames = configForkNames(b)
}

func configForkSchedule(b *BeaconChainConfig) map[[fieldparams.VersionLength]byte]primitives.Epoch {
	fvs := map[[fieldparams.VersionLength]byte]primitives.Epoch{}
	fvs[bytesutil.ToBytes4(b.GenesisForkVersion)] = 0
	fvs[bytesutil.ToBytes4(b.AltairForkVersion)] = b.AltairForkEpoch
	fvs[bytesutil.ToBytes4(b.BellatrixForkVersion)] = b.BellatrixForkEpoch
	fvs[bytesutil.ToBytes4(b.CapellaForkVersion)] = b.CapellaForkEpoch
	fvs[bytesutil.ToBytes4(b.DenebForkVersion)] = b.DenebForkEpoch
	return fvs
}

func configForkNames(b *BeaconChainConfig) map[[fieldparams.VersionLength]byte]string {
	fvn := map[[fieldparams.VersionLength]byte]string{}
	fvn[bytesutil.ToBytes4(b.GenesisForkVersion)] = "phase0"
	fvn[bytesutil.ToBytes4(b.AltairForkVersion)] = "altair"
	fvn[bytesutil.ToBytes4(b.BellatrixForkVersion)] = "bellatrix"
	fvn[bytesutil.ToBytes4(b.CapellaForkVersion)] = "capella"
	fvn[bytesutil.ToBytes4(b.DenebForkVersion)] = "deneb"
	return fvn
}

// ForkVersionAtEpoch returns the fork version active at the given epoch.
func (b *BeaconChainConfig) ForkVersionAtEpoch(e primitives.Epoch) [fieldparams.VersionLength]byte {
	switch {
	case e >= b.DenebForkEpoch:
		return bytesutil.ToBytes4(b.DenebForkVersion)
	case e >= b.CapellaForkEpoch:
		return bytesutil.ToBytes4(b.CapellaForkVersion)
	case e >= b.BellatrixForkEpoch:
		return bytesutil.ToBytes4(b.BellatrixForkVersion)
	case e >= b.AltairForkEpoch:
		return bytesutil.ToBytes4(b.AltairForkVersion)
	default:
		return bytesutil.ToBytes4(b.GenesisForkVersion)
	}
}
