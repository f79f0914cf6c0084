package p2p

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/encoding/ssz"
	"github.com/prysmaticlabs/blobnode/runtime/version"
)

var errUnsupportedForkVersion = errors.New("unsupported fork version")

// ComputeForkDigest returns the first four bytes of hash_tree_root(ForkData), which every gossip
// topic carries.
func ComputeForkDigest(forkVersion [4]byte, genesisValidatorsRoot [32]byte) ([4]byte, error) {
	root, err := ssz.ForkDataRoot(forkVersion, genesisValidatorsRoot)
	if err != nil {
		return [4]byte{}, errors.Wrap(err, "could not compute fork data root")
	}
	var digest [4]byte
	copy(digest[:], root[:4])
	return digest, nil
}

// forkVersionToRuntime maps a configured fork version to the runtime version of the containers
// gossiped under it.
func forkVersionToRuntime(v [4]byte) (int, error) {
	cfg := params.BeaconConfig()
	switch {
	case bytes.Equal(v[:], cfg.DenebForkVersion):
		return version.Deneb, nil
	case bytes.Equal(v[:], cfg.CapellaForkVersion):
		return version.Capella, nil
	default:
		return 0, errors.Wrapf(errUnsupportedForkVersion, "%#x", v)
	}
}
