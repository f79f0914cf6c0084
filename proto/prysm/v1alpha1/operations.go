package eth

import (
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

// VoluntaryExit is a validator's request to leave the active set, effective from Epoch.
type VoluntaryExit struct {
	Epoch          primitives.Epoch
	ValidatorIndex primitives.ValidatorIndex
}

// SignedVoluntaryExit wraps a VoluntaryExit with the validator's signature.
type SignedVoluntaryExit struct {
	Exit      *VoluntaryExit
	Signature []byte `ssz-size:"96"`
}

// BLSToExecutionChange moves a validator's withdrawal credentials from a BLS key to
// an execution address.
type BLSToExecutionChange struct {
	ValidatorIndex     primitives.ValidatorIndex
	FromBlsPubkey      []byte `ssz-size:"48"`
	ToExecutionAddress []byte `ssz-size:"20"`
}

type SignedBLSToExecutionChange struct {
	Message   *BLSToExecutionChange
	Signature []byte `ssz-size:"96"`
}
