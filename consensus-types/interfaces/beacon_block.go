package interfaces

import (
	field_params "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
)

// ReadOnlySignedBeaconBlock is an interface describing the method set of
// a signed beacon block.
type ReadOnlySignedBeaconBlock interface {
	Block() ReadOnlyBeaconBlock
	Signature() [field_params.BLSSignatureLength]byte
	IsNil() bool
	Proto() (any, error)
	MarshalSSZ() ([]byte, error)
	SizeSSZ() int
	Version() int
}

// ReadOnlyBeaconBlock describes an interface which states the methods
// employed by an object that is a beacon block.
type ReadOnlyBeaconBlock interface {
	Slot() primitives.Slot
	ProposerIndex() primitives.ValidatorIndex
	ParentRoot() [field_params.RootLength]byte
	StateRoot() [field_params.RootLength]byte
	Body() ReadOnlyBeaconBlockBody
	IsNil() bool
	HashTreeRoot() ([field_params.RootLength]byte, error)
	Version() int
}

// ReadOnlyBeaconBlockBody describes the method set employed by an object
// that is a beacon block body.
type ReadOnlyBeaconBlockBody interface {
	RandaoReveal() [field_params.BLSSignatureLength]byte
	Graffiti() [field_params.RootLength]byte
	VoluntaryExits() []*ethpb.SignedVoluntaryExit
	SyncAggregate() *ethpb.SyncAggregate
	Execution() *ethpb.ExecutionPayload
	Transactions() [][]byte
	BLSToExecutionChanges() []*ethpb.SignedBLSToExecutionChange
	BlobKzgCommitments() ([][]byte, error)
	IsNil() bool
	HashTreeRoot() ([field_params.RootLength]byte, error)
}
