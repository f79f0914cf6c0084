package blocks

import (
	field_params "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/consensus-types/interfaces"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	eth "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/blobnode/runtime/version"
)

// Signature returns the respective block signature.
func (b *SignedBeaconBlock) Signature() [field_params.BLSSignatureLength]byte {
	return b.signature
}

// Block returns the underlying beacon block object.
func (b *SignedBeaconBlock) Block() interfaces.ReadOnlyBeaconBlock {
	return b.block
}

// IsNil checks if the underlying beacon block is nil.
func (b *SignedBeaconBlock) IsNil() bool {
	return b == nil || b.block.IsNil()
}

// Version of the underlying protobuf object.
func (b *SignedBeaconBlock) Version() int {
	return b.version
}

// MarshalSSZ marshals the signed beacon block to its relevant ssz form.
func (b *SignedBeaconBlock) MarshalSSZ() ([]byte, error) {
	pb, err := b.Proto()
	if err != nil {
		return nil, err
	}
	switch b.version {
	case version.Capella:
		return pb.(*eth.SignedBeaconBlockCapella).MarshalSSZ()
	case version.Deneb:
		return pb.(*eth.SignedBeaconBlockDeneb).MarshalSSZ()
	default:
		return nil, errNotSupported("MarshalSSZ", b.version)
	}
}

// SizeSSZ returns the size of the serialized signed block.
func (b *SignedBeaconBlock) SizeSSZ() int {
	pb, err := b.Proto()
	if err != nil {
		return 0
	}
	switch b.version {
	case version.Capella:
		return pb.(*eth.SignedBeaconBlockCapella).SizeSSZ()
	case version.Deneb:
		return pb.(*eth.SignedBeaconBlockDeneb).SizeSSZ()
	default:
		return 0
	}
}

// Slot returns the respective slot of the block.
func (b *BeaconBlock) Slot() primitives.Slot {
	return b.slot
}

// ProposerIndex returns the proposer index of the beacon block.
func (b *BeaconBlock) ProposerIndex() primitives.ValidatorIndex {
	return b.proposerIndex
}

// ParentRoot returns the parent root of beacon block.
func (b *BeaconBlock) ParentRoot() [field_params.RootLength]byte {
	return b.parentRoot
}

// StateRoot returns the state root of the beacon block.
func (b *BeaconBlock) StateRoot() [field_params.RootLength]byte {
	return b.stateRoot
}

// Body returns the underlying block body.
func (b *BeaconBlock) Body() interfaces.ReadOnlyBeaconBlockBody {
	return b.body
}

// IsNil checks if the beacon block is nil.
func (b *BeaconBlock) IsNil() bool {
	return b == nil || b.body.IsNil()
}

// Version of the underlying protobuf object.
func (b *BeaconBlock) Version() int {
	return b.version
}

// HashTreeRoot returns the ssz root of the block.
func (b *BeaconBlock) HashTreeRoot() ([field_params.RootLength]byte, error) {
	pb, err := b.Proto()
	if err != nil {
		return [field_params.RootLength]byte{}, err
	}
	switch b.version {
	case version.Capella:
		return pb.(*eth.BeaconBlockCapella).HashTreeRoot()
	case version.Deneb:
		return pb.(*eth.BeaconBlockDeneb).HashTreeRoot()
	default:
		return [field_params.RootLength]byte{}, errNotSupported("HashTreeRoot", b.version)
	}
}

// IsNil checks if the block body is nil.
func (b *BeaconBlockBody) IsNil() bool {
	return b == nil
}

// RandaoReveal returns the randao reveal from the block body.
func (b *BeaconBlockBody) RandaoReveal() [field_params.BLSSignatureLength]byte {
	return b.randaoReveal
}

// Graffiti returns the graffiti in the block.
func (b *BeaconBlockBody) Graffiti() [field_params.RootLength]byte {
	return b.graffiti
}

// VoluntaryExits returns the voluntary exits in the block.
func (b *BeaconBlockBody) VoluntaryExits() []*eth.SignedVoluntaryExit {
	return b.voluntaryExits
}

// SyncAggregate returns the sync aggregate in the block.
func (b *BeaconBlockBody) SyncAggregate() *eth.SyncAggregate {
	return b.syncAggregate
}

// Execution returns the execution payload of the block body.
func (b *BeaconBlockBody) Execution() *eth.ExecutionPayload {
	return b.executionPayload
}

// Transactions returns the opaque transactions of the execution payload.
func (b *BeaconBlockBody) Transactions() [][]byte {
	if b.executionPayload == nil {
		return nil
	}
	return b.executionPayload.Transactions
}

// BLSToExecutionChanges returns the BLS to execution changes in the block.
func (b *BeaconBlockBody) BLSToExecutionChanges() []*eth.SignedBLSToExecutionChange {
	return b.blsToExecutionChanges
}

// BlobKzgCommitments returns the blob kzg commitments in the block.
func (b *BeaconBlockBody) BlobKzgCommitments() ([][]byte, error) {
	switch b.version {
	case version.Deneb:
		return b.blobKzgCommitments, nil
	default:
		return nil, errNotSupported("BlobKzgCommitments", b.version)
	}
}

// HashTreeRoot returns the ssz root of the block body.
func (b *BeaconBlockBody) HashTreeRoot() ([field_params.RootLength]byte, error) {
	pb, err := b.Proto()
	if err != nil {
		return [field_params.RootLength]byte{}, err
	}
	switch b.version {
	case version.Capella:
		return pb.(*eth.BeaconBlockBodyCapella).HashTreeRoot()
	case version.Deneb:
		return pb.(*eth.BeaconBlockBodyDeneb).HashTreeRoot()
	default:
		return [field_params.RootLength]byte{}, errNotSupported("HashTreeRoot", b.version)
	}
}
