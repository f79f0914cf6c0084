package eth

import (
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

type BeaconBlockHeader struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    []byte `ssz-size:"32"`
	StateRoot     []byte `ssz-size:"32"`
	BodyRoot      []byte `ssz-size:"32"`
}

// ExecutionPayload is the execution-layer block embedded in a beacon block body.
// Transactions are opaque to the consensus layer apart from blob versioned hashes.
type ExecutionPayload struct {
	ParentHash    []byte   `ssz-size:"32"`
	FeeRecipient  []byte   `ssz-size:"20"`
	StateRoot     []byte   `ssz-size:"32"`
	ReceiptsRoot  []byte   `ssz-size:"32"`
	PrevRandao    []byte   `ssz-size:"32"`
	BlockNumber   uint64
	GasLimit      uint64
	GasUsed       uint64
	Timestamp     uint64
	BaseFeePerGas []byte   `ssz-size:"32"`
	BlockHash     []byte   `ssz-size:"32"`
	Transactions  [][]byte `ssz-size:"?,?" ssz-max:"1048576,1073741824"`
	BlobGasUsed   uint64
	ExcessBlobGas uint64
}

type BeaconBlockBodyCapella struct {
	RandaoReveal          []byte                        `ssz-size:"96"`
	Graffiti              []byte                        `ssz-size:"32"`
	VoluntaryExits        []*SignedVoluntaryExit        `ssz-max:"16"`
	SyncAggregate         *SyncAggregate
	ExecutionPayload      *ExecutionPayload
	BlsToExecutionChanges []*SignedBLSToExecutionChange `ssz-max:"16"`
}

type BeaconBlockCapella struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    []byte `ssz-size:"32"`
	StateRoot     []byte `ssz-size:"32"`
	Body          *BeaconBlockBodyCapella
}

type SignedBeaconBlockCapella struct {
	Block     *BeaconBlockCapella
	Signature []byte `ssz-size:"96"`
}

// BeaconBlockBodyDeneb extends the Capella body with the KZG commitments of the
// blobs the block's transactions reference.
type BeaconBlockBodyDeneb struct {
	RandaoReveal          []byte                        `ssz-size:"96"`
	Graffiti              []byte                        `ssz-size:"32"`
	VoluntaryExits        []*SignedVoluntaryExit        `ssz-max:"16"`
	SyncAggregate         *SyncAggregate
	ExecutionPayload      *ExecutionPayload
	BlsToExecutionChanges []*SignedBLSToExecutionChange `ssz-max:"16"`
	BlobKzgCommitments    [][]byte                      `ssz-size:"?,48" ssz-max:"4096"`
}

type BeaconBlockDeneb struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    []byte `ssz-size:"32"`
	StateRoot     []byte `ssz-size:"32"`
	Body          *BeaconBlockBodyDeneb
}

type SignedBeaconBlockDeneb struct {
	Block     *BeaconBlockDeneb
	Signature []byte `ssz-size:"96"`
}
