package blocks

import (
	"fmt"

	"github.com/pkg/errors"
	eth "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/blobnode/runtime/version"
)

var (
	// ErrBlobInputMismatch is returned when the sidecars handed to a post-blob input do not line up
	// with the block's commitment list.
	ErrBlobInputMismatch = errors.New("blob sidecars do not match block commitments")
	// ErrUnknownBlockInput is returned by consumers that meet a BlockInput variant they do not handle.
	ErrUnknownBlockInput = errors.New("unknown block input variant")
)

// BlockSource records how a block reached the node.
type BlockSource int

const (
	BlockSourceGossip BlockSource = iota
	BlockSourceRangeSync
	BlockSourceByRoot
	BlockSourceAPI
)

func (s BlockSource) String() string {
	switch s {
	case BlockSourceGossip:
		return "gossip"
	case BlockSourceRangeSync:
		return "range_sync"
	case BlockSourceByRoot:
		return "by_root"
	case BlockSourceAPI:
		return "api"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// BlockInputType tags the variant of a BlockInput.
type BlockInputType int

const (
	BlockInputPreBlob BlockInputType = iota
	BlockInputPostBlob
)

func (t BlockInputType) String() string {
	switch t {
	case BlockInputPreBlob:
		return "pre_blob"
	case BlockInputPostBlob:
		return "post_blob"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// BlockInputOption customises a BlockInput at construction.
type BlockInputOption func(*inputCommon)

// WithSource records where the block came from. The default is BlockSourceGossip.
func WithSource(s BlockSource) BlockInputOption {
	return func(c *inputCommon) { c.source = s }
}

// WithSerializedData attaches the ssz bytes the block was received as.
func WithSerializedData(data []byte) BlockInputOption {
	return func(c *inputCommon) { c.serializedData = data }
}

type inputCommon struct {
	block          ROBlock
	source         BlockSource
	serializedData []byte
}

// BlockInput is a block on its way through import, optionally with the raw bytes it
// arrived as. The concrete type is always PreBlobBlockInput or PostBlobBlockInput;
// consumers switch on the type and must reject anything else.
type BlockInput interface {
	Type() BlockInputType
	Block() ROBlock
	Root() [32]byte
	Source() BlockSource
	// SerializedData returns the ssz bytes the block was received as, or nil when they must be
	// derived from the block.
	SerializedData() []byte
	// WithSerializedBytes returns a copy of the input carrying data. The receiver is not modified.
	WithSerializedBytes(data []byte) BlockInput
	// Blobs returns the sidecars of a post-blob input and an error for every other variant.
	Blobs() ([]*eth.BlobSidecar, error)
	isBlockInput()
}

// PreBlobBlockInput is a block from a fork without blob commitments.
type PreBlobBlockInput struct {
	inputCommon
}

// PostBlobBlockInput is a block whose commitments are matched index for index by Sidecars.
type PostBlobBlockInput struct {
	inputCommon
	sidecars []*eth.BlobSidecar
}

var (
	_ BlockInput = PreBlobBlockInput{}
	_ BlockInput = PostBlobBlockInput{}
)

// NewPreBlobBlockInput wraps a block from a fork that carries no blobs.
func NewPreBlobBlockInput(b ROBlock, opts ...BlockInputOption) (PreBlobBlockInput, error) {
	if err := BeaconBlockIsNil(b.ReadOnlySignedBeaconBlock); err != nil {
		return PreBlobBlockInput{}, err
	}
	if b.Version() >= version.Deneb {
		return PreBlobBlockInput{}, errors.Wrapf(ErrUnsupportedVersion, "%s block needs a post-blob input", version.String(b.Version()))
	}
	return PreBlobBlockInput{inputCommon: newInputCommon(b, opts)}, nil
}

// NewPostBlobBlockInput wraps a block together with one sidecar per blob commitment, in commitment order.
func NewPostBlobBlockInput(b ROBlock, sidecars []*eth.BlobSidecar, opts ...BlockInputOption) (PostBlobBlockInput, error) {
	if err := BeaconBlockIsNil(b.ReadOnlySignedBeaconBlock); err != nil {
		return PostBlobBlockInput{}, err
	}
	commitments, err := b.Block().Body().BlobKzgCommitments()
	if err != nil {
		return PostBlobBlockInput{}, err
	}
	if len(commitments) != len(sidecars) {
		return PostBlobBlockInput{}, errors.Wrapf(ErrBlobInputMismatch, "block has %d commitments, got %d sidecars", len(commitments), len(sidecars))
	}
	for i, sc := range sidecars {
		if sc == nil {
			return PostBlobBlockInput{}, errors.Wrapf(ErrNilObject, "sidecar %d", i)
		}
		if sc.Index != uint64(i) {
			return PostBlobBlockInput{}, errors.Wrapf(ErrBlobInputMismatch, "sidecar at position %d has index %d", i, sc.Index)
		}
	}
	return PostBlobBlockInput{inputCommon: newInputCommon(b, opts), sidecars: sidecars}, nil
}

// NewBlockInput picks the variant matching the block's fork. Sidecars are ignored for pre-blob forks.
func NewBlockInput(b ROBlock, sidecars []*eth.BlobSidecar, opts ...BlockInputOption) (BlockInput, error) {
	if b.ReadOnlySignedBeaconBlock != nil && b.Version() >= version.Deneb {
		return NewPostBlobBlockInput(b, sidecars, opts...)
	}
	return NewPreBlobBlockInput(b, opts...)
}

func newInputCommon(b ROBlock, opts []BlockInputOption) inputCommon {
	c := inputCommon{block: b, source: BlockSourceGossip}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Block returns the wrapped block.
func (c inputCommon) Block() ROBlock { return c.block }

// Root returns the cached block root.
func (c inputCommon) Root() [32]byte { return c.block.Root() }

// Source returns where the block came from.
func (c inputCommon) Source() BlockSource { return c.source }

// SerializedData returns the received bytes, if any.
func (c inputCommon) SerializedData() []byte { return c.serializedData }

// WithSerializedBytes returns a copy of the input carrying data.
func (in PreBlobBlockInput) WithSerializedBytes(data []byte) BlockInput {
	in.serializedData = data
	return in
}

// Type reports BlockInputPreBlob.
func (PreBlobBlockInput) Type() BlockInputType { return BlockInputPreBlob }

// Blobs always fails for a block without blob commitments.
func (in PreBlobBlockInput) Blobs() ([]*eth.BlobSidecar, error) {
	return nil, errors.Wrapf(errNotSupported("Blobs", in.block.Version()), "pre-blob input %#x", in.Root())
}

func (PreBlobBlockInput) isBlockInput() {}

// Type reports BlockInputPostBlob.
func (PostBlobBlockInput) Type() BlockInputType { return BlockInputPostBlob }

// Blobs returns the blob sidecars, index-aligned with the block's commitments.
func (in PostBlobBlockInput) Blobs() ([]*eth.BlobSidecar, error) { return in.sidecars, nil }

// WithSerializedBytes returns a copy of the input carrying data.
func (in PostBlobBlockInput) WithSerializedBytes(data []byte) BlockInput {
	in.serializedData = data
	return in
}

func (PostBlobBlockInput) isBlockInput() {}
