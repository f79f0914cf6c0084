package blocks

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/consensus-types/interfaces"
	eth "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/blobnode/runtime/version"
)

// NewSignedBeaconBlock creates a signed beacon block from a protobuf signed beacon block.
func NewSignedBeaconBlock(i any) (interfaces.ReadOnlySignedBeaconBlock, error) {
	switch b := i.(type) {
	case nil:
		return nil, ErrNilObject
	case *eth.SignedBeaconBlockCapella:
		return initSignedBlockFromProtoCapella(b)
	case *eth.SignedBeaconBlockDeneb:
		return initSignedBlockFromProtoDeneb(b)
	default:
		return nil, errors.Wrapf(ErrUnsupportedSignedBeaconBlock, "unable to create block from type %T", i)
	}
}

// UnmarshalSignedBeaconBlock decodes the ssz encoding of a signed block of the given fork version.
func UnmarshalSignedBeaconBlock(ver int, enc []byte) (interfaces.ReadOnlySignedBeaconBlock, error) {
	switch ver {
	case version.Capella:
		pb := &eth.SignedBeaconBlockCapella{}
		if err := pb.UnmarshalSSZ(enc); err != nil {
			return nil, errors.Wrap(err, "could not unmarshal capella block")
		}
		return NewSignedBeaconBlock(pb)
	case version.Deneb:
		pb := &eth.SignedBeaconBlockDeneb{}
		if err := pb.UnmarshalSSZ(enc); err != nil {
			return nil, errors.Wrap(err, "could not unmarshal deneb block")
		}
		return NewSignedBeaconBlock(pb)
	default:
		return nil, errors.Wrapf(ErrUnsupportedVersion, "%s", version.String(ver))
	}
}

// BeaconBlockIsNil checks if any composite field of input signed beacon block is nil.
// Access to these nil fields will result in run time panic,
// it is recommended to run these checks as first line of defense.
func BeaconBlockIsNil(b interfaces.ReadOnlySignedBeaconBlock) error {
	if b == nil || b.IsNil() {
		return ErrNilSignedBeaconBlock
	}
	if b.Block().IsNil() {
		return ErrNilBeaconBlock
	}
	if b.Block().Body().IsNil() {
		return ErrNilBeaconBlockBody
	}
	return nil
}
