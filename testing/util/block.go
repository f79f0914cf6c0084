package util

import (
	"testing"

	"github.com/prysmaticlabs/blobnode/config/params"
	field_params "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/stretchr/testify/require"
)

// NewBeaconBlockCapella creates a capella block with minimum marshalable fields.
func NewBeaconBlockCapella() *ethpb.SignedBeaconBlockCapella {
	return HydrateSignedBeaconBlockCapella(&ethpb.SignedBeaconBlockCapella{})
}

// NewBeaconBlockDeneb creates a deneb block with minimum marshalable fields.
func NewBeaconBlockDeneb() *ethpb.SignedBeaconBlockDeneb {
	return HydrateSignedBeaconBlockDeneb(&ethpb.SignedBeaconBlockDeneb{})
}

// HydrateSignedBeaconBlockCapella hydrates a signed capella block with correct field length sizes
// to comply with fssz marshalling and unmarshalling rules.
func HydrateSignedBeaconBlockCapella(b *ethpb.SignedBeaconBlockCapella) *ethpb.SignedBeaconBlockCapella {
	if b.Signature == nil {
		b.Signature = make([]byte, field_params.BLSSignatureLength)
	}
	if b.Block == nil {
		b.Block = &ethpb.BeaconBlockCapella{}
	}
	if b.Block.ParentRoot == nil {
		b.Block.ParentRoot = make([]byte, field_params.RootLength)
	}
	if b.Block.StateRoot == nil {
		b.Block.StateRoot = make([]byte, field_params.RootLength)
	}
	if b.Block.Body == nil {
		b.Block.Body = &ethpb.BeaconBlockBodyCapella{}
	}
	body := b.Block.Body
	if body.RandaoReveal == nil {
		body.RandaoReveal = make([]byte, field_params.BLSSignatureLength)
	}
	if body.Graffiti == nil {
		body.Graffiti = make([]byte, field_params.RootLength)
	}
	body.SyncAggregate = hydrateSyncAggregate(body.SyncAggregate)
	body.ExecutionPayload = HydrateExecutionPayload(body.ExecutionPayload)
	return b
}

// HydrateSignedBeaconBlockDeneb hydrates a signed deneb block with correct field length sizes
// to comply with fssz marshalling and unmarshalling rules.
func HydrateSignedBeaconBlockDeneb(b *ethpb.SignedBeaconBlockDeneb) *ethpb.SignedBeaconBlockDeneb {
	if b.Signature == nil {
		b.Signature = make([]byte, field_params.BLSSignatureLength)
	}
	if b.Block == nil {
		b.Block = &ethpb.BeaconBlockDeneb{}
	}
	if b.Block.ParentRoot == nil {
		b.Block.ParentRoot = make([]byte, field_params.RootLength)
	}
	if b.Block.StateRoot == nil {
		b.Block.StateRoot = make([]byte, field_params.RootLength)
	}
	if b.Block.Body == nil {
		b.Block.Body = &ethpb.BeaconBlockBodyDeneb{}
	}
	body := b.Block.Body
	if body.RandaoReveal == nil {
		body.RandaoReveal = make([]byte, field_params.BLSSignatureLength)
	}
	if body.Graffiti == nil {
		body.Graffiti = make([]byte, field_params.RootLength)
	}
	body.SyncAggregate = hydrateSyncAggregate(body.SyncAggregate)
	body.ExecutionPayload = HydrateExecutionPayload(body.ExecutionPayload)
	return b
}

// HydrateExecutionPayload fills the fixed size fields of an execution payload.
func HydrateExecutionPayload(p *ethpb.ExecutionPayload) *ethpb.ExecutionPayload {
	if p == nil {
		p = &ethpb.ExecutionPayload{}
	}
	if p.ParentHash == nil {
		p.ParentHash = make([]byte, field_params.RootLength)
	}
	if p.FeeRecipient == nil {
		p.FeeRecipient = make([]byte, field_params.FeeRecipientLength)
	}
	if p.StateRoot == nil {
		p.StateRoot = make([]byte, field_params.RootLength)
	}
	if p.ReceiptsRoot == nil {
		p.ReceiptsRoot = make([]byte, field_params.RootLength)
	}
	if p.PrevRandao == nil {
		p.PrevRandao = make([]byte, field_params.RootLength)
	}
	if p.BaseFeePerGas == nil {
		p.BaseFeePerGas = make([]byte, field_params.RootLength)
	}
	if p.BlockHash == nil {
		p.BlockHash = make([]byte, field_params.RootLength)
	}
	if p.Transactions == nil {
		p.Transactions = make([][]byte, 0)
	}
	return p
}

func hydrateSyncAggregate(a *ethpb.SyncAggregate) *ethpb.SyncAggregate {
	if a == nil {
		a = &ethpb.SyncAggregate{}
	}
	if a.SyncCommitteeBits == nil {
		a.SyncCommitteeBits = bitfield.NewBitvector512()
	}
	if a.SyncCommitteeSignature == nil {
		a.SyncCommitteeSignature = make([]byte, field_params.BLSSignatureLength)
	}
	return a
}

// GenerateTestCapellaBlock builds a capella ROBlock at slot on top of parent.
func GenerateTestCapellaBlock(t testing.TB, parent [32]byte, slot primitives.Slot) blocks.ROBlock {
	pb := NewBeaconBlockCapella()
	pb.Block.Slot = slot
	pb.Block.ParentRoot = parent[:]
	pb.Block.Body.ExecutionPayload.BlockNumber = uint64(slot)
	sb, err := blocks.NewSignedBeaconBlock(pb)
	require.NoError(t, err)
	rb, err := blocks.NewROBlock(sb)
	require.NoError(t, err)
	return rb
}

// DenebSlot returns the first slot of the deneb fork under the current config.
func DenebSlot() primitives.Slot {
	cfg := params.BeaconConfig()
	return cfg.DenebForkEpoch.StartSlot(uint64(cfg.SlotsPerEpoch))
}
