package util

import (
	field_params "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/go-bitfield"
)

// NewSignedVoluntaryExit builds an exit with a zero signature.
func NewSignedVoluntaryExit(epoch primitives.Epoch, idx primitives.ValidatorIndex) *ethpb.SignedVoluntaryExit {
	return &ethpb.SignedVoluntaryExit{
		Exit:      &ethpb.VoluntaryExit{Epoch: epoch, ValidatorIndex: idx},
		Signature: make([]byte, field_params.BLSSignatureLength),
	}
}

// NewSignedBLSToExecutionChange builds a withdrawal credential change for idx. The pubkey and
// address are derived from idx so distinct validators produce distinct messages.
func NewSignedBLSToExecutionChange(idx primitives.ValidatorIndex) *ethpb.SignedBLSToExecutionChange {
	pubkey := make([]byte, field_params.BLSPubkeyLength)
	pubkey[0] = byte(idx)
	pubkey[1] = byte(idx >> 8)
	addr := make([]byte, field_params.FeeRecipientLength)
	addr[0] = byte(idx)
	return &ethpb.SignedBLSToExecutionChange{
		Message: &ethpb.BLSToExecutionChange{
			ValidatorIndex:     idx,
			FromBlsPubkey:      pubkey,
			ToExecutionAddress: addr,
		},
		Signature: make([]byte, field_params.BLSSignatureLength),
	}
}

// NewSignedContributionAndProof builds a contribution with the given participation bits set.
func NewSignedContributionAndProof(slot primitives.Slot, aggregator primitives.ValidatorIndex, participants ...uint64) *ethpb.SignedContributionAndProof {
	bits := bitfield.NewBitvector128()
	for _, p := range participants {
		bits.SetBitAt(p, true)
	}
	return &ethpb.SignedContributionAndProof{
		Message: &ethpb.ContributionAndProof{
			AggregatorIndex: aggregator,
			Contribution: &ethpb.SyncCommitteeContribution{
				Slot:            slot,
				BlockRoot:       make([]byte, field_params.RootLength),
				AggregationBits: bits,
				Signature:       make([]byte, field_params.BLSSignatureLength),
			},
			SelectionProof: make([]byte, field_params.BLSSignatureLength),
		},
		Signature: make([]byte, field_params.BLSSignatureLength),
	}
}

// NewLightClientOptimisticUpdate builds an optimistic update attested at slot-1 and signed at slot.
func NewLightClientOptimisticUpdate(slot primitives.Slot) *ethpb.LightClientOptimisticUpdate {
	return &ethpb.LightClientOptimisticUpdate{
		AttestedHeader: lightClientHeader(slot - 1),
		SyncAggregate:  hydrateSyncAggregate(nil),
		SignatureSlot:  slot,
	}
}

// NewLightClientFinalityUpdate builds a finality update signed at slot.
func NewLightClientFinalityUpdate(slot primitives.Slot) *ethpb.LightClientFinalityUpdate {
	branch := make([][]byte, field_params.FinalityBranchDepth)
	for i := range branch {
		branch[i] = make([]byte, field_params.RootLength)
	}
	return &ethpb.LightClientFinalityUpdate{
		AttestedHeader:  lightClientHeader(slot - 1),
		FinalizedHeader: lightClientHeader(0),
		FinalityBranch:  branch,
		SyncAggregate:   hydrateSyncAggregate(nil),
		SignatureSlot:   slot,
	}
}

func lightClientHeader(slot primitives.Slot) *ethpb.LightClientHeader {
	return &ethpb.LightClientHeader{
		Beacon: &ethpb.BeaconBlockHeader{
			Slot:       slot,
			ParentRoot: make([]byte, field_params.RootLength),
			StateRoot:  make([]byte, field_params.RootLength),
			BodyRoot:   make([]byte, field_params.RootLength),
		},
	}
}

// NewSignedBlobSidecar wraps a sidecar with a zero signature.
func NewSignedBlobSidecar(sc *ethpb.BlobSidecar) *ethpb.SignedBlobSidecar {
	return &ethpb.SignedBlobSidecar{
		Message:   sc,
		Signature: make([]byte, field_params.BLSSignatureLength),
	}
}
