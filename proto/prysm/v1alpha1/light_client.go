package eth

import (
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

type LightClientHeader struct {
	Beacon *BeaconBlockHeader
}

// LightClientOptimisticUpdate lets light clients track the latest attested header.
type LightClientOptimisticUpdate struct {
	AttestedHeader *LightClientHeader
	SyncAggregate  *SyncAggregate
	SignatureSlot  primitives.Slot
}

// LightClientFinalityUpdate additionally proves the finalized header against the attested state.
type LightClientFinalityUpdate struct {
	AttestedHeader  *LightClientHeader
	FinalizedHeader *LightClientHeader
	FinalityBranch  [][]byte `ssz-size:"6,32"`
	SyncAggregate   *SyncAggregate
	SignatureSlot   primitives.Slot
}
