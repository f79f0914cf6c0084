package eth

import (
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	"github.com/prysmaticlabs/go-bitfield"
)

// SyncAggregate is the sync committee participation carried in blocks and light-client updates.
type SyncAggregate struct {
	SyncCommitteeBits      bitfield.Bitvector512 `ssz-size:"64"`
	SyncCommitteeSignature []byte                `ssz-size:"96"`
}

// SyncCommitteeContribution is the aggregate of one sync subcommittee's signatures over a block root.
type SyncCommitteeContribution struct {
	Slot              primitives.Slot
	BlockRoot         []byte `ssz-size:"32"`
	SubcommitteeIndex uint64
	AggregationBits   bitfield.Bitvector128 `ssz-size:"16"`
	Signature         []byte                `ssz-size:"96"`
}

type ContributionAndProof struct {
	AggregatorIndex primitives.ValidatorIndex
	Contribution    *SyncCommitteeContribution
	SelectionProof  []byte `ssz-size:"96"`
}

type SignedContributionAndProof struct {
	Message   *ContributionAndProof
	Signature []byte `ssz-size:"96"`
}
