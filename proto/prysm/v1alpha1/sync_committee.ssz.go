package eth

import (
	ssz "github.com/ferranbt/fastssz"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

// MarshalSSZ ssz marshals the SyncAggregate object
func (s *SyncAggregate) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SyncAggregate object to a target array
func (s *SyncAggregate) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	if dst, err = appendFixed(buf, s.SyncCommitteeBits, 64); err != nil {
		return
	}
	return appendFixed(dst, s.SyncCommitteeSignature, 96)
}

// UnmarshalSSZ ssz unmarshals the SyncAggregate object
func (s *SyncAggregate) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 160 {
		return ssz.ErrSize
	}
	s.SyncCommitteeBits = append(s.SyncCommitteeBits[:0], buf[0:64]...)
	s.SyncCommitteeSignature = append(s.SyncCommitteeSignature[:0], buf[64:160]...)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the SyncAggregate object
func (s *SyncAggregate) SizeSSZ() int {
	return 160
}

// HashTreeRoot ssz hashes the SyncAggregate object
func (s *SyncAggregate) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SyncAggregate object with a hasher
func (s *SyncAggregate) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if len(s.SyncCommitteeBits) != 64 || len(s.SyncCommitteeSignature) != 96 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.SyncCommitteeBits)
	hh.PutBytes(s.SyncCommitteeSignature)
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the SyncCommitteeContribution object
func (s *SyncCommitteeContribution) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SyncCommitteeContribution object to a target array
func (s *SyncCommitteeContribution) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = ssz.MarshalUint64(buf, uint64(s.Slot))
	if dst, err = appendFixed(dst, s.BlockRoot, 32); err != nil {
		return
	}
	dst = ssz.MarshalUint64(dst, s.SubcommitteeIndex)
	if dst, err = appendFixed(dst, s.AggregationBits, 16); err != nil {
		return
	}
	return appendFixed(dst, s.Signature, 96)
}

// UnmarshalSSZ ssz unmarshals the SyncCommitteeContribution object
func (s *SyncCommitteeContribution) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 160 {
		return ssz.ErrSize
	}
	s.Slot = primitives.Slot(ssz.UnmarshallUint64(buf[0:8]))
	s.BlockRoot = append(s.BlockRoot[:0], buf[8:40]...)
	s.SubcommitteeIndex = ssz.UnmarshallUint64(buf[40:48])
	s.AggregationBits = append(s.AggregationBits[:0], buf[48:64]...)
	s.Signature = append(s.Signature[:0], buf[64:160]...)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the SyncCommitteeContribution object
func (s *SyncCommitteeContribution) SizeSSZ() int {
	return 160
}

// HashTreeRoot ssz hashes the SyncCommitteeContribution object
func (s *SyncCommitteeContribution) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SyncCommitteeContribution object with a hasher
func (s *SyncCommitteeContribution) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	hh.PutUint64(uint64(s.Slot))
	if len(s.BlockRoot) != 32 || len(s.AggregationBits) != 16 || len(s.Signature) != 96 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.BlockRoot)
	hh.PutUint64(s.SubcommitteeIndex)
	hh.PutBytes(s.AggregationBits)
	hh.PutBytes(s.Signature)
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the ContributionAndProof object
func (c *ContributionAndProof) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(c)
}

// MarshalSSZTo ssz marshals the ContributionAndProof object to a target array
func (c *ContributionAndProof) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = ssz.MarshalUint64(buf, uint64(c.AggregatorIndex))
	if c.Contribution == nil {
		c.Contribution = new(SyncCommitteeContribution)
	}
	if dst, err = c.Contribution.MarshalSSZTo(dst); err != nil {
		return
	}
	return appendFixed(dst, c.SelectionProof, 96)
}

// UnmarshalSSZ ssz unmarshals the ContributionAndProof object
func (c *ContributionAndProof) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 264 {
		return ssz.ErrSize
	}
	c.AggregatorIndex = primitives.ValidatorIndex(ssz.UnmarshallUint64(buf[0:8]))
	if c.Contribution == nil {
		c.Contribution = new(SyncCommitteeContribution)
	}
	if err := c.Contribution.UnmarshalSSZ(buf[8:168]); err != nil {
		return err
	}
	c.SelectionProof = append(c.SelectionProof[:0], buf[168:264]...)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the ContributionAndProof object
func (c *ContributionAndProof) SizeSSZ() int {
	return 264
}

// HashTreeRoot ssz hashes the ContributionAndProof object
func (c *ContributionAndProof) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(c)
}

// HashTreeRootWith ssz hashes the ContributionAndProof object with a hasher
func (c *ContributionAndProof) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	hh.PutUint64(uint64(c.AggregatorIndex))
	if c.Contribution == nil {
		c.Contribution = new(SyncCommitteeContribution)
	}
	if err := c.Contribution.HashTreeRootWith(hh); err != nil {
		return err
	}
	if len(c.SelectionProof) != 96 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(c.SelectionProof)
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the SignedContributionAndProof object
func (s *SignedContributionAndProof) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SignedContributionAndProof object to a target array
func (s *SignedContributionAndProof) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	if s.Message == nil {
		s.Message = new(ContributionAndProof)
	}
	if dst, err = s.Message.MarshalSSZTo(dst); err != nil {
		return
	}
	return appendFixed(dst, s.Signature, 96)
}

// UnmarshalSSZ ssz unmarshals the SignedContributionAndProof object
func (s *SignedContributionAndProof) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 360 {
		return ssz.ErrSize
	}
	if s.Message == nil {
		s.Message = new(ContributionAndProof)
	}
	if err := s.Message.UnmarshalSSZ(buf[0:264]); err != nil {
		return err
	}
	s.Signature = append(s.Signature[:0], buf[264:360]...)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the SignedContributionAndProof object
func (s *SignedContributionAndProof) SizeSSZ() int {
	return 360
}

// HashTreeRoot ssz hashes the SignedContributionAndProof object
func (s *SignedContributionAndProof) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedContributionAndProof object with a hasher
func (s *SignedContributionAndProof) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if s.Message == nil {
		s.Message = new(ContributionAndProof)
	}
	if err := s.Message.HashTreeRootWith(hh); err != nil {
		return err
	}
	if len(s.Signature) != 96 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.Signature)
	hh.Merkleize(indx)
	return nil
}
