package eth

import (
	ssz "github.com/ferranbt/fastssz"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

// MarshalSSZ ssz marshals the VoluntaryExit object
func (v *VoluntaryExit) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(v)
}

// MarshalSSZTo ssz marshals the VoluntaryExit object to a target array
func (v *VoluntaryExit) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	dst = ssz.MarshalUint64(dst, uint64(v.Epoch))
	dst = ssz.MarshalUint64(dst, uint64(v.ValidatorIndex))
	return
}

// UnmarshalSSZ ssz unmarshals the VoluntaryExit object
func (v *VoluntaryExit) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 16 {
		return ssz.ErrSize
	}
	v.Epoch = primitives.Epoch(ssz.UnmarshallUint64(buf[0:8]))
	v.ValidatorIndex = primitives.ValidatorIndex(ssz.UnmarshallUint64(buf[8:16]))
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the VoluntaryExit object
func (v *VoluntaryExit) SizeSSZ() int {
	return 16
}

// HashTreeRoot ssz hashes the VoluntaryExit object
func (v *VoluntaryExit) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(v)
}

// HashTreeRootWith ssz hashes the VoluntaryExit object with a hasher
func (v *VoluntaryExit) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	hh.PutUint64(uint64(v.Epoch))
	hh.PutUint64(uint64(v.ValidatorIndex))
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the SignedVoluntaryExit object
func (s *SignedVoluntaryExit) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SignedVoluntaryExit object to a target array
func (s *SignedVoluntaryExit) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	if s.Exit == nil {
		s.Exit = new(VoluntaryExit)
	}
	if dst, err = s.Exit.MarshalSSZTo(dst); err != nil {
		return
	}
	return appendFixed(dst, s.Signature, 96)
}

// UnmarshalSSZ ssz unmarshals the SignedVoluntaryExit object
func (s *SignedVoluntaryExit) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 112 {
		return ssz.ErrSize
	}
	if s.Exit == nil {
		s.Exit = new(VoluntaryExit)
	}
	if err := s.Exit.UnmarshalSSZ(buf[0:16]); err != nil {
		return err
	}
	s.Signature = append(s.Signature[:0], buf[16:112]...)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the SignedVoluntaryExit object
func (s *SignedVoluntaryExit) SizeSSZ() int {
	return 112
}

// HashTreeRoot ssz hashes the SignedVoluntaryExit object
func (s *SignedVoluntaryExit) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedVoluntaryExit object with a hasher
func (s *SignedVoluntaryExit) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if s.Exit == nil {
		s.Exit = new(VoluntaryExit)
	}
	if err := s.Exit.HashTreeRootWith(hh); err != nil {
		return err
	}
	if len(s.Signature) != 96 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.Signature)
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the BLSToExecutionChange object
func (b *BLSToExecutionChange) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(b)
}

// MarshalSSZTo ssz marshals the BLSToExecutionChange object to a target array
func (b *BLSToExecutionChange) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = ssz.MarshalUint64(buf, uint64(b.ValidatorIndex))
	if dst, err = appendFixed(dst, b.FromBlsPubkey, 48); err != nil {
		return
	}
	return appendFixed(dst, b.ToExecutionAddress, 20)
}

// UnmarshalSSZ ssz unmarshals the BLSToExecutionChange object
func (b *BLSToExecutionChange) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 76 {
		return ssz.ErrSize
	}
	b.ValidatorIndex = primitives.ValidatorIndex(ssz.UnmarshallUint64(buf[0:8]))
	b.FromBlsPubkey = append(b.FromBlsPubkey[:0], buf[8:56]...)
	b.ToExecutionAddress = append(b.ToExecutionAddress[:0], buf[56:76]...)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the BLSToExecutionChange object
func (b *BLSToExecutionChange) SizeSSZ() int {
	return 76
}

// HashTreeRoot ssz hashes the BLSToExecutionChange object
func (b *BLSToExecutionChange) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BLSToExecutionChange object with a hasher
func (b *BLSToExecutionChange) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	hh.PutUint64(uint64(b.ValidatorIndex))
	if len(b.FromBlsPubkey) != 48 || len(b.ToExecutionAddress) != 20 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(b.FromBlsPubkey)
	hh.PutBytes(b.ToExecutionAddress)
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the SignedBLSToExecutionChange object
func (s *SignedBLSToExecutionChange) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SignedBLSToExecutionChange object to a target array
func (s *SignedBLSToExecutionChange) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	if s.Message == nil {
		s.Message = new(BLSToExecutionChange)
	}
	if dst, err = s.Message.MarshalSSZTo(dst); err != nil {
		return
	}
	return appendFixed(dst, s.Signature, 96)
}

// UnmarshalSSZ ssz unmarshals the SignedBLSToExecutionChange object
func (s *SignedBLSToExecutionChange) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 172 {
		return ssz.ErrSize
	}
	if s.Message == nil {
		s.Message = new(BLSToExecutionChange)
	}
	if err := s.Message.UnmarshalSSZ(buf[0:76]); err != nil {
		return err
	}
	s.Signature = append(s.Signature[:0], buf[76:172]...)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the SignedBLSToExecutionChange object
func (s *SignedBLSToExecutionChange) SizeSSZ() int {
	return 172
}

// HashTreeRoot ssz hashes the SignedBLSToExecutionChange object
func (s *SignedBLSToExecutionChange) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedBLSToExecutionChange object with a hasher
func (s *SignedBLSToExecutionChange) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if s.Message == nil {
		s.Message = new(BLSToExecutionChange)
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
