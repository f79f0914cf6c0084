package eth

import (
	ssz "github.com/ferranbt/fastssz"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

// MarshalSSZ ssz marshals the BlobSidecar object
func (b *BlobSidecar) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(b)
}

// MarshalSSZTo ssz marshals the BlobSidecar object to a target array
func (b *BlobSidecar) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	if dst, err = appendFixed(buf, b.BlockRoot, 32); err != nil {
		return
	}
	dst = ssz.MarshalUint64(dst, b.Index)
	dst = ssz.MarshalUint64(dst, uint64(b.Slot))
	if dst, err = appendFixed(dst, b.BlockParentRoot, 32); err != nil {
		return
	}
	dst = ssz.MarshalUint64(dst, uint64(b.ProposerIndex))
	if dst, err = appendFixed(dst, b.Blob, 131072); err != nil {
		return
	}
	if dst, err = appendFixed(dst, b.KzgCommitment, 48); err != nil {
		return
	}
	return appendFixed(dst, b.KzgProof, 48)
}

// UnmarshalSSZ ssz unmarshals the BlobSidecar object
func (b *BlobSidecar) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 131256 {
		return ssz.ErrSize
	}
	b.BlockRoot = append(b.BlockRoot[:0], buf[0:32]...)
	b.Index = ssz.UnmarshallUint64(buf[32:40])
	b.Slot = primitives.Slot(ssz.UnmarshallUint64(buf[40:48]))
	b.BlockParentRoot = append(b.BlockParentRoot[:0], buf[48:80]...)
	b.ProposerIndex = primitives.ValidatorIndex(ssz.UnmarshallUint64(buf[80:88]))
	b.Blob = append(b.Blob[:0], buf[88:131160]...)
	b.KzgCommitment = append(b.KzgCommitment[:0], buf[131160:131208]...)
	b.KzgProof = append(b.KzgProof[:0], buf[131208:131256]...)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the BlobSidecar object
func (b *BlobSidecar) SizeSSZ() int {
	return 131256
}

// HashTreeRoot ssz hashes the BlobSidecar object
func (b *BlobSidecar) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BlobSidecar object with a hasher
func (b *BlobSidecar) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if len(b.BlockRoot) != 32 || len(b.BlockParentRoot) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(b.BlockRoot)
	hh.PutUint64(b.Index)
	hh.PutUint64(uint64(b.Slot))
	hh.PutBytes(b.BlockParentRoot)
	hh.PutUint64(uint64(b.ProposerIndex))
	if len(b.Blob) != 131072 || len(b.KzgCommitment) != 48 || len(b.KzgProof) != 48 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(b.Blob)
	hh.PutBytes(b.KzgCommitment)
	hh.PutBytes(b.KzgProof)
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the SignedBlobSidecar object
func (s *SignedBlobSidecar) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SignedBlobSidecar object to a target array
func (s *SignedBlobSidecar) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	if s.Message == nil {
		s.Message = new(BlobSidecar)
	}
	if dst, err = s.Message.MarshalSSZTo(dst); err != nil {
		return
	}
	return appendFixed(dst, s.Signature, 96)
}

// UnmarshalSSZ ssz unmarshals the SignedBlobSidecar object
func (s *SignedBlobSidecar) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 131352 {
		return ssz.ErrSize
	}
	if s.Message == nil {
		s.Message = new(BlobSidecar)
	}
	if err := s.Message.UnmarshalSSZ(buf[0:131256]); err != nil {
		return err
	}
	s.Signature = append(s.Signature[:0], buf[131256:131352]...)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the SignedBlobSidecar object
func (s *SignedBlobSidecar) SizeSSZ() int {
	return 131352
}

// HashTreeRoot ssz hashes the SignedBlobSidecar object
func (s *SignedBlobSidecar) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedBlobSidecar object with a hasher
func (s *SignedBlobSidecar) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if s.Message == nil {
		s.Message = new(BlobSidecar)
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

// MarshalSSZ ssz marshals the BlobSidecarRecord object
func (b *BlobSidecarRecord) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(b)
}

// MarshalSSZTo ssz marshals the BlobSidecarRecord object to a target array
func (b *BlobSidecarRecord) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	if dst, err = appendFixed(buf, b.BlockRoot, 32); err != nil {
		return
	}
	dst = ssz.MarshalUint64(dst, uint64(b.Slot))
	if dst, err = appendFixed(dst, b.BlockParentRoot, 32); err != nil {
		return
	}
	dst = ssz.MarshalUint64(dst, uint64(b.ProposerIndex))

	// Offset (4) 'Sidecars'
	dst = ssz.WriteOffset(dst, 84)

	// Field (4) 'Sidecars'
	if size := len(b.Sidecars); size > 6 {
		err = ssz.ErrListTooBig
		return
	}
	for ii := range b.Sidecars {
		if dst, err = b.Sidecars[ii].MarshalSSZTo(dst); err != nil {
			return
		}
	}
	return
}

// UnmarshalSSZ ssz unmarshals the BlobSidecarRecord object
func (b *BlobSidecarRecord) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size < 84 {
		return ssz.ErrSize
	}
	b.BlockRoot = append(b.BlockRoot[:0], buf[0:32]...)
	b.Slot = primitives.Slot(ssz.UnmarshallUint64(buf[32:40]))
	b.BlockParentRoot = append(b.BlockParentRoot[:0], buf[40:72]...)
	b.ProposerIndex = primitives.ValidatorIndex(ssz.UnmarshallUint64(buf[72:80]))
	if o4 := ssz.ReadOffset(buf[80:84]); o4 != 84 {
		return ssz.ErrOffset
	}

	// Field (4) 'Sidecars'
	buf = buf[84:]
	num, err := ssz.DivideInt2(len(buf), 131256, 6)
	if err != nil {
		return err
	}
	b.Sidecars = make([]*BlobSidecar, num)
	for ii := 0; ii < num; ii++ {
		b.Sidecars[ii] = new(BlobSidecar)
		if err = b.Sidecars[ii].UnmarshalSSZ(buf[ii*131256 : (ii+1)*131256]); err != nil {
			return err
		}
	}
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the BlobSidecarRecord object
func (b *BlobSidecarRecord) SizeSSZ() int {
	return 84 + len(b.Sidecars)*131256
}

// HashTreeRoot ssz hashes the BlobSidecarRecord object
func (b *BlobSidecarRecord) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BlobSidecarRecord object with a hasher
func (b *BlobSidecarRecord) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if len(b.BlockRoot) != 32 || len(b.BlockParentRoot) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(b.BlockRoot)
	hh.PutUint64(uint64(b.Slot))
	hh.PutBytes(b.BlockParentRoot)
	hh.PutUint64(uint64(b.ProposerIndex))
	{
		subIndx := hh.Index()
		num := uint64(len(b.Sidecars))
		if num > 6 {
			return ssz.ErrIncorrectListSize
		}
		for _, elem := range b.Sidecars {
			if err := elem.HashTreeRootWith(hh); err != nil {
				return err
			}
		}
		hh.MerkleizeWithMixin(subIndx, num, 6)
	}
	hh.Merkleize(indx)
	return nil
}
