package eth

import (
	ssz "github.com/ferranbt/fastssz"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

// MarshalSSZ ssz marshals the BeaconBlockHeader object
func (b *BeaconBlockHeader) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(b)
}

// MarshalSSZTo ssz marshals the BeaconBlockHeader object to a target array
func (b *BeaconBlockHeader) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = ssz.MarshalUint64(buf, uint64(b.Slot))
	dst = ssz.MarshalUint64(dst, uint64(b.ProposerIndex))
	if dst, err = appendFixed(dst, b.ParentRoot, 32); err != nil {
		return
	}
	if dst, err = appendFixed(dst, b.StateRoot, 32); err != nil {
		return
	}
	return appendFixed(dst, b.BodyRoot, 32)
}

// UnmarshalSSZ ssz unmarshals the BeaconBlockHeader object
func (b *BeaconBlockHeader) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 112 {
		return ssz.ErrSize
	}
	b.Slot = primitives.Slot(ssz.UnmarshallUint64(buf[0:8]))
	b.ProposerIndex = primitives.ValidatorIndex(ssz.UnmarshallUint64(buf[8:16]))
	b.ParentRoot = append(b.ParentRoot[:0], buf[16:48]...)
	b.StateRoot = append(b.StateRoot[:0], buf[48:80]...)
	b.BodyRoot = append(b.BodyRoot[:0], buf[80:112]...)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the BeaconBlockHeader object
func (b *BeaconBlockHeader) SizeSSZ() int {
	return 112
}

// HashTreeRoot ssz hashes the BeaconBlockHeader object
func (b *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockHeader object with a hasher
func (b *BeaconBlockHeader) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	hh.PutUint64(uint64(b.Slot))
	hh.PutUint64(uint64(b.ProposerIndex))
	if len(b.ParentRoot) != 32 || len(b.StateRoot) != 32 || len(b.BodyRoot) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(b.ParentRoot)
	hh.PutBytes(b.StateRoot)
	hh.PutBytes(b.BodyRoot)
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the LightClientHeader object
func (l *LightClientHeader) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(l)
}

// MarshalSSZTo ssz marshals the LightClientHeader object to a target array
func (l *LightClientHeader) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	if l.Beacon == nil {
		l.Beacon = new(BeaconBlockHeader)
	}
	return l.Beacon.MarshalSSZTo(buf)
}

// UnmarshalSSZ ssz unmarshals the LightClientHeader object
func (l *LightClientHeader) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 112 {
		return ssz.ErrSize
	}
	if l.Beacon == nil {
		l.Beacon = new(BeaconBlockHeader)
	}
	return l.Beacon.UnmarshalSSZ(buf)
}

// SizeSSZ returns the ssz encoded size in bytes for the LightClientHeader object
func (l *LightClientHeader) SizeSSZ() int {
	return 112
}

// HashTreeRoot ssz hashes the LightClientHeader object
func (l *LightClientHeader) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(l)
}

// HashTreeRootWith ssz hashes the LightClientHeader object with a hasher
func (l *LightClientHeader) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if l.Beacon == nil {
		l.Beacon = new(BeaconBlockHeader)
	}
	if err := l.Beacon.HashTreeRootWith(hh); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the LightClientOptimisticUpdate object
func (l *LightClientOptimisticUpdate) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(l)
}

// MarshalSSZTo ssz marshals the LightClientOptimisticUpdate object to a target array
func (l *LightClientOptimisticUpdate) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	if l.AttestedHeader == nil {
		l.AttestedHeader = new(LightClientHeader)
	}
	if dst, err = l.AttestedHeader.MarshalSSZTo(dst); err != nil {
		return
	}
	if l.SyncAggregate == nil {
		l.SyncAggregate = new(SyncAggregate)
	}
	if dst, err = l.SyncAggregate.MarshalSSZTo(dst); err != nil {
		return
	}
	dst = ssz.MarshalUint64(dst, uint64(l.SignatureSlot))
	return
}

// UnmarshalSSZ ssz unmarshals the LightClientOptimisticUpdate object
func (l *LightClientOptimisticUpdate) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 280 {
		return ssz.ErrSize
	}
	if l.AttestedHeader == nil {
		l.AttestedHeader = new(LightClientHeader)
	}
	if err := l.AttestedHeader.UnmarshalSSZ(buf[0:112]); err != nil {
		return err
	}
	if l.SyncAggregate == nil {
		l.SyncAggregate = new(SyncAggregate)
	}
	if err := l.SyncAggregate.UnmarshalSSZ(buf[112:272]); err != nil {
		return err
	}
	l.SignatureSlot = primitives.Slot(ssz.UnmarshallUint64(buf[272:280]))
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the LightClientOptimisticUpdate object
func (l *LightClientOptimisticUpdate) SizeSSZ() int {
	return 280
}

// HashTreeRoot ssz hashes the LightClientOptimisticUpdate object
func (l *LightClientOptimisticUpdate) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(l)
}

// HashTreeRootWith ssz hashes the LightClientOptimisticUpdate object with a hasher
func (l *LightClientOptimisticUpdate) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if l.AttestedHeader == nil {
		l.AttestedHeader = new(LightClientHeader)
	}
	if err := l.AttestedHeader.HashTreeRootWith(hh); err != nil {
		return err
	}
	if l.SyncAggregate == nil {
		l.SyncAggregate = new(SyncAggregate)
	}
	if err := l.SyncAggregate.HashTreeRootWith(hh); err != nil {
		return err
	}
	hh.PutUint64(uint64(l.SignatureSlot))
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the LightClientFinalityUpdate object
func (l *LightClientFinalityUpdate) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(l)
}

// MarshalSSZTo ssz marshals the LightClientFinalityUpdate object to a target array
func (l *LightClientFinalityUpdate) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	if l.AttestedHeader == nil {
		l.AttestedHeader = new(LightClientHeader)
	}
	if dst, err = l.AttestedHeader.MarshalSSZTo(dst); err != nil {
		return
	}
	if l.FinalizedHeader == nil {
		l.FinalizedHeader = new(LightClientHeader)
	}
	if dst, err = l.FinalizedHeader.MarshalSSZTo(dst); err != nil {
		return
	}
	if size := len(l.FinalityBranch); size != 6 {
		err = ssz.ErrVectorLength
		return
	}
	for ii := 0; ii < 6; ii++ {
		if dst, err = appendFixed(dst, l.FinalityBranch[ii], 32); err != nil {
			return
		}
	}
	if l.SyncAggregate == nil {
		l.SyncAggregate = new(SyncAggregate)
	}
	if dst, err = l.SyncAggregate.MarshalSSZTo(dst); err != nil {
		return
	}
	dst = ssz.MarshalUint64(dst, uint64(l.SignatureSlot))
	return
}

// UnmarshalSSZ ssz unmarshals the LightClientFinalityUpdate object
func (l *LightClientFinalityUpdate) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 584 {
		return ssz.ErrSize
	}
	if l.AttestedHeader == nil {
		l.AttestedHeader = new(LightClientHeader)
	}
	if err := l.AttestedHeader.UnmarshalSSZ(buf[0:112]); err != nil {
		return err
	}
	if l.FinalizedHeader == nil {
		l.FinalizedHeader = new(LightClientHeader)
	}
	if err := l.FinalizedHeader.UnmarshalSSZ(buf[112:224]); err != nil {
		return err
	}
	l.FinalityBranch = make([][]byte, 6)
	for ii := 0; ii < 6; ii++ {
		l.FinalityBranch[ii] = append([]byte{}, buf[224+ii*32:224+(ii+1)*32]...)
	}
	if l.SyncAggregate == nil {
		l.SyncAggregate = new(SyncAggregate)
	}
	if err := l.SyncAggregate.UnmarshalSSZ(buf[416:576]); err != nil {
		return err
	}
	l.SignatureSlot = primitives.Slot(ssz.UnmarshallUint64(buf[576:584]))
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the LightClientFinalityUpdate object
func (l *LightClientFinalityUpdate) SizeSSZ() int {
	return 584
}

// HashTreeRoot ssz hashes the LightClientFinalityUpdate object
func (l *LightClientFinalityUpdate) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(l)
}

// HashTreeRootWith ssz hashes the LightClientFinalityUpdate object with a hasher
func (l *LightClientFinalityUpdate) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if l.AttestedHeader == nil {
		l.AttestedHeader = new(LightClientHeader)
	}
	if err := l.AttestedHeader.HashTreeRootWith(hh); err != nil {
		return err
	}
	if l.FinalizedHeader == nil {
		l.FinalizedHeader = new(LightClientHeader)
	}
	if err := l.FinalizedHeader.HashTreeRootWith(hh); err != nil {
		return err
	}
	{
		if size := len(l.FinalityBranch); size != 6 {
			return ssz.ErrVectorLength
		}
		subIndx := hh.Index()
		for _, i := range l.FinalityBranch {
			if len(i) != 32 {
				return ssz.ErrBytesLength
			}
			hh.Append(i)
		}
		hh.Merkleize(subIndx)
	}
	if l.SyncAggregate == nil {
		l.SyncAggregate = new(SyncAggregate)
	}
	if err := l.SyncAggregate.HashTreeRootWith(hh); err != nil {
		return err
	}
	hh.PutUint64(uint64(l.SignatureSlot))
	hh.Merkleize(indx)
	return nil
}
