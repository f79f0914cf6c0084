package eth

import (
	ssz "github.com/ferranbt/fastssz"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

func marshalVoluntaryExits(dst []byte, exits []*SignedVoluntaryExit) ([]byte, error) {
	if len(exits) > 16 {
		return nil, ssz.ErrListTooBig
	}
	var err error
	for ii := range exits {
		if dst, err = exits[ii].MarshalSSZTo(dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func unmarshalVoluntaryExits(buf []byte) ([]*SignedVoluntaryExit, error) {
	num, err := ssz.DivideInt2(len(buf), 112, 16)
	if err != nil {
		return nil, err
	}
	exits := make([]*SignedVoluntaryExit, num)
	for ii := 0; ii < num; ii++ {
		exits[ii] = new(SignedVoluntaryExit)
		if err = exits[ii].UnmarshalSSZ(buf[ii*112 : (ii+1)*112]); err != nil {
			return nil, err
		}
	}
	return exits, nil
}

func hashVoluntaryExits(hh ssz.HashWalker, exits []*SignedVoluntaryExit) error {
	subIndx := hh.Index()
	num := uint64(len(exits))
	if num > 16 {
		return ssz.ErrIncorrectListSize
	}
	for _, elem := range exits {
		if err := elem.HashTreeRootWith(hh); err != nil {
			return err
		}
	}
	hh.MerkleizeWithMixin(subIndx, num, 16)
	return nil
}

func marshalBlsChanges(dst []byte, changes []*SignedBLSToExecutionChange) ([]byte, error) {
	if len(changes) > 16 {
		return nil, ssz.ErrListTooBig
	}
	var err error
	for ii := range changes {
		if dst, err = changes[ii].MarshalSSZTo(dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func unmarshalBlsChanges(buf []byte) ([]*SignedBLSToExecutionChange, error) {
	num, err := ssz.DivideInt2(len(buf), 172, 16)
	if err != nil {
		return nil, err
	}
	changes := make([]*SignedBLSToExecutionChange, num)
	for ii := 0; ii < num; ii++ {
		changes[ii] = new(SignedBLSToExecutionChange)
		if err = changes[ii].UnmarshalSSZ(buf[ii*172 : (ii+1)*172]); err != nil {
			return nil, err
		}
	}
	return changes, nil
}

func hashBlsChanges(hh ssz.HashWalker, changes []*SignedBLSToExecutionChange) error {
	subIndx := hh.Index()
	num := uint64(len(changes))
	if num > 16 {
		return ssz.ErrIncorrectListSize
	}
	for _, elem := range changes {
		if err := elem.HashTreeRootWith(hh); err != nil {
			return err
		}
	}
	hh.MerkleizeWithMixin(subIndx, num, 16)
	return nil
}

// MarshalSSZ ssz marshals the BeaconBlockBodyCapella object
func (b *BeaconBlockBodyCapella) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(b)
}

// MarshalSSZTo ssz marshals the BeaconBlockBodyCapella object to a target array
func (b *BeaconBlockBodyCapella) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	offset := int(300)

	if dst, err = appendFixed(dst, b.RandaoReveal, 96); err != nil {
		return
	}
	if dst, err = appendFixed(dst, b.Graffiti, 32); err != nil {
		return
	}

	// Offset (2) 'VoluntaryExits'
	dst = ssz.WriteOffset(dst, offset)
	offset += len(b.VoluntaryExits) * 112

	if b.SyncAggregate == nil {
		b.SyncAggregate = new(SyncAggregate)
	}
	if dst, err = b.SyncAggregate.MarshalSSZTo(dst); err != nil {
		return
	}

	// Offset (4) 'ExecutionPayload'
	dst = ssz.WriteOffset(dst, offset)
	if b.ExecutionPayload == nil {
		b.ExecutionPayload = new(ExecutionPayload)
	}
	offset += b.ExecutionPayload.SizeSSZ()

	// Offset (5) 'BlsToExecutionChanges'
	dst = ssz.WriteOffset(dst, offset)

	if dst, err = marshalVoluntaryExits(dst, b.VoluntaryExits); err != nil {
		return
	}
	if dst, err = b.ExecutionPayload.MarshalSSZTo(dst); err != nil {
		return
	}
	return marshalBlsChanges(dst, b.BlsToExecutionChanges)
}

// UnmarshalSSZ ssz unmarshals the BeaconBlockBodyCapella object
func (b *BeaconBlockBodyCapella) UnmarshalSSZ(buf []byte) error {
	var err error
	size := uint64(len(buf))
	if size < 300 {
		return ssz.ErrSize
	}

	tail := buf
	var o2, o4, o5 uint64

	b.RandaoReveal = append(b.RandaoReveal[:0], buf[0:96]...)
	b.Graffiti = append(b.Graffiti[:0], buf[96:128]...)

	if o2 = ssz.ReadOffset(buf[128:132]); o2 > size {
		return ssz.ErrOffset
	}
	if o2 != 300 {
		return ssz.ErrOffset
	}

	if b.SyncAggregate == nil {
		b.SyncAggregate = new(SyncAggregate)
	}
	if err = b.SyncAggregate.UnmarshalSSZ(buf[132:292]); err != nil {
		return err
	}

	if o4 = ssz.ReadOffset(buf[292:296]); o4 > size || o2 > o4 {
		return ssz.ErrOffset
	}
	if o5 = ssz.ReadOffset(buf[296:300]); o5 > size || o4 > o5 {
		return ssz.ErrOffset
	}

	if b.VoluntaryExits, err = unmarshalVoluntaryExits(tail[o2:o4]); err != nil {
		return err
	}
	if b.ExecutionPayload == nil {
		b.ExecutionPayload = new(ExecutionPayload)
	}
	if err = b.ExecutionPayload.UnmarshalSSZ(tail[o4:o5]); err != nil {
		return err
	}
	if b.BlsToExecutionChanges, err = unmarshalBlsChanges(tail[o5:]); err != nil {
		return err
	}
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the BeaconBlockBodyCapella object
func (b *BeaconBlockBodyCapella) SizeSSZ() (size int) {
	size = 300
	size += len(b.VoluntaryExits) * 112
	if b.ExecutionPayload == nil {
		b.ExecutionPayload = new(ExecutionPayload)
	}
	size += b.ExecutionPayload.SizeSSZ()
	size += len(b.BlsToExecutionChanges) * 172
	return
}

// HashTreeRoot ssz hashes the BeaconBlockBodyCapella object
func (b *BeaconBlockBodyCapella) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockBodyCapella object with a hasher
func (b *BeaconBlockBodyCapella) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if len(b.RandaoReveal) != 96 || len(b.Graffiti) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(b.RandaoReveal)
	hh.PutBytes(b.Graffiti)
	if err := hashVoluntaryExits(hh, b.VoluntaryExits); err != nil {
		return err
	}
	if b.SyncAggregate == nil {
		b.SyncAggregate = new(SyncAggregate)
	}
	if err := b.SyncAggregate.HashTreeRootWith(hh); err != nil {
		return err
	}
	if b.ExecutionPayload == nil {
		b.ExecutionPayload = new(ExecutionPayload)
	}
	if err := b.ExecutionPayload.HashTreeRootWith(hh); err != nil {
		return err
	}
	if err := hashBlsChanges(hh, b.BlsToExecutionChanges); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the BeaconBlockBodyDeneb object
func (b *BeaconBlockBodyDeneb) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(b)
}

// MarshalSSZTo ssz marshals the BeaconBlockBodyDeneb object to a target array
func (b *BeaconBlockBodyDeneb) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	offset := int(304)

	if dst, err = appendFixed(dst, b.RandaoReveal, 96); err != nil {
		return
	}
	if dst, err = appendFixed(dst, b.Graffiti, 32); err != nil {
		return
	}

	// Offset (2) 'VoluntaryExits'
	dst = ssz.WriteOffset(dst, offset)
	offset += len(b.VoluntaryExits) * 112

	if b.SyncAggregate == nil {
		b.SyncAggregate = new(SyncAggregate)
	}
	if dst, err = b.SyncAggregate.MarshalSSZTo(dst); err != nil {
		return
	}

	// Offset (4) 'ExecutionPayload'
	dst = ssz.WriteOffset(dst, offset)
	if b.ExecutionPayload == nil {
		b.ExecutionPayload = new(ExecutionPayload)
	}
	offset += b.ExecutionPayload.SizeSSZ()

	// Offset (5) 'BlsToExecutionChanges'
	dst = ssz.WriteOffset(dst, offset)
	offset += len(b.BlsToExecutionChanges) * 172

	// Offset (6) 'BlobKzgCommitments'
	dst = ssz.WriteOffset(dst, offset)

	if dst, err = marshalVoluntaryExits(dst, b.VoluntaryExits); err != nil {
		return
	}
	if dst, err = b.ExecutionPayload.MarshalSSZTo(dst); err != nil {
		return
	}
	if dst, err = marshalBlsChanges(dst, b.BlsToExecutionChanges); err != nil {
		return
	}

	// Field (6) 'BlobKzgCommitments'
	if size := len(b.BlobKzgCommitments); size > 4096 {
		err = ssz.ErrListTooBig
		return
	}
	for ii := 0; ii < len(b.BlobKzgCommitments); ii++ {
		if dst, err = appendFixed(dst, b.BlobKzgCommitments[ii], 48); err != nil {
			return
		}
	}
	return
}

// UnmarshalSSZ ssz unmarshals the BeaconBlockBodyDeneb object
func (b *BeaconBlockBodyDeneb) UnmarshalSSZ(buf []byte) error {
	var err error
	size := uint64(len(buf))
	if size < 304 {
		return ssz.ErrSize
	}

	tail := buf
	var o2, o4, o5, o6 uint64

	b.RandaoReveal = append(b.RandaoReveal[:0], buf[0:96]...)
	b.Graffiti = append(b.Graffiti[:0], buf[96:128]...)

	if o2 = ssz.ReadOffset(buf[128:132]); o2 > size {
		return ssz.ErrOffset
	}
	if o2 != 304 {
		return ssz.ErrOffset
	}

	if b.SyncAggregate == nil {
		b.SyncAggregate = new(SyncAggregate)
	}
	if err = b.SyncAggregate.UnmarshalSSZ(buf[132:292]); err != nil {
		return err
	}

	if o4 = ssz.ReadOffset(buf[292:296]); o4 > size || o2 > o4 {
		return ssz.ErrOffset
	}
	if o5 = ssz.ReadOffset(buf[296:300]); o5 > size || o4 > o5 {
		return ssz.ErrOffset
	}
	if o6 = ssz.ReadOffset(buf[300:304]); o6 > size || o5 > o6 {
		return ssz.ErrOffset
	}

	if b.VoluntaryExits, err = unmarshalVoluntaryExits(tail[o2:o4]); err != nil {
		return err
	}
	if b.ExecutionPayload == nil {
		b.ExecutionPayload = new(ExecutionPayload)
	}
	if err = b.ExecutionPayload.UnmarshalSSZ(tail[o4:o5]); err != nil {
		return err
	}
	if b.BlsToExecutionChanges, err = unmarshalBlsChanges(tail[o5:o6]); err != nil {
		return err
	}

	// Field (6) 'BlobKzgCommitments'
	{
		buf = tail[o6:]
		num, err := ssz.DivideInt2(len(buf), 48, 4096)
		if err != nil {
			return err
		}
		b.BlobKzgCommitments = make([][]byte, num)
		for ii := 0; ii < num; ii++ {
			b.BlobKzgCommitments[ii] = append([]byte{}, buf[ii*48:(ii+1)*48]...)
		}
	}
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the BeaconBlockBodyDeneb object
func (b *BeaconBlockBodyDeneb) SizeSSZ() (size int) {
	size = 304
	size += len(b.VoluntaryExits) * 112
	if b.ExecutionPayload == nil {
		b.ExecutionPayload = new(ExecutionPayload)
	}
	size += b.ExecutionPayload.SizeSSZ()
	size += len(b.BlsToExecutionChanges) * 172
	size += len(b.BlobKzgCommitments) * 48
	return
}

// HashTreeRoot ssz hashes the BeaconBlockBodyDeneb object
func (b *BeaconBlockBodyDeneb) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockBodyDeneb object with a hasher
func (b *BeaconBlockBodyDeneb) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if len(b.RandaoReveal) != 96 || len(b.Graffiti) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(b.RandaoReveal)
	hh.PutBytes(b.Graffiti)
	if err := hashVoluntaryExits(hh, b.VoluntaryExits); err != nil {
		return err
	}
	if b.SyncAggregate == nil {
		b.SyncAggregate = new(SyncAggregate)
	}
	if err := b.SyncAggregate.HashTreeRootWith(hh); err != nil {
		return err
	}
	if b.ExecutionPayload == nil {
		b.ExecutionPayload = new(ExecutionPayload)
	}
	if err := b.ExecutionPayload.HashTreeRootWith(hh); err != nil {
		return err
	}
	if err := hashBlsChanges(hh, b.BlsToExecutionChanges); err != nil {
		return err
	}

	// Field (6) 'BlobKzgCommitments'
	{
		if size := len(b.BlobKzgCommitments); size > 4096 {
			return ssz.ErrIncorrectListSize
		}
		subIndx := hh.Index()
		for _, i := range b.BlobKzgCommitments {
			if len(i) != 48 {
				return ssz.ErrBytesLength
			}
			hh.PutBytes(i)
		}
		numItems := uint64(len(b.BlobKzgCommitments))
		hh.MerkleizeWithMixin(subIndx, numItems, 4096)
	}

	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the BeaconBlockCapella object
func (b *BeaconBlockCapella) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(b)
}

// MarshalSSZTo ssz marshals the BeaconBlockCapella object to a target array
func (b *BeaconBlockCapella) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = ssz.MarshalUint64(buf, uint64(b.Slot))
	dst = ssz.MarshalUint64(dst, uint64(b.ProposerIndex))
	if dst, err = appendFixed(dst, b.ParentRoot, 32); err != nil {
		return
	}
	if dst, err = appendFixed(dst, b.StateRoot, 32); err != nil {
		return
	}
	// Offset (4) 'Body'
	dst = ssz.WriteOffset(dst, 84)
	if b.Body == nil {
		b.Body = new(BeaconBlockBodyCapella)
	}
	return b.Body.MarshalSSZTo(dst)
}

// UnmarshalSSZ ssz unmarshals the BeaconBlockCapella object
func (b *BeaconBlockCapella) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size < 84 {
		return ssz.ErrSize
	}
	b.Slot = primitives.Slot(ssz.UnmarshallUint64(buf[0:8]))
	b.ProposerIndex = primitives.ValidatorIndex(ssz.UnmarshallUint64(buf[8:16]))
	b.ParentRoot = append(b.ParentRoot[:0], buf[16:48]...)
	b.StateRoot = append(b.StateRoot[:0], buf[48:80]...)
	if o4 := ssz.ReadOffset(buf[80:84]); o4 != 84 {
		return ssz.ErrOffset
	}
	if b.Body == nil {
		b.Body = new(BeaconBlockBodyCapella)
	}
	return b.Body.UnmarshalSSZ(buf[84:])
}

// SizeSSZ returns the ssz encoded size in bytes for the BeaconBlockCapella object
func (b *BeaconBlockCapella) SizeSSZ() (size int) {
	size = 84
	if b.Body == nil {
		b.Body = new(BeaconBlockBodyCapella)
	}
	size += b.Body.SizeSSZ()
	return
}

// HashTreeRoot ssz hashes the BeaconBlockCapella object
func (b *BeaconBlockCapella) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockCapella object with a hasher
func (b *BeaconBlockCapella) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	hh.PutUint64(uint64(b.Slot))
	hh.PutUint64(uint64(b.ProposerIndex))
	if len(b.ParentRoot) != 32 || len(b.StateRoot) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(b.ParentRoot)
	hh.PutBytes(b.StateRoot)
	if b.Body == nil {
		b.Body = new(BeaconBlockBodyCapella)
	}
	if err := b.Body.HashTreeRootWith(hh); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the BeaconBlockDeneb object
func (b *BeaconBlockDeneb) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(b)
}

// MarshalSSZTo ssz marshals the BeaconBlockDeneb object to a target array
func (b *BeaconBlockDeneb) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = ssz.MarshalUint64(buf, uint64(b.Slot))
	dst = ssz.MarshalUint64(dst, uint64(b.ProposerIndex))
	if dst, err = appendFixed(dst, b.ParentRoot, 32); err != nil {
		return
	}
	if dst, err = appendFixed(dst, b.StateRoot, 32); err != nil {
		return
	}
	// Offset (4) 'Body'
	dst = ssz.WriteOffset(dst, 84)
	if b.Body == nil {
		b.Body = new(BeaconBlockBodyDeneb)
	}
	return b.Body.MarshalSSZTo(dst)
}

// UnmarshalSSZ ssz unmarshals the BeaconBlockDeneb object
func (b *BeaconBlockDeneb) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size < 84 {
		return ssz.ErrSize
	}
	b.Slot = primitives.Slot(ssz.UnmarshallUint64(buf[0:8]))
	b.ProposerIndex = primitives.ValidatorIndex(ssz.UnmarshallUint64(buf[8:16]))
	b.ParentRoot = append(b.ParentRoot[:0], buf[16:48]...)
	b.StateRoot = append(b.StateRoot[:0], buf[48:80]...)
	if o4 := ssz.ReadOffset(buf[80:84]); o4 != 84 {
		return ssz.ErrOffset
	}
	if b.Body == nil {
		b.Body = new(BeaconBlockBodyDeneb)
	}
	return b.Body.UnmarshalSSZ(buf[84:])
}

// SizeSSZ returns the ssz encoded size in bytes for the BeaconBlockDeneb object
func (b *BeaconBlockDeneb) SizeSSZ() (size int) {
	size = 84
	if b.Body == nil {
		b.Body = new(BeaconBlockBodyDeneb)
	}
	size += b.Body.SizeSSZ()
	return
}

// HashTreeRoot ssz hashes the BeaconBlockDeneb object
func (b *BeaconBlockDeneb) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockDeneb object with a hasher
func (b *BeaconBlockDeneb) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	hh.PutUint64(uint64(b.Slot))
	hh.PutUint64(uint64(b.ProposerIndex))
	if len(b.ParentRoot) != 32 || len(b.StateRoot) != 32 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(b.ParentRoot)
	hh.PutBytes(b.StateRoot)
	if b.Body == nil {
		b.Body = new(BeaconBlockBodyDeneb)
	}
	if err := b.Body.HashTreeRootWith(hh); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the SignedBeaconBlockCapella object
func (s *SignedBeaconBlockCapella) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SignedBeaconBlockCapella object to a target array
func (s *SignedBeaconBlockCapella) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	// Offset (0) 'Block'
	dst = ssz.WriteOffset(buf, 100)
	if dst, err = appendFixed(dst, s.Signature, 96); err != nil {
		return
	}
	if s.Block == nil {
		s.Block = new(BeaconBlockCapella)
	}
	return s.Block.MarshalSSZTo(dst)
}

// UnmarshalSSZ ssz unmarshals the SignedBeaconBlockCapella object
func (s *SignedBeaconBlockCapella) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size < 100 {
		return ssz.ErrSize
	}
	if o0 := ssz.ReadOffset(buf[0:4]); o0 != 100 {
		return ssz.ErrOffset
	}
	s.Signature = append(s.Signature[:0], buf[4:100]...)
	if s.Block == nil {
		s.Block = new(BeaconBlockCapella)
	}
	return s.Block.UnmarshalSSZ(buf[100:])
}

// SizeSSZ returns the ssz encoded size in bytes for the SignedBeaconBlockCapella object
func (s *SignedBeaconBlockCapella) SizeSSZ() (size int) {
	size = 100
	if s.Block == nil {
		s.Block = new(BeaconBlockCapella)
	}
	size += s.Block.SizeSSZ()
	return
}

// HashTreeRoot ssz hashes the SignedBeaconBlockCapella object
func (s *SignedBeaconBlockCapella) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedBeaconBlockCapella object with a hasher
func (s *SignedBeaconBlockCapella) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if s.Block == nil {
		s.Block = new(BeaconBlockCapella)
	}
	if err := s.Block.HashTreeRootWith(hh); err != nil {
		return err
	}
	if len(s.Signature) != 96 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.Signature)
	hh.Merkleize(indx)
	return nil
}

// MarshalSSZ ssz marshals the SignedBeaconBlockDeneb object
func (s *SignedBeaconBlockDeneb) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(s)
}

// MarshalSSZTo ssz marshals the SignedBeaconBlockDeneb object to a target array
func (s *SignedBeaconBlockDeneb) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	// Offset (0) 'Block'
	dst = ssz.WriteOffset(buf, 100)
	if dst, err = appendFixed(dst, s.Signature, 96); err != nil {
		return
	}
	if s.Block == nil {
		s.Block = new(BeaconBlockDeneb)
	}
	return s.Block.MarshalSSZTo(dst)
}

// UnmarshalSSZ ssz unmarshals the SignedBeaconBlockDeneb object
func (s *SignedBeaconBlockDeneb) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size < 100 {
		return ssz.ErrSize
	}
	if o0 := ssz.ReadOffset(buf[0:4]); o0 != 100 {
		return ssz.ErrOffset
	}
	s.Signature = append(s.Signature[:0], buf[4:100]...)
	if s.Block == nil {
		s.Block = new(BeaconBlockDeneb)
	}
	return s.Block.UnmarshalSSZ(buf[100:])
}

// SizeSSZ returns the ssz encoded size in bytes for the SignedBeaconBlockDeneb object
func (s *SignedBeaconBlockDeneb) SizeSSZ() (size int) {
	size = 100
	if s.Block == nil {
		s.Block = new(BeaconBlockDeneb)
	}
	size += s.Block.SizeSSZ()
	return
}

// HashTreeRoot ssz hashes the SignedBeaconBlockDeneb object
func (s *SignedBeaconBlockDeneb) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedBeaconBlockDeneb object with a hasher
func (s *SignedBeaconBlockDeneb) HashTreeRootWith(hh ssz.HashWalker) error {
	indx := hh.Index()
	if s.Block == nil {
		s.Block = new(BeaconBlockDeneb)
	}
	if err := s.Block.HashTreeRootWith(hh); err != nil {
		return err
	}
	if len(s.Signature) != 96 {
		return ssz.ErrBytesLength
	}
	hh.PutBytes(s.Signature)
	hh.Merkleize(indx)
	return nil
}
