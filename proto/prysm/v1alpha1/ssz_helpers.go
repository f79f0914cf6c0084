package eth

import (
	ssz "github.com/ferranbt/fastssz"
)

func appendFixed(dst, b []byte, size int) ([]byte, error) {
	if len(b) != size {
		return nil, ssz.ErrBytesLength
	}
	return append(dst, b...), nil
}

func sizeByteLists(lists [][]byte) int {
	size := 0
	for _, l := range lists {
		size += 4 + len(l)
	}
	return size
}

// marshalByteLists writes a list of variable-length byte lists: an offset table followed by the bodies.
func marshalByteLists(dst []byte, lists [][]byte, maxItems, maxBytes int) ([]byte, error) {
	if len(lists) > maxItems {
		return nil, ssz.ErrListTooBig
	}
	offset := 4 * len(lists)
	for _, l := range lists {
		if len(l) > maxBytes {
			return nil, ssz.ErrBytesLength
		}
		dst = ssz.WriteOffset(dst, offset)
		offset += len(l)
	}
	for _, l := range lists {
		dst = append(dst, l...)
	}
	return dst, nil
}

// unmarshalByteLists is the inverse of marshalByteLists. Every offset is checked
// against the buffer before it is dereferenced.
func unmarshalByteLists(buf []byte, maxItems, maxBytes int) ([][]byte, error) {
	if len(buf) == 0 {
		return [][]byte{}, nil
	}
	if len(buf) < 4 {
		return nil, ssz.ErrSize
	}
	size := uint64(len(buf))
	first := ssz.ReadOffset(buf[0:4])
	if first == 0 || first%4 != 0 || first > size {
		return nil, ssz.ErrOffset
	}
	num := int(first / 4)
	if num > maxItems {
		return nil, ssz.ErrListTooBig
	}
	lists := make([][]byte, num)
	for i := 0; i < num; i++ {
		start := ssz.ReadOffset(buf[i*4 : (i+1)*4])
		end := size
		if i+1 < num {
			end = ssz.ReadOffset(buf[(i+1)*4 : (i+2)*4])
		}
		if start > end || end > size {
			return nil, ssz.ErrOffset
		}
		if end-start > uint64(maxBytes) {
			return nil, ssz.ErrBytesLength
		}
		lists[i] = append([]byte{}, buf[start:end]...)
	}
	return lists, nil
}

func hashByteLists(hh ssz.HashWalker, lists [][]byte, maxItems, maxBytes uint64) error {
	subIndx := hh.Index()
	num := uint64(len(lists))
	if num > maxItems {
		return ssz.ErrIncorrectListSize
	}
	for _, elem := range lists {
		elemIndx := hh.Index()
		byteLen := uint64(len(elem))
		if byteLen > maxBytes {
			return ssz.ErrIncorrectListSize
		}
		hh.AppendBytes32(elem)
		hh.MerkleizeWithMixin(elemIndx, byteLen, (maxBytes+31)/32)
	}
	hh.MerkleizeWithMixin(subIndx, num, maxItems)
	return nil
}
