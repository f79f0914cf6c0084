// Package ssz holds the small amount of hash tree root logic that is not generated with the
// containers, built on gohashtree.
package ssz

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/gohashtree"
)

var errInvalidNilSlice = errors.New("invalid empty slice")

// MerkleizeChunks returns the root of the smallest power-of-two tree holding chunks, zero padded.
func MerkleizeChunks(chunks [][32]byte) ([32]byte, error) {
	if len(chunks) == 0 {
		return [32]byte{}, errInvalidNilSlice
	}
	width := 1
	for width < len(chunks) {
		width <<= 1
	}
	layer := make([][32]byte, width)
	copy(layer, chunks)
	for len(layer) > 1 {
		next := make([][32]byte, len(layer)/2)
		if err := gohashtree.Hash(next, layer); err != nil {
			return [32]byte{}, err
		}
		layer = next
	}
	return layer[0], nil
}
