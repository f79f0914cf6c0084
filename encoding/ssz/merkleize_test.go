package ssz_test

import (
	"crypto/sha256"
	"testing"

	"github.com/prysmaticlabs/blobnode/encoding/ssz"
	"github.com/stretchr/testify/require"
)

func TestMerkleizeChunks_Empty(t *testing.T) {
	_, err := ssz.MerkleizeChunks(nil)
	require.ErrorContains(t, err, "invalid empty slice")
}

func TestMerkleizeChunks_Single(t *testing.T) {
	c := [32]byte{1, 2, 3}
	root, err := ssz.MerkleizeChunks([][32]byte{c})
	require.NoError(t, err)
	require.Equal(t, c, root)
}

func TestMerkleizeChunks_PadsToPowerOfTwo(t *testing.T) {
	a, b, c := [32]byte{1}, [32]byte{2}, [32]byte{3}
	left := sha256.Sum256(append(a[:], b[:]...))
	var zero [32]byte
	right := sha256.Sum256(append(c[:], zero[:]...))
	want := sha256.Sum256(append(left[:], right[:]...))

	root, err := ssz.MerkleizeChunks([][32]byte{a, b, c})
	require.NoError(t, err)
	require.Equal(t, want, root)
}

func TestForkDataRoot(t *testing.T) {
	version := [4]byte{0x04, 0x00, 0x00, 0x00}
	gvr := [32]byte{0xaa}
	var chunk [32]byte
	copy(chunk[:], version[:])
	want := sha256.Sum256(append(chunk[:], gvr[:]...))

	root, err := ssz.ForkDataRoot(version, gvr)
	require.NoError(t, err)
	require.Equal(t, want, root)
}
