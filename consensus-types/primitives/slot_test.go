package primitives_test

import (
	"testing"

	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	"github.com/stretchr/testify/require"
)

func TestSlot_RoundTrip(t *testing.T) {
	s := primitives.Slot(8)
	enc, err := s.MarshalSSZ()
	require.NoError(t, err)
	require.Equal(t, []byte{8, 0, 0, 0, 0, 0, 0, 0}, enc)

	var got primitives.Slot
	require.NoError(t, got.UnmarshalSSZ(enc))
	require.Equal(t, s, got)
}

func TestSlot_UnmarshalWrongLength(t *testing.T) {
	var s primitives.Slot
	err := s.UnmarshalSSZ(make([]byte, 7))
	require.ErrorContains(t, err, "expected buffer of length")
}

func TestSlot_Arithmetic(t *testing.T) {
	require.Equal(t, primitives.Slot(5), primitives.Slot(3).Add(2))
	require.Equal(t, primitives.Slot(0), primitives.Slot(3).Sub(4))
	require.Equal(t, primitives.Epoch(2), primitives.Slot(65).ToEpoch(32))
	require.Equal(t, primitives.Epoch(0), primitives.Slot(65).ToEpoch(0))
	require.Equal(t, primitives.Slot(64), primitives.Epoch(2).StartSlot(32))
}

func TestSlot_HashTreeRoot(t *testing.T) {
	root, err := primitives.Slot(1).HashTreeRoot()
	require.NoError(t, err)
	want := [32]byte{1}
	require.Equal(t, want, root)
}
