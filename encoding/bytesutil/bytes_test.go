package bytesutil_test

import (
	"testing"

	"github.com/prysmaticlabs/blobnode/encoding/bytesutil"
	"github.com/stretchr/testify/assert"
)

func TestUint64BigEndian(t *testing.T) {
	tests := []uint64{0, 1, 255, 256, 1 << 40}
	for _, tt := range tests {
		b := bytesutil.Uint64ToBytesBigEndian(tt)
		assert.Equal(t, tt, bytesutil.BytesToUint64BigEndian(b))
	}
	assert.Equal(t, uint64(0), bytesutil.BytesToUint64BigEndian([]byte{1, 2}))
}

func TestSafeCopyBytes(t *testing.T) {
	assert.Nil(t, bytesutil.SafeCopyBytes(nil))
	in := []byte{1, 2, 3}
	out := bytesutil.SafeCopyBytes(in)
	in[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, out)
}

func TestToBytes(t *testing.T) {
	assert.Equal(t, [4]byte{1, 2, 3, 4}, bytesutil.ToBytes4([]byte{1, 2, 3, 4, 5}))
	r := bytesutil.ToBytes32([]byte{7})
	assert.Equal(t, byte(7), r[0])
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, bytesutil.Trunc([]byte{1, 2, 3, 4, 5, 6, 7}))
}
