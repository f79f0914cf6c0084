package encoder_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/golang/snappy"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p/encoder"
	"github.com/prysmaticlabs/blobnode/config/params"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExit() *ethpb.SignedVoluntaryExit {
	return &ethpb.SignedVoluntaryExit{
		Exit:      &ethpb.VoluntaryExit{Epoch: 55, ValidatorIndex: 3},
		Signature: bytes.Repeat([]byte{0x0b}, 96),
	}
}

func TestSszNetworkEncoder_RoundTrip(t *testing.T) {
	e := &encoder.SszNetworkEncoder{}
	msg := testExit()
	buf := new(bytes.Buffer)
	_, err := e.EncodeGossip(buf, msg)
	require.NoError(t, err)

	decoded := &ethpb.SignedVoluntaryExit{}
	require.NoError(t, e.DecodeGossip(buf.Bytes(), decoded))
	assert.Equal(t, msg, decoded)

	want, err := msg.MarshalSSZ()
	require.NoError(t, err)
	raw, err := snappy.Decode(nil, buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, want, raw)
}

func TestSszNetworkEncoder_EncodeTooLarge(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	cfg := params.BeaconNetworkConfig().Copy()
	cfg.GossipMaxSize = 10
	params.OverrideBeaconNetworkConfig(cfg)

	e := &encoder.SszNetworkEncoder{}
	_, err := e.EncodeGossip(new(bytes.Buffer), testExit())
	require.ErrorIs(t, err, encoder.ErrSizeExceeded)
	require.ErrorIs(t, err, encoder.ErrMalformedInput)
}

func TestSszNetworkEncoder_DecodeRejects(t *testing.T) {
	e := &encoder.SszNetworkEncoder{}

	huge := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(huge, encoder.MaxGossipSize()+1)
	hugeHeader := append(huge[:n], 0x00, 0x01, 0x02)

	valid, err := testExit().MarshalSSZ()
	require.NoError(t, err)
	truncated := snappy.Encode(nil, valid[:len(valid)-1])

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "declared size too large", data: hugeHeader, want: encoder.ErrSizeExceeded},
		{name: "corrupt snappy", data: []byte{0x05, 0xff, 0xff}, want: encoder.ErrInvalidSnappy},
		{name: "empty", data: nil, want: encoder.ErrInvalidSnappy},
		{name: "ssz length mismatch", data: truncated, want: encoder.ErrInvalidSSZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.DecodeGossip(tt.data, &ethpb.SignedVoluntaryExit{})
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, encoder.ErrMalformedInput)
		})
	}
}

func TestSszNetworkEncoder_ProtocolSuffix(t *testing.T) {
	assert.Equal(t, "/ssz_snappy", encoder.SszNetworkEncoder{}.ProtocolSuffix())
}
