package encoder

import (
	"io"

	fastssz "github.com/ferranbt/fastssz"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/config/params"
)

var _ NetworkEncoding = (*SszNetworkEncoder)(nil)

// ProtocolSuffixSSZSnappy is the last part of the topic string to identify the encoding protocol.
const ProtocolSuffixSSZSnappy = "ssz_snappy"

// SszNetworkEncoder supports p2p networking encoding using SimpleSerialize
// with snappy block compression.
type SszNetworkEncoder struct{}

// EncodeGossip compresses the ssz encoding of msg and writes it to w.
func (e SszNetworkEncoder) EncodeGossip(w io.Writer, msg fastssz.Marshaler) (int, error) {
	if msg == nil {
		return 0, nil
	}
	b, err := msg.MarshalSSZ()
	if err != nil {
		return 0, err
	}
	if uint64(len(b)) > MaxGossipSize() {
		return 0, errors.Wrapf(ErrSizeExceeded, "size of encoded message is %d which is larger than the provided max limit of %d", len(b), MaxGossipSize())
	}
	return w.Write(snappy.Encode(nil, b))
}

// DecodeGossip decompresses b and decodes it into to.
func (e SszNetworkEncoder) DecodeGossip(b []byte, to fastssz.Unmarshaler) error {
	decoded, err := DecodeSnappy(b, MaxGossipSize())
	if err != nil {
		return err
	}
	if err := to.UnmarshalSSZ(decoded); err != nil {
		return errors.Wrapf(ErrInvalidSSZ, "%T: %v", to, err)
	}
	return nil
}

// DecodeSnappy decompresses a snappy block. The declared decompressed size is checked against
// maxSize before any allocation.
func DecodeSnappy(b []byte, maxSize uint64) ([]byte, error) {
	size, err := snappy.DecodedLen(b)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSnappy, "%v", err)
	}
	if uint64(size) > maxSize {
		return nil, errors.Wrapf(ErrSizeExceeded, "gossip message has size %d which exceeds the max limit of %d", size, maxSize)
	}
	decoded, err := snappy.Decode(nil, b)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSnappy, "%v", err)
	}
	return decoded, nil
}

// ProtocolSuffix returns the appropriate suffix for protocol IDs.
func (e SszNetworkEncoder) ProtocolSuffix() string {
	return "/" + ProtocolSuffixSSZSnappy
}

// MaxGossipSize is the largest uncompressed gossip payload accepted.
func MaxGossipSize() uint64 {
	return params.BeaconNetworkConfig().GossipMaxSize
}
