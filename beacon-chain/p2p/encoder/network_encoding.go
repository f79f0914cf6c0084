// Package encoder allows for registering custom data encoders for information
// sent as raw bytes over the wire via p2p to other nodes.
package encoder

import (
	"io"

	fastssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
)

var (
	// ErrMalformedInput is the class of gossip payloads rejected before any handler sees them.
	ErrMalformedInput = errors.New("malformed gossip payload")

	ErrSizeExceeded  = errors.Wrap(ErrMalformedInput, "declared size exceeds gossip limit")
	ErrInvalidSnappy = errors.Wrap(ErrMalformedInput, "invalid snappy encoding")
	ErrInvalidSSZ    = errors.Wrap(ErrMalformedInput, "invalid ssz encoding")
)

// NetworkEncoding represents an encoder compatible with Ethereum consensus p2p.
type NetworkEncoding interface {
	// DecodeGossip decodes the bytes of a gossip message into to.
	DecodeGossip(b []byte, to fastssz.Unmarshaler) error
	// EncodeGossip encodes msg for publishing and writes it to w.
	EncodeGossip(w io.Writer, msg fastssz.Marshaler) (int, error)
	// ProtocolSuffix returns the last part of the topic, naming the encoding.
	ProtocolSuffix() string
}
