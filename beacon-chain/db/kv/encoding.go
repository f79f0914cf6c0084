package kv

import (
	"bytes"
	"context"
	"reflect"

	ssz "github.com/ferranbt/fastssz"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/runtime/version"
	"go.opencensus.io/trace"
)

func decode(ctx context.Context, data []byte, dst ssz.Unmarshaler) error {
	_, span := trace.StartSpan(ctx, "BeaconDB.decode")
	defer span.End()

	data, err := snappy.Decode(nil, data)
	if err != nil {
		return err
	}
	return dst.UnmarshalSSZ(data)
}

func encode(ctx context.Context, msg ssz.Marshaler) ([]byte, error) {
	_, span := trace.StartSpan(ctx, "BeaconDB.encode")
	defer span.End()

	if msg == nil || reflect.ValueOf(msg).IsNil() {
		return nil, errors.New("cannot encode nil message")
	}
	enc, err := msg.MarshalSSZ()
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, enc), nil
}

func keyForVersion(v int) ([]byte, error) {
	switch v {
	case version.Capella:
		return capellaKey, nil
	case version.Deneb:
		return denebKey, nil
	default:
		return nil, errors.Errorf("no block key for version %s", version.String(v))
	}
}

// encodeBlockBytes prefixes the ssz encoding of a block with its fork key and compresses it.
func encodeBlockBytes(v int, enc []byte) ([]byte, error) {
	key, err := keyForVersion(v)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, len(key)+len(enc))
	buf = append(buf, key...)
	buf = append(buf, enc...)
	return snappy.Encode(nil, buf), nil
}

// decodeBlockBytes reverses encodeBlockBytes, returning the fork version and the ssz encoding.
func decodeBlockBytes(data []byte) (int, []byte, error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return 0, nil, errors.Wrap(err, "could not decompress block")
	}
	switch {
	case bytes.HasPrefix(raw, denebKey):
		return version.Deneb, raw[len(denebKey):], nil
	case bytes.HasPrefix(raw, capellaKey):
		return version.Capella, raw[len(capellaKey):], nil
	default:
		return 0, nil, errors.New("stored block has no known fork key")
	}
}
