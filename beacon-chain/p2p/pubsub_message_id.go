package p2p

import (
	pubsubpb "github.com/libp2p/go-libp2p-pubsub/pb"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p/encoder"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/crypto/hash"
)

// MsgID is a content addressable ID function.
//
// The consensus p2p interface defines the message ID as:
//
//	The `message-id` of a gossipsub message MUST be the following 20 byte value computed from the message data:
//	If `message.data` has a valid snappy decompression, set `message-id` to the first 20 bytes of the `SHA256` hash of
//	the concatenation of `MESSAGE_DOMAIN_VALID_SNAPPY` with the snappy decompressed message data,
//	i.e. `SHA256(MESSAGE_DOMAIN_VALID_SNAPPY + snappy_decompress(message.data))[:20]`.
//
//	Otherwise, set `message-id` to the first 20 bytes of the `SHA256` hash of
//	the concatenation of `MESSAGE_DOMAIN_INVALID_SNAPPY` with the raw message data,
//	i.e. `SHA256(MESSAGE_DOMAIN_INVALID_SNAPPY + message.data)[:20]`.
func MsgID(pmsg *pubsubpb.Message) string {
	if pmsg == nil || pmsg.Data == nil {
		// Impossible for a validly formed message, so a fixed id is fine.
		return string(make([]byte, 20))
	}
	cfg := params.BeaconNetworkConfig()
	decoded, err := encoder.DecodeSnappy(pmsg.Data, cfg.GossipMaxSize)
	if err != nil {
		combined := append(cfg.MessageDomainInvalidSnappy[:], pmsg.Data...)
		h := hash.Hash(combined)
		return string(h[:20])
	}
	combined := append(cfg.MessageDomainValidSnappy[:], decoded...)
	h := hash.Hash(combined)
	return string(h[:20])
}
