package p2p

import (
	"bytes"
	"context"
	"reflect"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/monitoring/tracing"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"go.opencensus.io/trace"
)

// ErrMessageNotMapped occurs on a Broadcast attempt when a message has not been defined in the
// GossipTypeMapping.
var ErrMessageNotMapped = errors.New("message type is not mapped to a PubSub topic")

// Broadcast a message to the p2p network on the topic its type maps to.
func (s *Service) Broadcast(ctx context.Context, msg Message) error {
	ctx, span := trace.StartSpan(ctx, "p2p.Broadcast")
	defer span.End()

	topic, err := s.topicForMessage(msg)
	if err != nil {
		tracing.AnnotateError(span, err)
		return err
	}
	span.AddAttributes(trace.StringAttribute("topic", topic))

	buf := new(bytes.Buffer)
	if _, err := s.Encoding().EncodeGossip(buf, msg); err != nil {
		err := errors.Wrap(err, "could not encode message")
		tracing.AnnotateError(span, err)
		return err
	}
	if err := s.PublishToTopic(ctx, topic, buf.Bytes()); err != nil {
		tracing.AnnotateError(span, err)
		return err
	}
	messagesPublished.WithLabelValues(topicLabel(topic)).Inc()
	return nil
}

func (s *Service) topicForMessage(msg Message) (string, error) {
	t, ok := GossipTypeMapping[reflect.TypeOf(msg)]
	if !ok {
		return "", errors.Wrapf(ErrMessageNotMapped, "%T", msg)
	}
	var subnet uint64
	if sc, ok := msg.(*ethpb.SignedBlobSidecar); ok {
		if sc.Message == nil {
			return "", errors.New("blob sidecar has no message")
		}
		subnet = BlobSidecarSubnet(sc.Message.Index)
	}
	return s.Topic(t, subnet), nil
}

// BlobSidecarSubnet returns the subnet a blob sidecar with the given index is gossiped on.
func BlobSidecarSubnet(index uint64) uint64 {
	return index % params.BeaconConfig().BlobsidecarSubnetCount
}
