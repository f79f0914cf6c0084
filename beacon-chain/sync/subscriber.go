package sync

import (
	"context"
	"fmt"
	"sort"
	"time"

	pubsub "github.com/libp2p/go-libp2p-pubsub"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p/encoder"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/monitoring/tracing"
	"github.com/prysmaticlabs/blobnode/runtime/version"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

const pubsubMessageTimeout = 30 * time.Second

// SubscriptionState is where a topic is in its subscription lifecycle.
type SubscriptionState int

const (
	Unsubscribed SubscriptionState = iota
	Subscribing
	Subscribed
)

func (st SubscriptionState) String() string {
	switch st {
	case Unsubscribed:
		return "unsubscribed"
	case Subscribing:
		return "subscribing"
	case Subscribed:
		return "subscribed"
	default:
		return fmt.Sprintf("unknown(%d)", int(st))
	}
}

type topicSubscription struct {
	state      SubscriptionState
	gossipType p2p.GossipType
	sub        *pubsub.Subscription
}

type coreTopic struct {
	topic      string
	gossipType p2p.GossipType
}

// coreTopics lists every topic of the current fork. Blob sidecar subnets only exist from Deneb.
func (s *Service) coreTopics() []coreTopic {
	var topics []coreTopic
	for _, t := range p2p.AllGossipTypes() {
		if t != p2p.GossipBlobSidecar {
			topics = append(topics, coreTopic{topic: s.cfg.p2p.Topic(t, 0), gossipType: t})
			continue
		}
		if s.cfg.p2p.ForkRuntimeVersion() < version.Deneb {
			continue
		}
		for i := uint64(0); i < params.BeaconConfig().BlobsidecarSubnetCount; i++ {
			topics = append(topics, coreTopic{topic: s.cfg.p2p.Topic(t, i), gossipType: t})
		}
	}
	return topics
}

// SubscribeGossipCoreTopics subscribes to every core topic that is not subscribed yet.
func (s *Service) SubscribeGossipCoreTopics() error {
	s.subscribeLock.Lock()
	defer s.subscribeLock.Unlock()
	for _, ct := range s.coreTopics() {
		if err := s.subscribe(ct.topic, ct.gossipType); err != nil {
			return err
		}
	}
	return nil
}

// UnsubscribeGossipCoreTopics leaves every subscribed topic. All topics are attempted and the
// first failure is returned.
func (s *Service) UnsubscribeGossipCoreTopics() error {
	s.subscribeLock.Lock()
	defer s.subscribeLock.Unlock()
	var firstErr error
	for _, topic := range s.subscribedTopics() {
		if err := s.unsubscribe(topic); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// SubscriptionState returns the state of topic. Unknown topics are Unsubscribed.
func (s *Service) SubscriptionState(topic string) SubscriptionState {
	s.subscriptionsLock.RLock()
	defer s.subscriptionsLock.RUnlock()
	if ts, ok := s.subscriptions[topic]; ok {
		return ts.state
	}
	return Unsubscribed
}

func (s *Service) subscribedTopics() []string {
	s.subscriptionsLock.RLock()
	defer s.subscriptionsLock.RUnlock()
	topics := make([]string, 0, len(s.subscriptions))
	for topic, ts := range s.subscriptions {
		if ts.state == Subscribed {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics
}

func (s *Service) subscribe(topic string, t p2p.GossipType) error {
	if s.SubscriptionState(topic) != Unsubscribed {
		return nil
	}
	ts := &topicSubscription{state: Subscribing, gossipType: t}
	s.subscriptionsLock.Lock()
	s.subscriptions[topic] = ts
	s.subscriptionsLock.Unlock()

	fail := func(err error) error {
		s.subscriptionsLock.Lock()
		delete(s.subscriptions, topic)
		s.subscriptionsLock.Unlock()
		return err
	}

	if err := s.cfg.p2p.PubSub().RegisterTopicValidator(topic, s.wrapAndReportValidation(topic, t)); err != nil {
		return fail(errors.Wrapf(err, "could not register validator for %s", topic))
	}
	sub, err := s.cfg.p2p.SubscribeToTopic(topic)
	if err != nil {
		if uerr := s.cfg.p2p.PubSub().UnregisterTopicValidator(topic); uerr != nil {
			log.WithError(uerr).WithField("topic", topic).Debug("Could not unregister validator")
		}
		return fail(errors.Wrapf(err, "could not subscribe to %s", topic))
	}

	s.subscriptionsLock.Lock()
	ts.sub = sub
	ts.state = Subscribed
	s.subscriptionsLock.Unlock()
	subscribedTopicsGauge.Inc()
	log.WithField("topic", topic).Debug("Subscribed to topic")

	go s.messageLoop(topic, sub)
	return nil
}

func (s *Service) unsubscribe(topic string) error {
	s.subscriptionsLock.Lock()
	ts, ok := s.subscriptions[topic]
	if !ok || ts.state != Subscribed {
		s.subscriptionsLock.Unlock()
		return nil
	}
	delete(s.subscriptions, topic)
	s.subscriptionsLock.Unlock()

	ts.sub.Cancel()
	subscribedTopicsGauge.Dec()
	err := s.cfg.p2p.PubSub().UnregisterTopicValidator(topic)
	// Cancel is processed asynchronously by the pubsub loop, so the topic may still have a
	// subscription attached. A later JoinTopic reuses the handle either way.
	if lerr := s.cfg.p2p.LeaveTopic(topic); lerr != nil {
		log.WithError(lerr).WithField("topic", topic).Debug("Could not leave topic")
	}
	log.WithField("topic", topic).Debug("Unsubscribed from topic")
	return errors.Wrapf(err, "could not unregister validator for %s", topic)
}

// messageLoop drains the subscription. Validation already ran the handler, so accepted messages
// are only counted here.
func (s *Service) messageLoop(topic string, sub *pubsub.Subscription) {
	self := s.cfg.p2p.PeerID()
	for {
		msg, err := sub.Next(s.ctx)
		if err != nil {
			if s.ctx.Err() == nil && !errors.Is(err, pubsub.ErrSubscriptionCancelled) {
				log.WithError(err).WithField("topic", topic).Error("Subscription next failed")
			}
			return
		}
		if msg.ReceivedFrom == self {
			continue
		}
		messageDeliveredCounter.WithLabelValues(topic).Inc()
	}
}

// wrapAndReportValidation decodes each message, runs the handler of gossip type t and turns its
// result into a validation verdict. A panicking handler ignores the message.
func (s *Service) wrapAndReportValidation(topic string, t p2p.GossipType) pubsub.ValidatorEx {
	handler := s.cfg.handlers[t]
	return func(ctx context.Context, pid peer.ID, msg *pubsub.Message) (res pubsub.ValidationResult) {
		defer func() {
			if r := recover(); r != nil {
				messageHandlerPanicCounter.WithLabelValues(topic).Inc()
				log.WithFields(logrus.Fields{
					"topic": topic,
					"panic": r,
				}).Error("Panic occurred in gossip handler")
				res = pubsub.ValidationIgnore
			}
		}()
		ctx, cancel := context.WithTimeout(ctx, pubsubMessageTimeout)
		defer cancel()
		ctx, span := trace.StartSpan(ctx, "sync.validateGossip")
		defer span.End()
		span.AddAttributes(trace.StringAttribute("topic", topic))

		if msg.Topic == nil {
			messageFailedValidationCounter.WithLabelValues(topic).Inc()
			tracing.AnnotateError(span, errNilTopic)
			return pubsub.ValidationReject
		}
		// Our own messages are accepted without running a handler.
		if pid == s.cfg.p2p.PeerID() {
			return pubsub.ValidationAccept
		}
		messageReceivedCounter.WithLabelValues(topic).Inc()

		gm, err := s.decodePubsubMessage(msg, t)
		if err != nil {
			messageFailedValidationCounter.WithLabelValues(topic).Inc()
			tracing.AnnotateError(span, err)
			log.WithError(err).WithFields(logrus.Fields{
				"topic": topic,
				"peer":  pid.String(),
			}).Debug("Could not decode gossip message")
			return pubsub.ValidationReject
		}
		gm.From = pid

		err = handler(ctx, gm)
		res = verdict(err)
		switch res {
		case pubsub.ValidationAccept:
			msg.ValidatorData = gm.Decoded
		case pubsub.ValidationReject:
			messageFailedValidationCounter.WithLabelValues(topic).Inc()
			tracing.AnnotateError(span, err)
			log.WithError(err).WithFields(logrus.Fields{
				"topic": topic,
				"peer":  pid.String(),
			}).Debug("Gossip message rejected")
		default:
			messageIgnoredValidationCounter.WithLabelValues(topic).Inc()
			log.WithError(err).WithField("topic", topic).Trace("Gossip message ignored")
		}
		return res
	}
}

func (s *Service) decodePubsubMessage(msg *pubsub.Message, t p2p.GossipType) (*GossipMessage, error) {
	raw, err := encoder.DecodeSnappy(msg.Data, encoder.MaxGossipSize())
	if err != nil {
		return nil, err
	}
	base, err := p2p.GossipTopicMappings(t, s.cfg.p2p.ForkRuntimeVersion())
	if err != nil {
		return nil, err
	}
	if err := base.UnmarshalSSZ(raw); err != nil {
		return nil, errors.Wrapf(encoder.ErrInvalidSSZ, "%T: %v", base, err)
	}
	return &GossipMessage{
		Topic:          *msg.Topic,
		SerializedData: raw,
		Decoded:        base,
	}, nil
}
