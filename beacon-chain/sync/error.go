package sync

import (
	"fmt"

	pubsub "github.com/libp2p/go-libp2p-pubsub"
	"github.com/pkg/errors"
)

var (
	errWrongMessage = errors.New("wrong pubsub message")
	errNilMessage   = errors.New("nil pubsub message")
	errNilTopic     = errors.New("pubsub message has no topic")
)

// GossipAction is the verdict a handler asks for when it refuses a message.
type GossipAction int

const (
	// GossipIgnore drops the message without penalising the sender.
	GossipIgnore GossipAction = iota
	// GossipReject drops the message and penalises the sender.
	GossipReject
)

func (a GossipAction) String() string {
	switch a {
	case GossipIgnore:
		return "ignore"
	case GossipReject:
		return "reject"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

func (a GossipAction) result() pubsub.ValidationResult {
	if a == GossipReject {
		return pubsub.ValidationReject
	}
	return pubsub.ValidationIgnore
}

// GossipError carries the verdict of a refused gossip message and the reason for it.
type GossipError struct {
	Action GossipAction
	Err    error
}

// NewGossipError wraps err with the verdict action.
func NewGossipError(action GossipAction, err error) *GossipError {
	return &GossipError{Action: action, Err: err}
}

func ignore(err error) *GossipError { return NewGossipError(GossipIgnore, err) }

func reject(err error) *GossipError { return NewGossipError(GossipReject, err) }

func (e *GossipError) Error() string {
	if e.Err == nil {
		return "gossip " + e.Action.String()
	}
	return fmt.Sprintf("gossip %s: %v", e.Action, e.Err)
}

func (e *GossipError) Unwrap() error {
	return e.Err
}

// verdict maps the error a handler returned onto a validation result. A nil error accepts the
// message, a GossipError applies its action and anything else ignores the message.
func verdict(err error) pubsub.ValidationResult {
	if err == nil {
		return pubsub.ValidationAccept
	}
	var ge *GossipError
	if errors.As(err, &ge) {
		return ge.Action.result()
	}
	return pubsub.ValidationIgnore
}
