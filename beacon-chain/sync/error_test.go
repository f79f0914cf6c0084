package sync

import (
	"testing"

	pubsub "github.com/libp2p/go-libp2p-pubsub"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdict(t *testing.T) {
	cause := errors.New("bad")
	tests := []struct {
		name string
		err  error
		want pubsub.ValidationResult
	}{
		{name: "nil accepts", err: nil, want: pubsub.ValidationAccept},
		{name: "ignore", err: ignore(cause), want: pubsub.ValidationIgnore},
		{name: "reject", err: reject(cause), want: pubsub.ValidationReject},
		{name: "wrapped reject", err: errors.Wrap(reject(cause), "context"), want: pubsub.ValidationReject},
		{name: "plain error ignores", err: cause, want: pubsub.ValidationIgnore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verdict(tt.err))
		})
	}
}

func TestGossipError_Unwrap(t *testing.T) {
	err := reject(errNilMessage)
	require.ErrorIs(t, err, errNilMessage)
	assert.Equal(t, "gossip reject: nil pubsub message", err.Error())
	assert.Equal(t, "gossip ignore", NewGossipError(GossipIgnore, nil).Error())
	assert.Equal(t, "unknown(7)", GossipAction(7).String())
}
