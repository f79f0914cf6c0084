package sync

import (
	"context"

	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
	"github.com/prysmaticlabs/blobnode/beacon-chain/verification"
)

// GossipMessage is a decoded gossip message as a handler sees it.
type GossipMessage struct {
	Topic string
	From  peer.ID
	// SerializedData is the SSZ encoding the sender published, after snappy decompression.
	SerializedData []byte
	Decoded        p2p.Message
}

// GossipHandler processes one message. Returning nil accepts the message for propagation, a
// *GossipError picks the verdict and any other error ignores the message.
type GossipHandler func(ctx context.Context, msg *GossipMessage) error

// GossipHandlers maps each gossip type to the handler of its topics.
type GossipHandlers map[p2p.GossipType]GossipHandler

func (s *Service) defaultGossipHandlers() GossipHandlers {
	return GossipHandlers{
		p2p.GossipBeaconBlock:                 s.beaconBlockSubscriber,
		p2p.GossipBlobSidecar:                 s.blobSidecarSubscriber,
		p2p.GossipVoluntaryExit:               s.voluntaryExitSubscriber,
		p2p.GossipBLSToExecutionChange:        s.blsToExecutionChangeSubscriber,
		p2p.GossipSyncCommitteeContribution:   s.syncContributionSubscriber,
		p2p.GossipLightClientFinalityUpdate:   s.lightClientFinalityUpdateSubscriber,
		p2p.GossipLightClientOptimisticUpdate: s.lightClientOptimisticUpdateSubscriber,
	}
}

// importVerdict rejects inputs that are malformed or fail verification and ignores every
// other import error, which usually says more about local state than about the sender.
func importVerdict(err error) error {
	if err == nil {
		return nil
	}
	if verification.IsMalformed(err) || verification.IsVerificationFailure(err) {
		return reject(err)
	}
	return ignore(err)
}
