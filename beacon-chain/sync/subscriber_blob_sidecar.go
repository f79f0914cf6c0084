package sync

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/das"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
	"github.com/prysmaticlabs/blobnode/beacon-chain/verification"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/blobnode/runtime/logging"
)

type blobSeenKey struct {
	root  [32]byte
	index uint64
}

func (s *Service) blobSidecarSubscriber(ctx context.Context, msg *GossipMessage) error {
	signed, ok := msg.Decoded.(*ethpb.SignedBlobSidecar)
	if !ok {
		return reject(errors.Wrapf(errWrongMessage, "%T", msg.Decoded))
	}
	if signed.Message == nil {
		return reject(errNilMessage)
	}
	sc := signed.Message
	g, err := p2p.ParseGossipTopic(msg.Topic)
	if err != nil {
		return reject(err)
	}
	if want := p2p.BlobSidecarSubnet(sc.Index); want != g.Subnet {
		return reject(errors.Errorf("blob sidecar %d sent on subnet %d, expected %d", sc.Index, g.Subnet, want))
	}
	key := blobSeenKey{index: sc.Index}
	copy(key.root[:], sc.BlockRoot)
	if s.seenBlobCache.Contains(key) {
		return ignore(errors.Errorf("blob sidecar %d of %#x already seen", sc.Index, key.root))
	}
	if err := verification.VerifySidecarKZGProof(sc); err != nil {
		return importVerdict(err)
	}
	stashed, err := s.cfg.pending.StashSidecar(sc)
	if err != nil {
		return reject(err)
	}
	if !stashed {
		return ignore(errors.New("a sidecar for this index is already pending"))
	}
	s.seenBlobCache.Add(key, true)
	log.WithFields(logging.BlobFields(sc)).Debug("Received blob sidecar gossip")
	return s.tryComplete(ctx, das.KeyFromSidecar(sc))
}
