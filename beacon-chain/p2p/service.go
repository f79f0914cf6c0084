// Package p2p runs the libp2p host and the gossipsub router the node uses to exchange blocks,
// blob sidecars and operations with its peers.
package p2p

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"github.com/libp2p/go-libp2p"
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/p2p/security/noise"
	"github.com/libp2p/go-libp2p/p2p/transport/tcp"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/async"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p/encoder"
	"github.com/sirupsen/logrus"
)

const (
	defaultHostAddress = "127.0.0.1"
	peerEventQueueSize = 64
	metricsInterval    = 10 * time.Second
)

var (
	errNotStarted = errors.New("p2p service not started")
	errStopped    = errors.New("p2p service stopped")
)

// Config for the p2p service.
type Config struct {
	HostAddress           string
	TCPPort               uint
	PrivateKey            crypto.PrivKey
	StaticPeers           []string
	ForkVersion           [4]byte
	GenesisValidatorsRoot [32]byte
	UserAgent             string
}

// Service for managing peer to peer (p2p) networking.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *Config

	host   host.Host
	pubsub *pubsub.PubSub
	mesh   *meshTracer

	joinedTopics     map[string]*pubsub.Topic
	joinedTopicsLock sync.Mutex

	peerFeed   event.Feed
	peerEvents chan *PeerEvent

	forkDigest  [4]byte
	forkVersion int

	statusLock sync.RWMutex
	started    bool
	stopped    bool
}

// NewService builds the libp2p host and the gossipsub router. The host listens immediately, gossip
// and peer events flow once Start is called.
func NewService(ctx context.Context, cfg *Config) (*Service, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	digest, err := ComputeForkDigest(cfg.ForkVersion, cfg.GenesisValidatorsRoot)
	if err != nil {
		return nil, err
	}
	runtimeVersion, err := forkVersionToRuntime(cfg.ForkVersion)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Service{
		ctx:          ctx,
		cancel:       cancel,
		cfg:          cfg,
		mesh:         newMeshTracer(),
		joinedTopics: make(map[string]*pubsub.Topic),
		peerEvents:   make(chan *PeerEvent, peerEventQueueSize),
		forkDigest:   digest,
		forkVersion:  runtimeVersion,
	}

	opts, err := s.buildOptions()
	if err != nil {
		cancel()
		return nil, err
	}
	h, err := libp2p.New(opts...)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "could not create libp2p host")
	}
	s.host = h

	gs, err := pubsub.NewGossipSub(ctx, h, s.pubsubOptions()...)
	if err != nil {
		cancel()
		if closeErr := h.Close(); closeErr != nil {
			log.WithError(closeErr).Error("Could not close host")
		}
		return nil, errors.Wrap(err, "could not create gossipsub router")
	}
	s.pubsub = gs
	return s, nil
}

func (s *Service) buildOptions() ([]libp2p.Option, error) {
	priv := s.cfg.PrivateKey
	if priv == nil {
		var err error
		priv, _, err = crypto.GenerateSecp256k1Key(rand.Reader)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate identity key")
		}
	}
	ip := s.cfg.HostAddress
	if ip == "" {
		ip = defaultHostAddress
	}
	listen, err := ma.NewMultiaddr(fmt.Sprintf("/ip4/%s/tcp/%d", ip, s.cfg.TCPPort))
	if err != nil {
		return nil, errors.Wrap(err, "invalid listen address")
	}
	userAgent := s.cfg.UserAgent
	if userAgent == "" {
		userAgent = "blobnode"
	}
	return []libp2p.Option{
		libp2p.Identity(priv),
		libp2p.ListenAddrs(listen),
		libp2p.UserAgent(userAgent),
		libp2p.Transport(tcp.NewTCPTransport),
		libp2p.Security(noise.ID, noise.New),
		libp2p.Ping(false),
		libp2p.DisableRelay(),
	}, nil
}

// Start the p2p service.
func (s *Service) Start() {
	s.statusLock.Lock()
	if s.started || s.stopped {
		s.statusLock.Unlock()
		log.Error("Attempted to start p2p service when it was already started")
		return
	}
	s.started = true
	s.statusLock.Unlock()

	s.registerConnectionHandlers()
	go s.dispatchPeerEvents()
	s.connectStaticPeers()
	async.RunEvery(s.ctx, metricsInterval, s.updateMetrics)

	logListenAddrs(s.host.ID(), s.host.Addrs())
	log.WithFields(logrus.Fields{
		"forkDigest": fmt.Sprintf("%#x", s.forkDigest),
		"peerID":     s.host.ID().String(),
	}).Info("Started p2p service")
}

// Stop the p2p service and close the host. In-flight publishes and dials are aborted.
func (s *Service) Stop() error {
	s.statusLock.Lock()
	s.stopped = true
	s.statusLock.Unlock()

	s.cancel()
	return s.host.Close()
}

// Status of the p2p service. Will return an error if the service is considered unhealthy to
// indicate that this node should not serve traffic until the issue has been resolved.
func (s *Service) Status() error {
	s.statusLock.RLock()
	defer s.statusLock.RUnlock()
	if s.stopped {
		return errStopped
	}
	if !s.started {
		return errNotStarted
	}
	return nil
}

// PubSub returns the p2p pubsub framework.
func (s *Service) PubSub() *pubsub.PubSub {
	return s.pubsub
}

// Host returns the libp2p host.
func (s *Service) Host() host.Host {
	return s.host
}

// Encoding returns the configured networking encoding.
func (s *Service) Encoding() encoder.NetworkEncoding {
	return &encoder.SszNetworkEncoder{}
}

// PeerID returns the Peer ID of the local peer.
func (s *Service) PeerID() peer.ID {
	return s.host.ID()
}

// NetworkIdentity returns the peer id and the listen addresses other nodes can dial.
func (s *Service) NetworkIdentity() peer.AddrInfo {
	return peer.AddrInfo{ID: s.host.ID(), Addrs: s.host.Addrs()}
}

// P2PAddrs renders every listen address with the /p2p/<id> suffix.
func (s *Service) P2PAddrs() ([]ma.Multiaddr, error) {
	info := s.NetworkIdentity()
	return peer.AddrInfoToP2pAddrs(&info)
}

// ForkDigest returns the digest every topic of this node is scoped to.
func (s *Service) ForkDigest() [4]byte {
	return s.forkDigest
}

// ForkRuntimeVersion returns the runtime version of blocks gossiped under the node's fork.
func (s *Service) ForkRuntimeVersion() int {
	return s.forkVersion
}

// Topic renders the full topic string for t under the node's fork digest.
func (s *Service) Topic(t GossipType, subnet uint64) string {
	return GossipTopic{ForkDigest: s.forkDigest, Type: t, Subnet: subnet}.String()
}
