package p2p

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/encoding/bytesutil"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/blobnode/runtime/version"
	"github.com/prysmaticlabs/blobnode/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createService(t *testing.T) *Service {
	s, err := NewService(context.Background(), &Config{
		ForkVersion:           bytesutil.ToBytes4(params.BeaconConfig().DenebForkVersion),
		GenesisValidatorsRoot: [32]byte{'g', 'v', 'r'},
	})
	require.NoError(t, err)
	s.Start()
	t.Cleanup(func() {
		require.NoError(t, s.Stop())
	})
	return s
}

func connect(t *testing.T, a, b *Service) {
	id := b.NetworkIdentity()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, a.ConnectToPeer(ctx, id.ID, id.Addrs))
}

func TestNewService_UnsupportedFork(t *testing.T) {
	_, err := NewService(context.Background(), &Config{ForkVersion: [4]byte{0xff}})
	require.ErrorIs(t, err, errUnsupportedForkVersion)
}

func TestService_Status(t *testing.T) {
	s, err := NewService(context.Background(), &Config{
		ForkVersion: bytesutil.ToBytes4(params.BeaconConfig().CapellaForkVersion),
	})
	require.NoError(t, err)
	assert.ErrorIs(t, s.Status(), errNotStarted)
	assert.Equal(t, version.Capella, s.ForkRuntimeVersion())
	s.Start()
	assert.NoError(t, s.Status())
	require.NoError(t, s.Stop())
	assert.ErrorIs(t, s.Status(), errStopped)
}

func TestService_ConnectSelf(t *testing.T) {
	s := createService(t)
	id := s.NetworkIdentity()
	assert.ErrorIs(t, s.ConnectToPeer(context.Background(), id.ID, id.Addrs), errSelfConnect)
}

func TestService_PeerEvents(t *testing.T) {
	a := createService(t)
	b := createService(t)

	events1 := make(chan *PeerEvent, 4)
	events2 := make(chan *PeerEvent, 4)
	sub1 := a.SubscribePeerEvents(events1)
	defer sub1.Unsubscribe()
	sub2 := a.SubscribePeerEvents(events2)
	defer sub2.Unsubscribe()

	connect(t, a, b)
	for _, ch := range []chan *PeerEvent{events1, events2} {
		ev := util.RequireReceive(t, ch, 5*time.Second)
		assert.Equal(t, PeerConnected, ev.Type)
		assert.Equal(t, b.PeerID(), ev.PeerID)
	}
	assert.Equal(t, 1, a.ConnectedPeerCount())

	require.NoError(t, a.DisconnectPeer(b.PeerID()))
	for _, ch := range []chan *PeerEvent{events1, events2} {
		ev := util.RequireReceive(t, ch, 5*time.Second)
		assert.Equal(t, PeerDisconnected, ev.Type)
	}
}

func TestService_GossipBetweenTwoNodes(t *testing.T) {
	a := createService(t)
	b := createService(t)
	connect(t, a, b)

	topic := a.Topic(GossipVoluntaryExit, 0)
	require.Equal(t, topic, b.Topic(GossipVoluntaryExit, 0))
	subA, err := a.SubscribeToTopic(topic)
	require.NoError(t, err)
	defer subA.Cancel()
	subB, err := b.SubscribeToTopic(topic)
	require.NoError(t, err)
	defer subB.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	require.NoError(t, a.WaitForMeshPeer(ctx, topic))
	require.NoError(t, b.WaitForMeshPeer(ctx, topic))
	assert.True(t, a.HasSomeMeshPeer())
	assert.Contains(t, a.DumpMeshPeers()[topic], b.PeerID())

	exit := util.NewSignedVoluntaryExit(7, 11)
	require.NoError(t, a.Broadcast(ctx, exit))

	msg, err := subB.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.PeerID(), msg.ReceivedFrom)

	got := &ethpb.SignedVoluntaryExit{}
	require.NoError(t, b.Encoding().DecodeGossip(msg.Data, got))
	want, err := exit.MarshalSSZ()
	require.NoError(t, err)
	gotBytes, err := got.MarshalSSZ()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, gotBytes))
	assert.Equal(t, exit.Exit.Epoch, got.Exit.Epoch)
}

func TestService_BroadcastBlobSidecarSubnet(t *testing.T) {
	s := createService(t)
	sc := util.NewSignedBlobSidecar(&ethpb.BlobSidecar{Index: 8})
	topic, err := s.topicForMessage(sc)
	require.NoError(t, err)
	assert.Equal(t, s.Topic(GossipBlobSidecar, 2), topic)

	_, err = s.topicForMessage(&ethpb.BlobSidecar{})
	assert.ErrorIs(t, err, ErrMessageNotMapped)
}

func TestService_LeaveTopic(t *testing.T) {
	s := createService(t)
	topic := s.Topic(GossipBLSToExecutionChange, 0)
	_, err := s.JoinTopic(topic)
	require.NoError(t, err)
	require.NoError(t, s.LeaveTopic(topic))
	require.NoError(t, s.LeaveTopic(topic))
}
