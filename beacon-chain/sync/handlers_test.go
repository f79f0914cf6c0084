package sync

import (
	"context"
	"sync"
	"testing"
	"time"

	pubsub "github.com/libp2p/go-libp2p-pubsub"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/das"
	"github.com/prysmaticlabs/blobnode/beacon-chain/operations/blstoexec"
	"github.com/prysmaticlabs/blobnode/beacon-chain/operations/synccommittee"
	"github.com/prysmaticlabs/blobnode/beacon-chain/operations/voluntaryexits"
	"github.com/prysmaticlabs/blobnode/beacon-chain/p2p"
	"github.com/prysmaticlabs/blobnode/beacon-chain/verification"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/blobnode/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReceiver struct {
	lock   sync.Mutex
	inputs []blocks.BlockInput
	err    error
	ch     chan blocks.BlockInput
}

func newFakeReceiver() *fakeReceiver {
	return &fakeReceiver{ch: make(chan blocks.BlockInput, 8)}
}

func (r *fakeReceiver) ReceiveBlockInputs(_ context.Context, inputs []blocks.BlockInput) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.inputs = append(r.inputs, inputs...)
	for _, in := range inputs {
		r.ch <- in
	}
	return r.err
}

func (r *fakeReceiver) received() []blocks.BlockInput {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]blocks.BlockInput(nil), r.inputs...)
}

// newHandlerService builds a service without a network so handlers can be called directly.
func newHandlerService(t *testing.T, r *fakeReceiver) *Service {
	s := &Service{
		ctx: context.Background(),
		cfg: &config{
			receiver:      r,
			pending:       das.NewCache(time.Minute),
			exitPool:      voluntaryexits.NewPool(),
			blsToExecPool: blstoexec.NewPool(),
			syncCommStore: synccommittee.NewStore(),
		},
		subscriptions: make(map[string]*topicSubscription),
	}
	require.NoError(t, s.initCaches())
	return s
}

func blobTopic(subnet uint64) string {
	return p2p.GossipTopic{ForkDigest: [4]byte{1, 2, 3, 4}, Type: p2p.GossipBlobSidecar, Subnet: subnet}.String()
}

func blockMessage(t *testing.T, rb blocks.ROBlock) *GossipMessage {
	pb, err := rb.Proto()
	require.NoError(t, err)
	msg, ok := pb.(p2p.Message)
	require.True(t, ok)
	raw, err := msg.MarshalSSZ()
	require.NoError(t, err)
	return &GossipMessage{SerializedData: raw, Decoded: msg}
}

func sidecarMessage(sc *ethpb.BlobSidecar) *GossipMessage {
	return &GossipMessage{
		Topic:   blobTopic(p2p.BlobSidecarSubnet(sc.Index)),
		Decoded: util.NewSignedBlobSidecar(sc),
	}
}

func TestBeaconBlockSubscriber_PreBlobGoesStraightToImport(t *testing.T) {
	r := newFakeReceiver()
	s := newHandlerService(t, r)
	rb := util.GenerateTestCapellaBlock(t, [32]byte{1}, 5)
	msg := blockMessage(t, rb)

	require.NoError(t, s.beaconBlockSubscriber(context.Background(), msg))
	got := r.received()
	require.Len(t, got, 1)
	assert.Equal(t, rb.Root(), got[0].Root())
	assert.Equal(t, blocks.BlockSourceGossip, got[0].Source())
	assert.Equal(t, msg.SerializedData, got[0].SerializedData())

	err := s.beaconBlockSubscriber(context.Background(), msg)
	assert.Equal(t, pubsub.ValidationIgnore, verdict(err))
	assert.Len(t, r.received(), 1)
}

func TestBeaconBlockSubscriber_WaitsForSidecars(t *testing.T) {
	r := newFakeReceiver()
	s := newHandlerService(t, r)
	rb, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{2}, util.DenebSlot()+1, 2)
	msg := blockMessage(t, rb)
	ctx := context.Background()

	require.NoError(t, s.beaconBlockSubscriber(ctx, msg))
	require.NoError(t, s.blobSidecarSubscriber(ctx, sidecarMessage(sidecars[1])))
	assert.Empty(t, r.received())
	require.NoError(t, s.blobSidecarSubscriber(ctx, sidecarMessage(sidecars[0])))

	got := util.RequireReceive(t, r.ch, time.Second)
	assert.Equal(t, rb.Root(), got.Root())
	assert.Equal(t, msg.SerializedData, got.SerializedData())
	scs, err := got.Blobs()
	require.NoError(t, err)
	require.Len(t, scs, 2)
	assert.Equal(t, uint64(0), scs[0].Index)
}

func TestBeaconBlockSubscriber_SidecarsFirst(t *testing.T) {
	r := newFakeReceiver()
	s := newHandlerService(t, r)
	rb, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{3}, util.DenebSlot()+2, 1)
	ctx := context.Background()

	require.NoError(t, s.blobSidecarSubscriber(ctx, sidecarMessage(sidecars[0])))
	assert.Empty(t, r.received())
	require.NoError(t, s.beaconBlockSubscriber(ctx, blockMessage(t, rb)))
	got := util.RequireReceive(t, r.ch, time.Second)
	assert.Equal(t, rb.Root(), got.Root())
}

func TestBeaconBlockSubscriber_ImportErrorVerdicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want pubsub.ValidationResult
	}{
		{name: "malformed", err: errors.Wrap(verification.ErrSidecarMismatch, "index 0"), want: pubsub.ValidationReject},
		{name: "verification failure", err: verification.ErrProofBatchInvalid, want: pubsub.ValidationReject},
		{name: "local failure", err: errors.New("db closed"), want: pubsub.ValidationIgnore},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeReceiver()
			r.err = tt.err
			s := newHandlerService(t, r)
			rb := util.GenerateTestCapellaBlock(t, [32]byte{byte(i)}, 9)
			err := s.beaconBlockSubscriber(context.Background(), blockMessage(t, rb))
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.want, verdict(err))
		})
	}
}

func TestBeaconBlockSubscriber_RetriesAfterImportFailure(t *testing.T) {
	ctx := context.Background()
	t.Run("pre-blob", func(t *testing.T) {
		r := newFakeReceiver()
		r.err = errors.New("db closed")
		s := newHandlerService(t, r)
		msg := blockMessage(t, util.GenerateTestCapellaBlock(t, [32]byte{6}, 11))

		assert.Equal(t, pubsub.ValidationIgnore, verdict(s.beaconBlockSubscriber(ctx, msg)))
		r.lock.Lock()
		r.err = nil
		r.lock.Unlock()
		require.NoError(t, s.beaconBlockSubscriber(ctx, msg))
		assert.Len(t, r.received(), 2)
	})
	t.Run("post-blob", func(t *testing.T) {
		r := newFakeReceiver()
		r.err = errors.New("parent not in fork choice")
		s := newHandlerService(t, r)
		rb, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{7}, util.DenebSlot()+5, 1)
		msg := blockMessage(t, rb)

		require.NoError(t, s.beaconBlockSubscriber(ctx, msg))
		err := s.blobSidecarSubscriber(ctx, sidecarMessage(sidecars[0]))
		assert.Equal(t, pubsub.ValidationIgnore, verdict(err))
		util.RequireReceive(t, r.ch, time.Second)

		r.lock.Lock()
		r.err = nil
		r.lock.Unlock()
		require.NoError(t, s.beaconBlockSubscriber(ctx, msg))
		require.NoError(t, s.blobSidecarSubscriber(ctx, sidecarMessage(sidecars[0])))
		got := util.RequireReceive(t, r.ch, time.Second)
		assert.Equal(t, rb.Root(), got.Root())
		assert.Len(t, r.received(), 2)
	})
}

func TestBlobSidecarSubscriber_BadProofDoesNotBlockImport(t *testing.T) {
	r := newFakeReceiver()
	s := newHandlerService(t, r)
	ctx := context.Background()
	rb, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{8}, util.DenebSlot()+6, 2)
	good := sidecars[1]
	bad := *good
	bad.Blob = append([]byte(nil), good.Blob...)
	bad.Blob[31] ^= 0x01

	err := s.blobSidecarSubscriber(ctx, sidecarMessage(&bad))
	require.ErrorIs(t, err, verification.ErrSidecarProofInvalid)
	assert.Equal(t, pubsub.ValidationReject, verdict(err))

	require.NoError(t, s.beaconBlockSubscriber(ctx, blockMessage(t, rb)))
	require.NoError(t, s.blobSidecarSubscriber(ctx, sidecarMessage(sidecars[0])))
	assert.Empty(t, r.received())
	require.NoError(t, s.blobSidecarSubscriber(ctx, sidecarMessage(good)))

	got := util.RequireReceive(t, r.ch, time.Second)
	assert.Equal(t, rb.Root(), got.Root())
	scs, err := got.Blobs()
	require.NoError(t, err)
	cmts, err := rb.Block().Body().BlobKzgCommitments()
	require.NoError(t, err)
	require.NoError(t, verification.VerifyBlobSidecars(ctx, rb.Block().Slot(), rb.Root(), rb.Block().Body().Transactions(), cmts, scs))
}

func TestBlobSidecarSubscriber_Rejects(t *testing.T) {
	s := newHandlerService(t, newFakeReceiver())
	ctx := context.Background()
	_, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{4}, util.DenebSlot()+3, 2)

	wrongSubnet := sidecarMessage(sidecars[1])
	wrongSubnet.Topic = blobTopic(0)
	assert.Equal(t, pubsub.ValidationReject, verdict(s.blobSidecarSubscriber(ctx, wrongSubnet)))

	noMessage := &GossipMessage{Topic: blobTopic(0), Decoded: &ethpb.SignedBlobSidecar{}}
	assert.Equal(t, pubsub.ValidationReject, verdict(s.blobSidecarSubscriber(ctx, noMessage)))

	wrongType := &GossipMessage{Topic: blobTopic(0), Decoded: util.NewSignedVoluntaryExit(1, 1)}
	err := s.blobSidecarSubscriber(ctx, wrongType)
	assert.ErrorIs(t, err, errWrongMessage)
	assert.Equal(t, pubsub.ValidationReject, verdict(err))

	require.NoError(t, s.blobSidecarSubscriber(ctx, sidecarMessage(sidecars[0])))
	assert.Equal(t, pubsub.ValidationIgnore, verdict(s.blobSidecarSubscriber(ctx, sidecarMessage(sidecars[0]))))
}

func TestBlobSidecarSubscriber_RejectsOutOfRangeIndex(t *testing.T) {
	s := newHandlerService(t, newFakeReceiver())
	_, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{5}, util.DenebSlot()+4, 1)
	sc := sidecars[0]
	sc.Index = 6
	err := s.blobSidecarSubscriber(context.Background(), sidecarMessage(sc))
	assert.ErrorIs(t, err, das.ErrIndexOutOfRange)
	assert.Equal(t, pubsub.ValidationReject, verdict(err))
}

func TestVoluntaryExitSubscriber(t *testing.T) {
	s := newHandlerService(t, newFakeReceiver())
	ctx := context.Background()
	exit := util.NewSignedVoluntaryExit(3, 12)

	require.NoError(t, s.voluntaryExitSubscriber(ctx, &GossipMessage{Decoded: exit}))
	pending := s.ExitPool().PendingExits(3, true)
	require.Len(t, pending, 1)
	assert.Equal(t, exit, pending[0])

	err := s.voluntaryExitSubscriber(ctx, &GossipMessage{Decoded: util.NewSignedVoluntaryExit(4, 12)})
	assert.Equal(t, pubsub.ValidationIgnore, verdict(err))
	assert.Equal(t, pubsub.ValidationReject, verdict(s.voluntaryExitSubscriber(ctx, &GossipMessage{Decoded: &ethpb.SignedVoluntaryExit{}})))
}

func TestBLSToExecutionChangeSubscriber(t *testing.T) {
	s := newHandlerService(t, newFakeReceiver())
	ctx := context.Background()

	require.NoError(t, s.blsToExecutionChangeSubscriber(ctx, &GossipMessage{Decoded: util.NewSignedBLSToExecutionChange(2)}))
	require.NoError(t, s.blsToExecutionChangeSubscriber(ctx, &GossipMessage{Decoded: util.NewSignedBLSToExecutionChange(1)}))
	err := s.blsToExecutionChangeSubscriber(ctx, &GossipMessage{Decoded: util.NewSignedBLSToExecutionChange(2)})
	assert.Equal(t, pubsub.ValidationIgnore, verdict(err))

	pending := s.BLSToExecPool().PendingBLSToExecChanges(true)
	require.Len(t, pending, 2)
	assert.Equal(t, uint64(1), uint64(pending[0].Message.ValidatorIndex))
}

func TestSyncContributionSubscriber(t *testing.T) {
	s := newHandlerService(t, newFakeReceiver())
	ctx := context.Background()

	empty := util.NewSignedContributionAndProof(10, 1)
	assert.Equal(t, pubsub.ValidationReject, verdict(s.syncContributionSubscriber(ctx, &GossipMessage{Decoded: empty})))

	c := util.NewSignedContributionAndProof(10, 1, 0, 5)
	require.NoError(t, s.syncContributionSubscriber(ctx, &GossipMessage{Decoded: c}))
	assert.Equal(t, pubsub.ValidationIgnore, verdict(s.syncContributionSubscriber(ctx, &GossipMessage{Decoded: c})))

	other := util.NewSignedContributionAndProof(10, 2, 3)
	require.NoError(t, s.syncContributionSubscriber(ctx, &GossipMessage{Decoded: other}))
	assert.Len(t, s.SyncCommitteeStore().SyncCommitteeContributions(10), 2)
}

func TestLightClientSubscribers_OnlyNewerUpdates(t *testing.T) {
	s := newHandlerService(t, newFakeReceiver())
	ctx := context.Background()
	optimistic := func(slot uint64) error {
		return s.lightClientOptimisticUpdateSubscriber(ctx, &GossipMessage{Decoded: util.NewLightClientOptimisticUpdate(primitives.Slot(slot))})
	}
	finality := func(slot uint64) error {
		return s.lightClientFinalityUpdateSubscriber(ctx, &GossipMessage{Decoded: util.NewLightClientFinalityUpdate(primitives.Slot(slot))})
	}

	require.NoError(t, optimistic(10))
	assert.ErrorIs(t, optimistic(10), errStaleUpdate)
	assert.Equal(t, pubsub.ValidationIgnore, verdict(optimistic(9)))
	require.NoError(t, optimistic(11))

	// The two update kinds are tracked separately.
	require.NoError(t, finality(10))
	assert.ErrorIs(t, finality(8), errStaleUpdate)

	err := s.lightClientFinalityUpdateSubscriber(ctx, &GossipMessage{Decoded: &ethpb.LightClientFinalityUpdate{SignatureSlot: 20}})
	assert.Equal(t, pubsub.ValidationReject, verdict(err))
}
