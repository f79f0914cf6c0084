package blockchain

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prysmaticlabs/blobnode/beacon-chain/db"
	testDB "github.com/prysmaticlabs/blobnode/beacon-chain/db/testing"
	fctesting "github.com/prysmaticlabs/blobnode/beacon-chain/forkchoice/testing"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	"github.com/prysmaticlabs/blobnode/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyDB fails the configured deletions and passes everything else through.
type flakyDB struct {
	db.NoHeadAccessDatabase
	deleteBlocksErr error
	deleteBlobsErr  error
}

func (f *flakyDB) DeleteBlocks(ctx context.Context, roots [][32]byte) error {
	if f.deleteBlocksErr != nil {
		return f.deleteBlocksErr
	}
	return f.NoHeadAccessDatabase.DeleteBlocks(ctx, roots)
}

func (f *flakyDB) DeleteBlobSidecarRecords(ctx context.Context, roots [][32]byte) error {
	if f.deleteBlobsErr != nil {
		return f.deleteBlobsErr
	}
	return f.NoHeadAccessDatabase.DeleteBlobSidecarRecords(ctx, roots)
}

// hookGateway runs onHas before answering HasBlockHex.
type hookGateway struct {
	*fctesting.Gateway
	onHas func(rootHex string)
}

func (g *hookGateway) HasBlockHex(rootHex string) bool {
	if g.onHas != nil {
		g.onHas(rootHex)
	}
	return g.Gateway.HasBlockHex(rootHex)
}

func setupPersister(t *testing.T, d db.NoHeadAccessDatabase, gw *fctesting.Gateway) *Persister {
	p, err := NewPersister(WithDatabase(d), WithForkChoiceGateway(gw))
	require.NoError(t, err)
	return p
}

func TestNewPersister_RequiresCollaborators(t *testing.T) {
	_, err := NewPersister(WithForkChoiceGateway(fctesting.NewGateway()))
	require.ErrorIs(t, err, errNilDatabase)
	_, err = NewPersister(WithDatabase(testDB.SetupDB(t)))
	require.ErrorIs(t, err, errNilForkChoice)
}

func TestPersist_SerializedDataStoredVerbatim(t *testing.T) {
	ctx := context.Background()
	beaconDB := testDB.SetupDB(t)
	p := setupPersister(t, beaconDB, fctesting.NewGateway())

	in := util.GenerateTestBlockInput(t, [32]byte{1}, util.DenebSlot()+3, 2)
	raw, err := in.Block().MarshalSSZ()
	require.NoError(t, err)
	withData := in.WithSerializedBytes(raw)

	before := testutil.ToFloat64(persistWithSerializedData)
	require.NoError(t, p.Persist(ctx, []blocks.BlockInput{withData}))
	assert.Equal(t, before+1, testutil.ToFloat64(persistWithSerializedData))

	got, err := beaconDB.BlockBytes(ctx, in.Root())
	require.NoError(t, err)
	require.Equal(t, raw, got)

	rec, err := beaconDB.BlobSidecarRecord(ctx, in.Root())
	require.NoError(t, err)
	require.Len(t, rec.Sidecars, 2)
	assert.Equal(t, in.Block().Block().ProposerIndex(), rec.ProposerIndex)
	parent := in.Block().Block().ParentRoot()
	assert.Equal(t, parent[:], rec.BlockParentRoot)
}

func TestPersist_NoSerializedDataUsesCanonicalEncoding(t *testing.T) {
	ctx := context.Background()
	beaconDB := testDB.SetupDB(t)
	p := setupPersister(t, beaconDB, fctesting.NewGateway())

	pre, err := blocks.NewPreBlobBlockInput(util.GenerateTestCapellaBlock(t, [32]byte{2}, 10))
	require.NoError(t, err)

	before := testutil.ToFloat64(persistNoSerializedData)
	require.NoError(t, p.Persist(ctx, []blocks.BlockInput{pre}))
	assert.Equal(t, before+1, testutil.ToFloat64(persistNoSerializedData))

	want, err := pre.Block().MarshalSSZ()
	require.NoError(t, err)
	got, err := beaconDB.BlockBytes(ctx, pre.Root())
	require.NoError(t, err)
	require.Equal(t, want, got)
	assert.False(t, beaconDB.HasBlobSidecarRecord(ctx, pre.Root()))

	marked, err := beaconDB.UnreconciledRoots(ctx)
	require.NoError(t, err)
	assert.Contains(t, marked, pre.Root())
	assert.Equal(t, 1, p.inFlightCount())
}

func TestPersist_RejectsUnknownVariant(t *testing.T) {
	beaconDB := testDB.SetupDB(t)
	p := setupPersister(t, beaconDB, fctesting.NewGateway())

	err := p.Persist(context.Background(), []blocks.BlockInput{nil})
	require.ErrorIs(t, err, ErrPersist)
	require.ErrorIs(t, err, blocks.ErrUnknownBlockInput)
	assert.Equal(t, 0, p.inFlightCount())
}

func TestPruneUnimported_RemovesExactlyUnknown(t *testing.T) {
	ctx := context.Background()
	beaconDB := testDB.SetupDB(t)
	gw := fctesting.NewGateway()
	p := setupPersister(t, beaconDB, gw)

	kept := util.GenerateTestBlockInput(t, [32]byte{1}, util.DenebSlot()+1, 1)
	dropped := util.GenerateTestBlockInput(t, [32]byte{1}, util.DenebSlot()+2, 1)
	pre, err := blocks.NewPreBlobBlockInput(util.GenerateTestCapellaBlock(t, [32]byte{3}, 7))
	require.NoError(t, err)
	inputs := []blocks.BlockInput{kept, dropped, pre}
	require.NoError(t, p.Persist(ctx, inputs))

	gw.Add(kept.Root())
	require.NoError(t, p.PruneUnimported(ctx, inputs))

	assert.True(t, beaconDB.HasBlock(ctx, kept.Root()))
	assert.True(t, beaconDB.HasBlobSidecarRecord(ctx, kept.Root()))
	assert.False(t, beaconDB.HasBlock(ctx, dropped.Root()))
	assert.False(t, beaconDB.HasBlobSidecarRecord(ctx, dropped.Root()))
	assert.False(t, beaconDB.HasBlock(ctx, pre.Root()))

	marked, err := beaconDB.UnreconciledRoots(ctx)
	require.NoError(t, err)
	assert.Empty(t, marked)
	assert.Equal(t, 0, p.inFlightCount())

	// Second pass finds nothing left to do.
	require.NoError(t, p.PruneUnimported(ctx, inputs))
	assert.True(t, beaconDB.HasBlock(ctx, kept.Root()))
	assert.False(t, beaconDB.HasBlock(ctx, dropped.Root()))
}

func TestPruneUnimported_IndependentBatches(t *testing.T) {
	ctx := context.Background()
	beaconDB := testDB.SetupDB(t)
	flaky := &flakyDB{NoHeadAccessDatabase: beaconDB, deleteBlocksErr: errors.New("disk on fire")}
	p := setupPersister(t, flaky, fctesting.NewGateway())

	in := util.GenerateTestBlockInput(t, [32]byte{1}, util.DenebSlot()+5, 1)
	require.NoError(t, p.Persist(ctx, []blocks.BlockInput{in}))

	err := p.PruneUnimported(ctx, []blocks.BlockInput{in})
	require.ErrorIs(t, err, ErrPrune)
	assert.ErrorContains(t, err, "disk on fire")

	// The blob batch went through even though the block batch failed.
	assert.True(t, beaconDB.HasBlock(ctx, in.Root()))
	assert.False(t, beaconDB.HasBlobSidecarRecord(ctx, in.Root()))

	// The marker stays so a later sweep can finish the job.
	marked, err := beaconDB.UnreconciledRoots(ctx)
	require.NoError(t, err)
	assert.Contains(t, marked, in.Root())

	flaky.deleteBlocksErr = nil
	require.NoError(t, p.ReconcileUnimported(ctx))
	assert.False(t, beaconDB.HasBlock(ctx, in.Root()))
	marked, err = beaconDB.UnreconciledRoots(ctx)
	require.NoError(t, err)
	assert.Empty(t, marked)
}

func TestReconcileUnimported_SkipsInFlight(t *testing.T) {
	ctx := context.Background()
	beaconDB := testDB.SetupDB(t)
	p := setupPersister(t, beaconDB, fctesting.NewGateway())

	in := util.GenerateTestBlockInput(t, [32]byte{1}, util.DenebSlot()+8, 0)
	require.NoError(t, p.Persist(ctx, []blocks.BlockInput{in}))

	require.NoError(t, p.ReconcileUnimported(ctx))
	assert.True(t, beaconDB.HasBlock(ctx, in.Root()), "in-flight block must survive the sweep")

	// A fresh persister over the same store models a restart after a crash mid-import.
	restarted := setupPersister(t, beaconDB, fctesting.NewGateway())
	require.NoError(t, restarted.ReconcileUnimported(ctx))
	assert.False(t, beaconDB.HasBlock(ctx, in.Root()))
}

func TestReconcileUnimported_PrunesOrphanedBlobRecord(t *testing.T) {
	ctx := context.Background()
	beaconDB := testDB.SetupDB(t)
	in := util.GenerateTestBlockInput(t, [32]byte{1}, util.DenebSlot()+10, 2)
	rec, err := blobSidecarRecord(in)
	require.NoError(t, err)

	// Only the blob record made it to disk before the node stopped.
	require.NoError(t, beaconDB.SaveBlobSidecarRecord(ctx, rec))
	require.False(t, beaconDB.HasBlock(ctx, in.Root()))

	p := setupPersister(t, beaconDB, fctesting.NewGateway())
	require.NoError(t, p.ReconcileUnimported(ctx))
	assert.False(t, beaconDB.HasBlobSidecarRecord(ctx, in.Root()))
	marked, err := beaconDB.UnreconciledRoots(ctx)
	require.NoError(t, err)
	assert.Empty(t, marked)
}

func TestReconcileUnimported_PersistDuringSweepSurvives(t *testing.T) {
	ctx := context.Background()
	beaconDB := testDB.SetupDB(t)
	in := util.GenerateTestBlockInput(t, [32]byte{1}, util.DenebSlot()+11, 1)

	// A write left over from before a restart.
	require.NoError(t, setupPersister(t, beaconDB, fctesting.NewGateway()).Persist(ctx, []blocks.BlockInput{in}))

	gw := &hookGateway{Gateway: fctesting.NewGateway()}
	p, err := NewPersister(WithDatabase(beaconDB), WithForkChoiceGateway(gw))
	require.NoError(t, err)

	persisted := make(chan error, 1)
	var once sync.Once
	gw.onHas = func(string) {
		once.Do(func() {
			go func() {
				persisted <- p.Persist(ctx, []blocks.BlockInput{in})
			}()
			// Give the concurrent import every chance to write before the sweep deletes.
			select {
			case err := <-persisted:
				persisted <- err
			case <-time.After(200 * time.Millisecond):
			}
		})
	}
	require.NoError(t, p.ReconcileUnimported(ctx))

	select {
	case err := <-persisted:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("persist did not finish after the sweep")
	}
	assert.True(t, beaconDB.HasBlock(ctx, in.Root()))
	assert.True(t, beaconDB.HasBlobSidecarRecord(ctx, in.Root()))
	marked, err := beaconDB.UnreconciledRoots(ctx)
	require.NoError(t, err)
	assert.Contains(t, marked, in.Root())
	assert.Equal(t, 1, p.inFlightCount())
}

func TestReconcileUnimported_KeepsKnown(t *testing.T) {
	ctx := context.Background()
	beaconDB := testDB.SetupDB(t)
	in := util.GenerateTestBlockInput(t, [32]byte{1}, util.DenebSlot()+9, 1)
	p := setupPersister(t, beaconDB, fctesting.NewGateway())
	require.NoError(t, p.Persist(ctx, []blocks.BlockInput{in}))

	restarted := setupPersister(t, beaconDB, fctesting.NewGateway(in.Root()))
	require.NoError(t, restarted.ReconcileUnimported(ctx))
	assert.True(t, beaconDB.HasBlock(ctx, in.Root()))
	assert.True(t, beaconDB.HasBlobSidecarRecord(ctx, in.Root()))
	marked, err := beaconDB.UnreconciledRoots(ctx)
	require.NoError(t, err)
	assert.Empty(t, marked)
}

func TestMarkImported_ClearsMarkers(t *testing.T) {
	ctx := context.Background()
	beaconDB := testDB.SetupDB(t)
	p := setupPersister(t, beaconDB, fctesting.NewGateway())

	in := util.GenerateTestBlockInput(t, [32]byte{1}, util.DenebSlot()+4, 0)
	require.NoError(t, p.Persist(ctx, []blocks.BlockInput{in}))
	require.NoError(t, p.MarkImported(ctx, [][32]byte{in.Root()}))

	marked, err := beaconDB.UnreconciledRoots(ctx)
	require.NoError(t, err)
	assert.Empty(t, marked)
	assert.Equal(t, 0, p.inFlightCount())
}
