package verification

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/beacon-chain/blockchain/kzg"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/prysmaticlabs/blobnode/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	block    blocks.ROBlock
	txs      [][]byte
	cmts     [][]byte
	sidecars []*ethpb.BlobSidecar
}

func newFixture(t *testing.T, n int) *fixture {
	rb, sidecars := util.GenerateTestDenebBlockWithSidecars(t, [32]byte{'p'}, 64, n)
	cmts, err := rb.Block().Body().BlobKzgCommitments()
	require.NoError(t, err)
	return &fixture{block: rb, txs: rb.Block().Body().Transactions(), cmts: cmts, sidecars: sidecars}
}

func (f *fixture) verify(ctx context.Context, opts ...Option) error {
	return VerifyBlobSidecars(ctx, f.block.Block().Slot(), f.block.Root(), f.txs, f.cmts, f.sidecars, opts...)
}

func TestVerifyBlobSidecars_Valid(t *testing.T) {
	f := newFixture(t, 3)
	require.NoError(t, f.verify(context.Background()))
	require.NoError(t, f.verify(context.Background(), WithBisection()))
}

func TestVerifyBlobSidecars_NoBlobs(t *testing.T) {
	f := newFixture(t, 0)
	require.NoError(t, f.verify(context.Background()))
}

func TestVerifyBlobSidecars_CountMismatch(t *testing.T) {
	f := newFixture(t, 2)
	f.sidecars = f.sidecars[:1]
	err := f.verify(context.Background())
	require.ErrorIs(t, err, ErrBlobCountMismatch)
	require.True(t, IsMalformed(err))
	require.False(t, IsVerificationFailure(err))
}

func TestVerifyBlobSidecars_SidecarMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(sc *ethpb.BlobSidecar)
	}{
		{name: "index", mutate: func(sc *ethpb.BlobSidecar) { sc.Index = 5 }},
		{name: "slot", mutate: func(sc *ethpb.BlobSidecar) { sc.Slot++ }},
		{name: "root", mutate: func(sc *ethpb.BlobSidecar) { sc.BlockRoot = make([]byte, 32) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 2)
			tt.mutate(f.sidecars[1])
			err := f.verify(context.Background())
			require.ErrorIs(t, err, ErrSidecarMismatch)
			require.True(t, IsMalformed(err))
		})
	}
}

func TestVerifyBlobSidecars_FieldLengths(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(sc *ethpb.BlobSidecar)
	}{
		{name: "short blob", mutate: func(sc *ethpb.BlobSidecar) { sc.Blob = sc.Blob[:len(sc.Blob)-1] }},
		{name: "long blob", mutate: func(sc *ethpb.BlobSidecar) { sc.Blob = append(sc.Blob, 0) }},
		{name: "short commitment", mutate: func(sc *ethpb.BlobSidecar) { sc.KzgCommitment = sc.KzgCommitment[:47] }},
		{name: "short proof", mutate: func(sc *ethpb.BlobSidecar) { sc.KzgProof = sc.KzgProof[:47] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 2)
			tt.mutate(f.sidecars[1])
			err := f.verify(context.Background())
			require.ErrorIs(t, err, ErrSidecarMismatch)
			require.True(t, IsMalformed(err))

			err = VerifySidecarKZGProof(f.sidecars[1])
			require.ErrorIs(t, err, ErrSidecarMismatch)
		})
	}
}

func TestVerifySidecarKZGProof(t *testing.T) {
	f := newFixture(t, 2)
	require.NoError(t, VerifySidecarKZGProof(f.sidecars[0]))
	require.NoError(t, VerifySidecarKZGProof(f.sidecars[1]))

	f.sidecars[1].KzgProof = f.sidecars[0].KzgProof
	err := VerifySidecarKZGProof(f.sidecars[1])
	require.ErrorIs(t, err, ErrSidecarProofInvalid)
	require.True(t, IsVerificationFailure(err))

	f.sidecars[0].Blob[31] ^= 0x01
	require.ErrorIs(t, VerifySidecarKZGProof(f.sidecars[0]), ErrSidecarProofInvalid)

	require.ErrorIs(t, VerifySidecarKZGProof(nil), ErrSidecarMismatch)
}

func TestVerifyBlobSidecars_CommitmentMismatch(t *testing.T) {
	f := newFixture(t, 2)
	f.sidecars[0].KzgCommitment = f.cmts[1]
	err := f.verify(context.Background())
	require.ErrorIs(t, err, ErrCommitmentMismatch)
	require.True(t, IsVerificationFailure(err))
}

func TestVerifyBlobSidecars_VersionedHashes(t *testing.T) {
	t.Run("missing transaction", func(t *testing.T) {
		f := newFixture(t, 2)
		f.txs = nil
		require.ErrorIs(t, f.verify(context.Background()), ErrVersionedHashMismatch)
	})
	t.Run("wrong order", func(t *testing.T) {
		f := newFixture(t, 2)
		h0 := kzg.KZGCommitmentToVersionedHash(f.cmts[0])
		h1 := kzg.KZGCommitmentToVersionedHash(f.cmts[1])
		f.txs = [][]byte{util.BlobTransaction(h1, h0)}
		require.ErrorIs(t, f.verify(context.Background()), ErrVersionedHashMismatch)
	})
	t.Run("split across transactions", func(t *testing.T) {
		f := newFixture(t, 2)
		h0 := kzg.KZGCommitmentToVersionedHash(f.cmts[0])
		h1 := kzg.KZGCommitmentToVersionedHash(f.cmts[1])
		f.txs = [][]byte{util.BlobTransaction(h0), {0x02}, util.BlobTransaction(h1)}
		require.NoError(t, f.verify(context.Background()))
	})
	t.Run("malformed transaction", func(t *testing.T) {
		f := newFixture(t, 1)
		f.txs = [][]byte{append(f.txs[0], 0x01)}
		require.ErrorIs(t, f.verify(context.Background()), ErrMalformedTransaction)
	})
}

func TestVerifyBlobSidecars_BadProof(t *testing.T) {
	f := newFixture(t, 3)
	f.sidecars[2].KzgProof = f.sidecars[0].KzgProof

	err := f.verify(context.Background())
	require.ErrorIs(t, err, ErrProofBatchInvalid)
	require.True(t, IsVerificationFailure(err))
	var pe *kzg.ProofError
	require.False(t, errors.As(err, &pe))

	err = f.verify(context.Background(), WithBisection())
	require.ErrorIs(t, err, ErrProofBatchInvalid)
	require.True(t, errors.As(err, &pe))
	require.Len(t, pe.Failed(), 1)
	assert.Equal(t, 2, pe.Failed()[0].Index)
}

func TestVerifyBlobSidecars_ContextCanceled(t *testing.T) {
	f := newFixture(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := f.verify(ctx)
	// The batch may finish before the cancellation is observed.
	if err != nil {
		require.ErrorIs(t, err, context.Canceled)
	}
}
