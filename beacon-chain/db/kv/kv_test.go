package kv

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/stretchr/testify/require"
)

// setupDB instantiates and returns a Store instance.
func setupDB(t testing.TB) *Store {
	db, err := NewKVStore(context.Background(), t.TempDir())
	require.NoError(t, err, "Failed to instantiate DB")
	t.Cleanup(func() {
		require.NoError(t, db.Close(), "Failed to close database")
	})
	return db
}

func TestStore_BlobRetentionEpochsPersisted(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	dir := t.TempDir()
	db, err := NewKVStore(context.Background(), dir)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening with the same window works.
	db, err = NewKVStore(context.Background(), dir)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cfg := params.BeaconConfig().Copy()
	cfg.MinEpochsForBlobsSidecarsRequest++
	params.OverrideBeaconConfig(cfg)
	_, err = NewKVStore(context.Background(), dir)
	require.ErrorIs(t, err, errBlobRetentionEpochMismatch)
}

func TestStore_ClearDB(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.ClearDB())
}
