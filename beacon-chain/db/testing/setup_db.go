// Package testing opens a throwaway bolt store for package tests.
package testing

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/blobnode/beacon-chain/db"
	"github.com/prysmaticlabs/blobnode/beacon-chain/db/kv"
	"github.com/stretchr/testify/require"
)

// SetupDB opens a store under t.TempDir and closes it when the test ends.
func SetupDB(t testing.TB) db.Database {
	s, err := kv.NewKVStore(context.Background(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close(), "failed to close database")
	})
	return s
}
