package synccommittee

import (
	"testing"

	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	"github.com/prysmaticlabs/blobnode/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndRetrieve(t *testing.T) {
	s := NewStore()
	c := util.NewSignedContributionAndProof(3, 1, 0).Message.Contribution
	require.NoError(t, s.SaveSyncCommitteeContribution(c))
	require.NoError(t, s.SaveSyncCommitteeContribution(c))
	assert.Len(t, s.SyncCommitteeContributions(3), 2)
	assert.Empty(t, s.SyncCommitteeContributions(4))
	assert.ErrorIs(t, s.SaveSyncCommitteeContribution(nil), errNilContribution)
}

func TestStore_DropsOldestSlots(t *testing.T) {
	s := NewStore()
	for slot := primitives.Slot(1); slot <= syncCommitteeMaxQueueSize+2; slot++ {
		require.NoError(t, s.SaveSyncCommitteeContribution(util.NewSignedContributionAndProof(slot, 1, 0).Message.Contribution))
	}
	assert.Empty(t, s.SyncCommitteeContributions(1))
	assert.Empty(t, s.SyncCommitteeContributions(2))
	assert.Len(t, s.SyncCommitteeContributions(3), 1)
	assert.Len(t, s.SyncCommitteeContributions(syncCommitteeMaxQueueSize+2), 1)
}
