// Package synccommittee keeps the sync committee contributions received over gossip, grouped
// by slot.
package synccommittee

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
)

// syncCommitteeMaxQueueSize bounds how many distinct slots the store tracks.
const syncCommitteeMaxQueueSize = 4

var errNilContribution = errors.New("nil sync committee contribution")

// Store holds contributions by slot. Only the newest syncCommitteeMaxQueueSize slots are kept.
type Store struct {
	contributionLock sync.RWMutex
	contributions    map[primitives.Slot][]*ethpb.SyncCommitteeContribution
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{contributions: make(map[primitives.Slot][]*ethpb.SyncCommitteeContribution)}
}

// SaveSyncCommitteeContribution saves a contribution. When more than syncCommitteeMaxQueueSize
// slots are held, the oldest slot is dropped.
func (s *Store) SaveSyncCommitteeContribution(c *ethpb.SyncCommitteeContribution) error {
	if c == nil {
		return errNilContribution
	}

	s.contributionLock.Lock()
	defer s.contributionLock.Unlock()

	s.contributions[c.Slot] = append(s.contributions[c.Slot], c)
	savedSyncCommitteeContributionTotal.Inc()

	if len(s.contributions) > syncCommitteeMaxQueueSize {
		slots := make([]primitives.Slot, 0, len(s.contributions))
		for slot := range s.contributions {
			slots = append(slots, slot)
		}
		sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
		for _, slot := range slots[:len(slots)-syncCommitteeMaxQueueSize] {
			delete(s.contributions, slot)
		}
	}
	return nil
}

// SyncCommitteeContributions returns the contributions stored for slot.
func (s *Store) SyncCommitteeContributions(slot primitives.Slot) []*ethpb.SyncCommitteeContribution {
	s.contributionLock.RLock()
	defer s.contributionLock.RUnlock()
	return append([]*ethpb.SyncCommitteeContribution(nil), s.contributions[slot]...)
}
