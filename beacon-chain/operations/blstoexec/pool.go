package blstoexec

import (
	"sort"
	"sync"

	fieldparams "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
)

// PoolManager maintains pending BLS-to-execution-change objects.
type PoolManager interface {
	PendingBLSToExecChanges(noLimit bool) []*ethpb.SignedBLSToExecutionChange
	InsertBLSToExecChange(change *ethpb.SignedBLSToExecutionChange) bool
	MarkIncluded(change *ethpb.SignedBLSToExecutionChange)
}

// Pool is a concrete implementation of PoolManager.
type Pool struct {
	lock    sync.RWMutex
	pending []*ethpb.SignedBLSToExecutionChange
}

var _ PoolManager = (*Pool)(nil)

// NewPool returns an initialized pool.
func NewPool() *Pool {
	return &Pool{
		pending: make([]*ethpb.SignedBLSToExecutionChange, 0),
	}
}

// PendingBLSToExecChanges returns the pending objects. Without returnAll, at most
// MaxBlsToExecutionChanges are returned.
func (p *Pool) PendingBLSToExecChanges(returnAll bool) []*ethpb.SignedBLSToExecutionChange {
	p.lock.RLock()
	defer p.lock.RUnlock()

	n := len(p.pending)
	if !returnAll && n > fieldparams.MaxBlsToExecutionChanges {
		n = fieldparams.MaxBlsToExecutionChanges
	}
	pending := make([]*ethpb.SignedBLSToExecutionChange, n)
	copy(pending, p.pending)
	return pending
}

// InsertBLSToExecChange inserts an object into the pool and reports whether it was added.
// Malformed objects and a second change for the same validator are ignored.
func (p *Pool) InsertBLSToExecChange(change *ethpb.SignedBLSToExecutionChange) bool {
	// Prevent malformed messages from being inserted.
	if change == nil ||
		change.Message == nil ||
		len(change.Signature) != fieldparams.BLSSignatureLength ||
		len(change.Message.FromBlsPubkey) != fieldparams.BLSPubkeyLength ||
		len(change.Message.ToExecutionAddress) != fieldparams.FeeRecipientLength {
		return false
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	if exists, _ := existsInList(p.pending, change.Message.ValidatorIndex); exists {
		return false
	}
	p.pending = append(p.pending, change)
	sort.Slice(p.pending, func(i, j int) bool {
		return p.pending[i].Message.ValidatorIndex < p.pending[j].Message.ValidatorIndex
	})
	return true
}

// MarkIncluded removes the validator's change once it has been included in a block.
func (p *Pool) MarkIncluded(change *ethpb.SignedBLSToExecutionChange) {
	if change == nil || change.Message == nil {
		return
	}
	p.lock.Lock()
	defer p.lock.Unlock()

	exists, index := existsInList(p.pending, change.Message.ValidatorIndex)
	if exists {
		p.pending = append(p.pending[:index], p.pending[index+1:]...)
	}
}

// Binary search to check if the index exists in the list of pending objects.
func existsInList(pending []*ethpb.SignedBLSToExecutionChange, searchingFor primitives.ValidatorIndex) (bool, int) {
	i := sort.Search(len(pending), func(j int) bool {
		return pending[j].Message.ValidatorIndex >= searchingFor
	})
	if i < len(pending) && pending[i].Message.ValidatorIndex == searchingFor {
		return true, i
	}
	return false, -1
}
