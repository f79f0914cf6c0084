package voluntaryexits

import (
	"sort"
	"sync"

	fieldparams "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
)

// PoolManager maintains pending voluntary exits.
type PoolManager interface {
	PendingExits(currentEpoch primitives.Epoch, noLimit bool) []*ethpb.SignedVoluntaryExit
	InsertVoluntaryExit(exit *ethpb.SignedVoluntaryExit) bool
	MarkIncluded(exit *ethpb.SignedVoluntaryExit)
}

// Pool keeps at most one exit per validator, sorted by validator index.
type Pool struct {
	lock    sync.RWMutex
	pending []*ethpb.SignedVoluntaryExit
}

var _ PoolManager = (*Pool)(nil)

// NewPool returns an initialized pool.
func NewPool() *Pool {
	return &Pool{pending: make([]*ethpb.SignedVoluntaryExit, 0)}
}

// PendingExits returns exits whose epoch has been reached. Without noLimit, at most
// MaxVoluntaryExits are returned.
func (p *Pool) PendingExits(currentEpoch primitives.Epoch, noLimit bool) []*ethpb.SignedVoluntaryExit {
	p.lock.RLock()
	defer p.lock.RUnlock()

	pending := make([]*ethpb.SignedVoluntaryExit, 0, len(p.pending))
	for _, e := range p.pending {
		if e.Exit.Epoch > currentEpoch {
			continue
		}
		pending = append(pending, e)
		if !noLimit && len(pending) == fieldparams.MaxVoluntaryExits {
			break
		}
	}
	return pending
}

// InsertVoluntaryExit adds exit and reports whether it was added. Malformed exits and a second exit
// for the same validator are ignored.
func (p *Pool) InsertVoluntaryExit(exit *ethpb.SignedVoluntaryExit) bool {
	if exit == nil || exit.Exit == nil || len(exit.Signature) != fieldparams.BLSSignatureLength {
		return false
	}
	p.lock.Lock()
	defer p.lock.Unlock()

	if exists, _ := existsInList(p.pending, exit.Exit.ValidatorIndex); exists {
		return false
	}
	p.pending = append(p.pending, exit)
	sort.Slice(p.pending, func(i, j int) bool {
		return p.pending[i].Exit.ValidatorIndex < p.pending[j].Exit.ValidatorIndex
	})
	return true
}

// MarkIncluded removes the validator's exit once it has been included in a block.
func (p *Pool) MarkIncluded(exit *ethpb.SignedVoluntaryExit) {
	if exit == nil || exit.Exit == nil {
		return
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	if exists, i := existsInList(p.pending, exit.Exit.ValidatorIndex); exists {
		p.pending = append(p.pending[:i], p.pending[i+1:]...)
	}
}

func existsInList(pending []*ethpb.SignedVoluntaryExit, searchingFor primitives.ValidatorIndex) (bool, int) {
	i := sort.Search(len(pending), func(j int) bool {
		return pending[j].Exit.ValidatorIndex >= searchingFor
	})
	if i < len(pending) && pending[i].Exit.ValidatorIndex == searchingFor {
		return true, i
	}
	return false, -1
}
