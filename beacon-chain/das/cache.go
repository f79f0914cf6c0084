package das

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/blobnode/config/fieldparams"
	"github.com/prysmaticlabs/blobnode/consensus-types/blocks"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	"github.com/prysmaticlabs/blobnode/encoding/bytesutil"
	ethpb "github.com/prysmaticlabs/blobnode/proto/prysm/v1alpha1"
	"github.com/sirupsen/logrus"
)

var (
	// ErrIndexOutOfRange is returned for sidecars whose index cannot belong to any block.
	ErrIndexOutOfRange = errors.New("blob sidecar index out of range")
	// ErrCommitmentMismatch is returned for sidecars whose commitment differs from the block's.
	ErrCommitmentMismatch = errors.New("blob sidecar commitment does not match block")
)

// Key includes the slot so that entries for the same root gossiped at conflicting slots
// never mix. Whether the input is the block or the sidecar, we always have the root+slot.
type Key struct {
	Slot primitives.Slot
	Root [32]byte
}

func (k Key) String() string {
	return keyString(k)
}

// KeyFromSidecar is a convenience method for constructing a Key from a BlobSidecar value.
func KeyFromSidecar(sc *ethpb.BlobSidecar) Key {
	return Key{Slot: sc.Slot, Root: bytesutil.ToBytes32(sc.BlockRoot)}
}

// KeyFromBlock is a convenience method for constructing a Key from a ROBlock value.
func KeyFromBlock(b blocks.ROBlock) Key {
	return Key{Slot: b.Block().Slot(), Root: b.Root()}
}

// entry is everything seen so far for one block.
type entry struct {
	block     *blocks.ROBlock
	opts      []blocks.BlockInputOption
	scs       [fieldparams.MaxBlobsPerBlock]*ethpb.BlobSidecar
	// settled is set once the entry left the cache other than by expiring.
	settled atomic.Bool
}

// stash adds a sidecar to the entry. Only the first sidecar of a given index that agrees with the
// block (when known) is kept. The return value reports whether sc was stashed.
func (e *entry) stash(sc *ethpb.BlobSidecar) (bool, error) {
	if e.block != nil {
		cmts, err := e.block.Block().Body().BlobKzgCommitments()
		if err != nil {
			return false, err
		}
		if sc.Index >= uint64(len(cmts)) {
			return false, errors.Wrapf(ErrIndexOutOfRange, "index %d, block has %d commitments", sc.Index, len(cmts))
		}
		if !bytes.Equal(cmts[sc.Index], sc.KzgCommitment) {
			return false, errors.Wrapf(ErrCommitmentMismatch, "index %d", sc.Index)
		}
	}
	if e.scs[sc.Index] != nil {
		return false, nil
	}
	e.scs[sc.Index] = sc
	return true, nil
}

// dropMismatched removes sidecars that arrived before the block and disagree with it, so the
// correct sidecar for that index can still be stashed.
func (e *entry) dropMismatched(cmts [][]byte) int {
	dropped := 0
	for i, sc := range e.scs {
		if sc == nil {
			continue
		}
		if i >= len(cmts) || !bytes.Equal(cmts[i], sc.KzgCommitment) {
			e.scs[i] = nil
			dropped++
		}
	}
	return dropped
}

// Cache holds blocks waiting for their blob sidecars, and sidecars waiting for their block.
// Entries that never complete expire after the configured ttl.
type Cache struct {
	lock    sync.Mutex
	entries *cache.Cache
}

var _ PendingStore = (*Cache)(nil)

// NewCache builds a pending cache whose entries live for ttl after they were first seen.
func NewCache(ttl time.Duration) *Cache {
	c := &Cache{entries: cache.New(ttl, ttl)}
	c.entries.OnEvicted(func(k string, v interface{}) {
		e, ok := v.(*entry)
		if !ok || e.settled.Load() {
			return
		}
		pendingExpired.Inc()
		log.WithField("key", k).Debug("Pending block input expired before completion")
	})
	return c
}

// ensure returns the entry for the given key, creating it if it isn't already present.
// Callers must hold c.lock.
func (c *Cache) ensure(key Key) *entry {
	k := keyString(key)
	if v, ok := c.entries.Get(k); ok {
		if e, ok := v.(*entry); ok {
			return e
		}
	}
	e := &entry{}
	c.entries.SetDefault(k, e)
	pendingStashed.Inc()
	return e
}

// StashBlock records the block for key(b). opts are applied to the BlockInput built on completion.
// A second block for the same key is ignored.
func (c *Cache) StashBlock(b blocks.ROBlock, opts ...blocks.BlockInputOption) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	e := c.ensure(KeyFromBlock(b))
	if e.block != nil {
		return nil
	}
	if cmts, err := b.Block().Body().BlobKzgCommitments(); err == nil {
		if dropped := e.dropMismatched(cmts); dropped > 0 {
			log.WithFields(logrus.Fields{
				"root":    keyString(KeyFromBlock(b)),
				"dropped": dropped,
			}).Debug("Dropped sidecars that disagree with the block")
		}
	}
	e.block = &b
	e.opts = opts
	return nil
}

// StashSidecar records sc under its key. The first sidecar for an index wins; the return value
// reports whether sc was kept.
func (c *Cache) StashSidecar(sc *ethpb.BlobSidecar) (bool, error) {
	if sc == nil {
		return false, blocks.ErrNilObject
	}
	if sc.Index >= fieldparams.MaxBlobsPerBlock {
		return false, errors.Wrapf(ErrIndexOutOfRange, "index %d", sc.Index)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.ensure(KeyFromSidecar(sc)).stash(sc)
}

// Complete returns the BlockInput for key once the block and one sidecar per commitment are
// present, and removes the entry. It returns false while anything is missing.
func (c *Cache) Complete(key Key) (blocks.BlockInput, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	k := keyString(key)
	v, ok := c.entries.Get(k)
	if !ok {
		return nil, false
	}
	e, ok := v.(*entry)
	if !ok || e.block == nil {
		return nil, false
	}
	cmts, err := e.block.Block().Body().BlobKzgCommitments()
	if err != nil {
		// Pre-blob forks carry no commitments.
		cmts = nil
	}
	for i := range cmts {
		if e.scs[i] == nil {
			return nil, false
		}
	}
	in, err := blocks.NewBlockInput(*e.block, e.scs[:len(cmts)], e.opts...)
	if err != nil {
		log.WithError(err).WithField("root", k).Error("Could not build block input from pending entry")
		return nil, false
	}
	e.settled.Store(true)
	c.entries.Delete(k)
	pendingCompleted.Inc()
	return in, true
}

// Delete drops everything stashed under key.
func (c *Cache) Delete(key Key) {
	c.lock.Lock()
	defer c.lock.Unlock()
	k := keyString(key)
	if v, ok := c.entries.Get(k); ok {
		if e, ok := v.(*entry); ok {
			e.settled.Store(true)
		}
	}
	c.entries.Delete(k)
}

// Len returns the number of pending entries, including expired ones not yet swept.
func (c *Cache) Len() int {
	return c.entries.ItemCount()
}

func keyString(k Key) string {
	return fmt.Sprintf("%d/%#x", k.Slot, k.Root)
}
