package doublylinkedtree

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	forkchoicetypes "github.com/prysmaticlabs/blobnode/beacon-chain/forkchoice/types"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	"github.com/sirupsen/logrus"
)

// New initializes an empty fork choice store.
func New() *ForkChoice {
	return &ForkChoice{store: &Store{nodeByRoot: make(map[[32]byte]*Node)}}
}

// NodeCount returns the current number of nodes in the Store.
func (f *ForkChoice) NodeCount() int {
	f.store.nodesLock.RLock()
	defer f.store.nodesLock.RUnlock()
	return len(f.store.nodeByRoot)
}

// HasNode returns true if the node exists in fork choice store,
// false else wise.
func (f *ForkChoice) HasNode(root [32]byte) bool {
	f.store.nodesLock.RLock()
	defer f.store.nodesLock.RUnlock()
	_, ok := f.store.nodeByRoot[root]
	return ok
}

// HasBlockHex is HasNode keyed by a 0x-prefixed hex root. Malformed hex is never known.
func (f *ForkChoice) HasBlockHex(rootHex string) bool {
	b, err := hexutil.Decode(rootHex)
	if err != nil || len(b) != 32 {
		return false
	}
	var root [32]byte
	copy(root[:], b)
	return f.HasNode(root)
}

// HasParent returns true if the node parent exists in fork choice store,
// false else wise.
func (f *ForkChoice) HasParent(root [32]byte) bool {
	f.store.nodesLock.RLock()
	defer f.store.nodesLock.RUnlock()
	node, ok := f.store.nodeByRoot[root]
	return ok && node != nil && node.parent != nil
}

// Head returns the block with the highest slot, breaking ties by the larger root.
// The zero BlockRef is returned while the store is empty.
func (f *ForkChoice) Head() forkchoicetypes.BlockRef {
	f.store.nodesLock.RLock()
	defer f.store.nodesLock.RUnlock()
	return f.store.headNode.ref()
}

// InsertNode adds a block to the tree. The first block inserted becomes the tree root;
// every later block must name a parent already in the store.
func (f *ForkChoice) InsertNode(slot primitives.Slot, root, parentRoot [32]byte) error {
	s := f.store
	s.nodesLock.Lock()
	defer s.nodesLock.Unlock()

	if _, ok := s.nodeByRoot[root]; ok {
		return nil
	}
	parent := s.nodeByRoot[parentRoot]
	n := &Node{slot: slot, root: root, parentRoot: parentRoot, parent: parent}
	if parent == nil {
		if s.treeRootNode != nil {
			return fmt.Errorf("%w: %#x", errInvalidParentRoot, parentRoot)
		}
		s.treeRootNode = n
	} else {
		if slot <= parent.slot {
			return fmt.Errorf("%w: slot %d, parent slot %d", errSlotNotAfterParent, slot, parent.slot)
		}
		parent.children = append(parent.children, n)
	}
	s.nodeByRoot[root] = n
	processedBlockCount.Inc()
	nodeCount.Set(float64(len(s.nodeByRoot)))

	if s.headNode == nil || n.betterHeadThan(s.headNode) {
		s.setHead(n)
	}
	return nil
}

// Prune makes finalizedRoot the tree root and drops every node that does not descend from it.
func (f *ForkChoice) Prune(finalizedRoot [32]byte) error {
	s := f.store
	s.nodesLock.Lock()
	defer s.nodesLock.Unlock()

	finalized, ok := s.nodeByRoot[finalizedRoot]
	if !ok || finalized == nil {
		return errUnknownFinalizedRoot
	}
	if finalized == s.treeRootNode {
		return nil
	}

	kept := make(map[[32]byte]*Node, len(s.nodeByRoot))
	var head *Node
	stack := []*Node{finalized}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		kept[n.root] = n
		if head == nil || n.betterHeadThan(head) {
			head = n
		}
		stack = append(stack, n.children...)
	}
	pruned := len(s.nodeByRoot) - len(kept)

	finalized.parent = nil
	s.treeRootNode = finalized
	s.nodeByRoot = kept
	if head != s.headNode {
		s.setHead(head)
	}
	prunedCount.Inc()
	nodeCount.Set(float64(len(kept)))
	log.WithFields(logrus.Fields{
		"finalizedRoot": fmt.Sprintf("%#x", finalizedRoot),
		"prunedNodes":   pruned,
	}).Debug("Pruned fork choice store")
	return nil
}

func (s *Store) setHead(n *Node) {
	s.headNode = n
	headChangesCount.Inc()
	headSlotNumber.Set(float64(n.slot))
}

func (n *Node) betterHeadThan(other *Node) bool {
	if n.slot != other.slot {
		return n.slot > other.slot
	}
	return bytes.Compare(n.root[:], other.root[:]) > 0
}

func (n *Node) ref() forkchoicetypes.BlockRef {
	if n == nil {
		return forkchoicetypes.BlockRef{}
	}
	return forkchoicetypes.BlockRef{Slot: n.slot, Root: n.root, ParentRoot: n.parentRoot}
}
