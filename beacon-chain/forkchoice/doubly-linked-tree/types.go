package doublylinkedtree

import (
	"sync"

	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
)

// ForkChoice defines the overall fork choice store which includes all block nodes.
type ForkChoice struct {
	store *Store
}

// Store defines the fork choice store which includes block nodes and the last view of checkpoint information.
type Store struct {
	nodesLock    sync.RWMutex
	treeRootNode *Node              // the root node of the store tree.
	headNode     *Node              // last head Node
	nodeByRoot   map[[32]byte]*Node // nodes indexed by roots.
}

// Node defines the individual block which includes its block parent, ancestor and how much weight accounted for it.
// This is used as an array based stateful DAG for efficient fork choice look up.
type Node struct {
	slot       primitives.Slot
	root       [32]byte
	parentRoot [32]byte
	parent     *Node // nil for the tree root
	children   []*Node
}
