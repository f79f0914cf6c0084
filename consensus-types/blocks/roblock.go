package blocks

import (
	"github.com/prysmaticlabs/blobnode/consensus-types/interfaces"
)

// ROBlock pairs a signed block with the hash tree root of its message. Everything downstream of
// gossip decoding keys on the root, so it is computed once here.
type ROBlock struct {
	interfaces.ReadOnlySignedBeaconBlock
	root [32]byte
}

// Root of the block message.
func (b ROBlock) Root() [32]byte {
	return b.root
}

// NewROBlockWithRoot trusts the caller's root, typically one read back from the database.
func NewROBlockWithRoot(b interfaces.ReadOnlySignedBeaconBlock, root [32]byte) (ROBlock, error) {
	if err := BeaconBlockIsNil(b); err != nil {
		return ROBlock{}, err
	}
	return ROBlock{ReadOnlySignedBeaconBlock: b, root: root}, nil
}

// NewROBlock hashes the block message to obtain the root.
func NewROBlock(b interfaces.ReadOnlySignedBeaconBlock) (ROBlock, error) {
	if err := BeaconBlockIsNil(b); err != nil {
		return ROBlock{}, err
	}
	root, err := b.Block().HashTreeRoot()
	if err != nil {
		return ROBlock{}, err
	}
	return NewROBlockWithRoot(b, root)
}
