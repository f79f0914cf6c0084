package ssz

// ForkDataRoot computes hash_tree_root(ForkData{current_version, genesis_validators_root}).
func ForkDataRoot(currentVersion [4]byte, genesisValidatorsRoot [32]byte) ([32]byte, error) {
	var versionChunk [32]byte
	copy(versionChunk[:], currentVersion[:])
	return MerkleizeChunks([][32]byte{versionChunk, genesisValidatorsRoot})
}
