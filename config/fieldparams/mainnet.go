package field_params

const (
	Preset                                = "mainnet"
	RootLength                            = 32         // RootLength defines the byte length of a Merkle root.
	BLSSignatureLength                    = 96         // BLSSignatureLength defines the byte length of a BLSSignature.
	BLSPubkeyLength                       = 48         // BLSPubkeyLength defines the byte length of a BLSSignature.
	MaxTxsPerPayloadLength                = 1048576    // MaxTxsPerPayloadLength defines the maximum number of transactions that can be included in a payload.
	MaxBytesPerTxLength                   = 1073741824 // MaxBytesPerTxLength defines the maximum number of bytes that can be included in a transaction.
	FeeRecipientLength                    = 20         // FeeRecipientLength defines the byte length of a fee recipient.
	VersionLength                         = 4          // VersionLength defines the byte length of a fork version number.
	ForkDigestLength                      = 4          // ForkDigestLength defines the byte length of a fork digest.
	SlotsPerEpoch                         = 32         // SlotsPerEpoch defines the number of slots per epoch.
	SyncCommitteeAggregationBytesLength   = 16         // SyncCommitteeAggregationBytesLength defines the length of sync committee aggregate bytes.
	SyncAggregateSyncCommitteeBytesLength = 64         // SyncAggregateSyncCommitteeBytesLength defines the length of sync committee bytes in a sync aggregate.
	MaxVoluntaryExits                     = 16         // MAX_VOLUNTARY_EXITS
	MaxBlsToExecutionChanges              = 16         // MAX_BLS_TO_EXECUTION_CHANGES
	MaxBlobsPerBlock                      = 6          // MaxBlobsPerBlock defines the maximum number of blobs with respect to consensus rule can be included in a block.
	MaxBlobCommitmentsPerBlock            = 4096       // MaxBlobCommitmentsPerBlock defines the theoretical limit of blobs can be included in a block.
	BlobLength                            = 131072     // BlobLength defines the byte length of a blob.
	FieldElementsPerBlob                  = 4096       // FIELD_ELEMENTS_PER_BLOB
	BytesPerFieldElement                  = 32         // BYTES_PER_FIELD_ELEMENT
	KzgCommitmentLength                   = 48         // KzgCommitmentLength defines the byte length of a KZG commitment.
	KzgProofLength                        = 48         // KzgProofLength defines the byte length of a KZG proof.
	VersionedHashLength                   = 32         // VersionedHashLength defines the byte length of a blob versioned hash.
	FinalityBranchDepth                   = 6          // FinalityBranchDepth defines the depth of the finalized checkpoint branch.
)
