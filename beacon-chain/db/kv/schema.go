package kv

// The schema will define how to store and retrieve data from the db.
// Blocks and blob sidecar records are keyed by block root. Block values carry a fork
// key prefix so the matching container can be chosen on read.
var (
	blocksBucket            = []byte("blocks")
	blobSidecarsBucket      = []byte("blob-sidecars")
	unreconciledRootsBucket = []byte("unreconciled-roots")
	chainMetadataBucket     = []byte("chain-metadata")

	// Metadata keys.
	blobRetentionEpochsKey = []byte("blob-retention-epochs")

	// Fork keys.
	capellaKey = []byte("capella")
	denebKey   = []byte("deneb")
)
