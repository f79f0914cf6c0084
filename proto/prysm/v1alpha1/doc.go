// Package eth defines the consensus containers exchanged over gossip and written to
// the block store, together with their SSZ encodings and hash tree roots.
package eth

//go:generate go run github.com/ferranbt/fastssz/sszgen --path=. --objs=VoluntaryExit,SignedVoluntaryExit,BLSToExecutionChange,SignedBLSToExecutionChange,SyncAggregate,SyncCommitteeContribution,ContributionAndProof,SignedContributionAndProof,BeaconBlockHeader,LightClientHeader,LightClientOptimisticUpdate,LightClientFinalityUpdate,ExecutionPayload,BeaconBlockBodyCapella,BeaconBlockCapella,SignedBeaconBlockCapella,BeaconBlockBodyDeneb,BeaconBlockDeneb,SignedBeaconBlockDeneb,BlobSidecar,SignedBlobSidecar,BlobSidecarRecord
