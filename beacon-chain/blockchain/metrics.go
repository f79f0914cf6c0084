package blockchain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	persistWithSerializedData = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beacon_persist_block_with_serialized_data_total",
		Help: "Number of blocks persisted from the bytes they were received as",
	})
	persistNoSerializedData = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beacon_persist_block_no_serialized_data_total",
		Help: "Number of blocks persisted by re-encoding them",
	})
	persistBlobRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beacon_persist_blob_sidecar_records_total",
		Help: "Number of blob sidecar records persisted",
	})
	prunedBlocks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beacon_pruned_unimported_blocks_total",
		Help: "Number of eagerly written blocks removed because fork choice did not accept them",
	})
	prunedBlobRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beacon_pruned_unimported_blob_records_total",
		Help: "Number of blob sidecar records removed because fork choice did not accept their block",
	})
	reconciledRoots = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beacon_reconciled_roots_total",
		Help: "Number of unreconciled roots resolved by the sweep, by outcome",
	}, []string{"outcome"})
	invalidBlockInputs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beacon_invalid_block_inputs_total",
		Help: "Number of block inputs dropped because their blob sidecars did not verify",
	})
	importFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beacon_block_import_failures_total",
		Help: "Number of block inputs the importer rejected",
	})
)
