package doublylinkedtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField("prefix", "forkchoice")

	headSlotNumber = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "forkchoice_head_slot",
		Help: "Slot of the block fork choice currently considers head.",
	})
	nodeCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "forkchoice_node_count",
		Help: "Blocks held by fork choice.",
	})
	headChangesCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forkchoice_head_changed_total",
		Help: "Times the head moved to a different block.",
	})
	processedBlockCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forkchoice_block_inserted_total",
		Help: "Blocks inserted into fork choice.",
	})
	prunedCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forkchoice_prune_total",
		Help: "Prunes below a finalized root.",
	})
)
