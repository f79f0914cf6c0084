package sync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messageReceivedCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "p2p_message_received_total",
			Help: "Count of messages received.",
		},
		[]string{"topic"},
	)
	messageFailedValidationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "p2p_message_failed_validation_total",
			Help: "Count of messages that failed validation.",
		},
		[]string{"topic"},
	)
	messageIgnoredValidationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "p2p_message_ignored_validation_total",
			Help: "Count of messages that were ignored in validation.",
		},
		[]string{"topic"},
	)
	messageHandlerPanicCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "p2p_message_handler_panic_total",
			Help: "Count of gossip handlers that panicked.",
		},
		[]string{"topic"},
	)
	messageDeliveredCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "p2p_message_delivered_total",
			Help: "Count of accepted messages delivered to the local subscription.",
		},
		[]string{"topic"},
	)
	subscribedTopicsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "p2p_subscribed_topics",
			Help: "The number of gossip topics the node is subscribed to.",
		},
	)
	pendingBlockInputsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sync_block_inputs_completed_total",
			Help: "Count of gossiped blocks whose blob sidecars all arrived and were handed to import.",
		},
	)
)
