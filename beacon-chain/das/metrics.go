package das

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pendingStashed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "das_pending_entries_created_total",
		Help: "Number of blocks or sidecars that opened a pending entry",
	})
	pendingCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "das_pending_entries_completed_total",
		Help: "Number of pending entries that became complete block inputs",
	})
	pendingExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "das_pending_entries_expired_total",
		Help: "Number of pending entries that expired before their block and sidecars met",
	})
)
