package verification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	kzgBatchVerificationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kzg_batch_verification_total",
		Help: "Count of blob kzg proof batch checks by outcome.",
	}, []string{"result"})
	kzgBatchVerificationDuration = promauto.NewSummary(prometheus.SummaryOpts{
		Name: "kzg_batch_verification_milliseconds",
		Help: "Time spent verifying a block's blob kzg proofs.",
	})
)
