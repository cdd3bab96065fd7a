package commands

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// completionsTotal counts order completion attempts.
// Labels: result (success, failure)
var completionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "dinebot",
		Subsystem: "orders",
		Name:      "completions_total",
		Help:      "Total number of order completion attempts",
	},
	[]string{"result"},
)
