package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// intentsTotal counts webhook calls per intent. Unrecognized intent names are
// collapsed into a single "unknown" label to keep cardinality bounded.
var intentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "dinebot",
		Subsystem: "webhook",
		Name:      "intents_total",
		Help:      "Total number of webhook calls partitioned by intent.",
	},
	[]string{"intent"},
)
