// Package metrics exposes application metrics collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var indexerTotalTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "autoliquid",
	Subsystem: "indexer",
	Name:      "total_transactions",
	Help:      "Total number of transactions that touched the indexed package.",
}, []string{"package"})

// Indexer tracks extraction metrics for one package.
type Indexer struct {
	counter prometheus.Counter
}

// NewIndexer creates an Indexer bound to packageID.
func NewIndexer(packageID string) *Indexer {
	if packageID == "" {
		packageID = "unknown"
	}
	return &Indexer{counter: indexerTotalTransactions.WithLabelValues(packageID)}
}

// IncTotalTransactions increments the processed transactions counter.
func (m Indexer) IncTotalTransactions() {
	m.counter.Inc()
}
