package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterFetchLatestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autoliquid",
		Subsystem: "ingester",
		Name:      "fetch_latest_total",
		Help:      "Count of attempts to read the latest available checkpoint.",
	}, []string{"task", "status"})

	ingesterProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "autoliquid",
		Subsystem: "ingester",
		Name:      "process_batch_total",
		Help:      "Count of processed checkpoint batches.",
	}, []string{"task", "status"})

	ingesterProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "autoliquid",
		Subsystem: "ingester",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a batch of checkpoints.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"task", "status"})

	ingesterProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "autoliquid",
		Subsystem: "ingester",
		Name:      "process_batch_size",
		Help:      "Number of checkpoints processed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"task"})

	ingesterProcessCheckpointDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "autoliquid",
		Subsystem: "ingester",
		Name:      "process_checkpoint_duration_seconds",
		Help:      "Duration of fetching, extracting and writing a single checkpoint.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"task", "status"})

	ingesterSavedCheckpoint = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "autoliquid",
		Subsystem: "ingester",
		Name:      "saved_checkpoint",
		Help:      "Last checkpoint persisted for a task.",
	}, []string{"task"})
)

// Ingester tracks metrics for the checkpoint ingestion driver.
type Ingester struct{}

// NewIngester constructs an Ingester.
func NewIngester() *Ingester {
	return &Ingester{}
}

// ObserveFetchLatest records an attempt to read the newest checkpoint number.
func (m Ingester) ObserveFetchLatest(task string, err error) {
	ingesterFetchLatestTotal.WithLabelValues(task, statusLabel(err)).Inc()
}

// ObserveProcessBatch records processing of a batch of checkpoints.
func (m Ingester) ObserveProcessBatch(task string, err error, checkpoints int, started time.Time) {
	status := statusLabel(err)
	ingesterProcessBatchTotal.WithLabelValues(task, status).Inc()
	ingesterProcessBatchDuration.WithLabelValues(task, status).Observe(time.Since(started).Seconds())
	ingesterProcessBatchSize.WithLabelValues(task).Observe(float64(checkpoints))
}

// ObserveProcessCheckpoint records processing of a single checkpoint.
func (m Ingester) ObserveProcessCheckpoint(task string, err error, _ uint64, started time.Time) {
	ingesterProcessCheckpointDuration.WithLabelValues(task, statusLabel(err)).
		Observe(time.Since(started).Seconds())
}

// ObserveSavedCheckpoint records the checkpoint persisted for task.
func (m Ingester) ObserveSavedCheckpoint(task string, checkpoint uint64) {
	ingesterSavedCheckpoint.WithLabelValues(task).Set(float64(checkpoint))
}
