package ingester

import "time"

const (
	DefaultTaskPrefix = "BluefinIndexer"

	defaultWorkerCount = 2

	checkpointChunkSize uint64 = 100
	backfillSplitSize   uint64 = 500_000

	maxConcurrentBackfills = 4

	idleSleepDuration  = 1 * time.Second
	errorSleepDuration = 5 * time.Second

	progressBatcherSize          = 1000
	progressBatcherFlushInterval = 1 * time.Second
	progressBatcherRPS           = 100
)
