package ingester

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"github.com/goodnatureofminers/autoliquid-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// checkpointProcessor fetches, extracts and writes checkpoints concurrently.
type checkpointProcessor struct {
	workerCount int
	source      CheckpointSource
	extractor   Extractor
	writer      RecordWriter
	metrics     Metrics
	logger      *zap.Logger
}

func (p *checkpointProcessor) Process(ctx context.Context, task string, checkpoints []uint64, sink ProgressSink) error {
	return workerpool.Process(ctx, p.workerCount, checkpoints, func(ctx context.Context, n uint64) error {
		return p.processCheckpoint(ctx, task, n, sink)
	}, nil)
}

func (p *checkpointProcessor) processCheckpoint(ctx context.Context, task string, n uint64, sink ProgressSink) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveProcessCheckpoint(task, err, n, started)
	}()

	cp, err := p.source.FetchCheckpoint(ctx, n)
	if err != nil {
		return fmt.Errorf("fetch checkpoint %d: %w", n, err)
	}

	var records []model.ProcessedRecord
	for _, txn := range cp.Txns() {
		recs, err := p.extractor.Extract(txn)
		if err != nil {
			p.logger.Error("extract transaction failed",
				zap.Uint64("checkpoint", n),
				zap.String("digest", txn.Transaction.Digest),
				zap.Error(err),
			)
			return fmt.Errorf("extract checkpoint %d tx %s: %w", n, txn.Transaction.Digest, err)
		}
		records = append(records, recs...)
	}

	if err = p.writer.Write(ctx, records); err != nil {
		return fmt.Errorf("write checkpoint %d: %w", n, err)
	}

	if err = sink.Add(ctx, n); err != nil {
		return fmt.Errorf("report checkpoint %d: %w", n, err)
	}
	return nil
}
