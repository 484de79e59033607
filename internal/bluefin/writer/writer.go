// Package writer persists extracted records idempotently.
package writer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"go.uber.org/zap"
)

// Writer partitions processed records by kind and stores them in one transaction.
type Writer struct {
	repo   Repository
	logger *zap.Logger
}

// New constructs a Writer.
func New(repo Repository, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{repo: repo, logger: logger}
}

// Write stores records. Rows that already exist are skipped, so replaying a batch is a no-op.
func (w *Writer) Write(ctx context.Context, records []model.ProcessedRecord) error {
	if len(records) == 0 {
		w.logger.Debug("no data to write")
		return nil
	}

	positions, errs, err := partition(records)
	if err != nil {
		return err
	}

	if err := w.repo.InsertRecords(ctx, positions, errs); err != nil {
		return fmt.Errorf("insert records: %w", err)
	}
	w.logger.Debug("records written", zap.Int("positions", len(positions)), zap.Int("errors", len(errs)))
	return nil
}

func partition(records []model.ProcessedRecord) ([]model.PositionUpdate, []model.TransactionError, error) {
	var (
		positions []model.PositionUpdate
		errs      []model.TransactionError
	)
	for i, r := range records {
		switch r.Kind {
		case model.RecordPosition:
			if r.Position == nil {
				return nil, nil, fmt.Errorf("record %d: position payload is nil", i)
			}
			positions = append(positions, *r.Position)
		case model.RecordError:
			if r.Error == nil {
				return nil, nil, fmt.Errorf("record %d: error payload is nil", i)
			}
			errs = append(errs, *r.Error)
		default:
			return nil, nil, fmt.Errorf("record %d: unknown kind %d", i, r.Kind)
		}
	}
	return positions, errs, nil
}
