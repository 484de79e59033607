// Package extractor maps checkpoint transactions to Bluefin position records.
package extractor

import (
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/events"
	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Extractor turns transactions touching one package into processed records.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	packageID model.Address
	metrics   Metrics
	logger    *zap.Logger
}

// New constructs an Extractor for packageID.
func New(packageID model.Address, metrics Metrics, logger *zap.Logger) (*Extractor, error) {
	if metrics == nil {
		return nil, fmt.Errorf("metrics is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		packageID: packageID,
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// Extract returns the records of txn. Transactions without a typed input from the package yield nothing.
func (e *Extractor) Extract(txn model.CheckpointTxn) ([]model.ProcessedRecord, error) {
	tx := txn.Transaction
	if tx == nil {
		return nil, nil
	}
	logger := e.logger.With(zap.String("digest", tx.Digest), zap.Uint64("checkpoint", txn.Checkpoint))

	if !tx.TouchesPackage(e.packageID) {
		logger.Debug("transaction does not touch package")
		return nil, nil
	}
	e.metrics.IncTotalTransactions()

	if tx.Events == nil {
		return e.failedTransaction(txn), nil
	}

	var records []model.ProcessedRecord
	for i, ev := range tx.EventData() {
		record, ok, err := e.event(txn, i, ev, logger)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, record)
		}
	}

	if len(records) > 0 {
		logger.Info("extracted records", zap.Int("count", len(records)))
	}
	return records, nil
}

func (e *Extractor) event(txn model.CheckpointTxn, index int, ev model.Event, logger *zap.Logger) (model.ProcessedRecord, bool, error) {
	if ev.Type.Address != e.packageID {
		return model.ProcessedRecord{}, false, nil
	}

	var update model.PositionUpdate
	switch ev.Type.Name {
	case model.PositionOpenedEvent, model.PositionClosedEvent:
		decoded, err := events.Decode(ev.Type.Name, ev.Contents)
		if err != nil {
			return model.ProcessedRecord{}, false, fmt.Errorf("tx %s event %d: %w", txn.Transaction.Digest, index, err)
		}
		switch v := decoded.(type) {
		case model.PositionOpened:
			update = e.positionUpdate(txn, index, v.PoolID, v.PositionID, v.TickLower, v.TickUpper, false)
		case model.PositionClosed:
			update = e.positionUpdate(txn, index, v.PoolID, v.PositionID, v.TickLower, v.TickUpper, true)
		}
		logger.Debug("handled event", zap.String("event", ev.Type.Name), zap.Int("index", index))
	default:
		logger.Debug("unsupported event", zap.String("event", ev.Type.Name), zap.Int("index", index))
		return model.ProcessedRecord{}, false, nil
	}

	return model.NewPositionRecord(update), true, nil
}

func (e *Extractor) positionUpdate(
	txn model.CheckpointTxn,
	index int,
	poolID, positionID model.ObjectID,
	tickLower, tickUpper int32,
	isClose bool,
) model.PositionUpdate {
	tx := txn.Transaction
	return model.PositionUpdate{
		Digest:                tx.Digest,
		EventDigest:           tx.Digest + strconv.Itoa(index),
		Sender:                tx.Sender.String(),
		Checkpoint:            txn.Checkpoint,
		CheckpointTimestampMs: txn.TimestampMs,
		Package:               tx.EntryPackage(),
		PoolID:                poolID.String(),
		PositionID:            positionID.String(),
		TickLower:             tickLower,
		TickUpper:             tickUpper,
		Liquidity:             decimal.Zero,
		Price:                 decimal.Zero,
		IsClose:               isClose,
	}
}

func (e *Extractor) failedTransaction(txn model.CheckpointTxn) []model.ProcessedRecord {
	tx := txn.Transaction
	if tx.Status.Success {
		return nil
	}

	var cmdIdx *uint64
	if tx.Status.Command != nil {
		idx := *tx.Status.Command
		cmdIdx = &idx
	}
	return []model.ProcessedRecord{model.NewErrorRecord(model.TransactionError{
		TxDigest:      tx.Digest,
		Sender:        tx.Sender.String(),
		TimestampMs:   txn.TimestampMs,
		FailureStatus: tx.Status.Error,
		Package:       tx.EntryPackage(),
		CmdIdx:        cmdIdx,
	})}
}
