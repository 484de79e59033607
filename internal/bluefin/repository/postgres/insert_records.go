package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"github.com/goodnatureofminers/autoliquid-backend/pkg/safe"
	"github.com/jackc/pgx/v5"
)

const insertPositionUpdatesQuery = `
INSERT INTO position_updates (
	digest,
	event_digest,
	sender,
	checkpoint,
	checkpoint_timestamp_ms,
	package,
	pool_id,
	position_id,
	tick_lower,
	tick_upper,
	liquidity,
	price,
	is_close
)
SELECT * FROM unnest(
	$1::text[],
	$2::text[],
	$3::text[],
	$4::bigint[],
	$5::bigint[],
	$6::text[],
	$7::text[],
	$8::text[],
	$9::integer[],
	$10::integer[],
	$11::text[],
	$12::text[],
	$13::boolean[]
)
ON CONFLICT (event_digest) DO NOTHING`

const insertErrorTransactionsQuery = `
INSERT INTO sui_error_transactions (
	txn_digest,
	sender_address,
	timestamp_ms,
	failure_status,
	package,
	cmd_idx
)
SELECT * FROM unnest(
	$1::text[],
	$2::text[],
	$3::bigint[],
	$4::text[],
	$5::text[],
	$6::bigint[]
)
ON CONFLICT (txn_digest) DO NOTHING`

// InsertRecords stores position updates and failed transactions in one transaction.
// Rows whose unique key already exists are skipped.
func (r *Repository) InsertRecords(ctx context.Context, positions []model.PositionUpdate, errs []model.TransactionError) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_records", err, start)
	}()

	if len(positions) == 0 && len(errs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	if len(errs) > 0 {
		var args []any
		if args, err = errorTransactionArgs(errs); err != nil {
			return err
		}
		batch.Queue(insertErrorTransactionsQuery, args...)
	}
	if len(positions) > 0 {
		var args []any
		if args, err = positionUpdateArgs(positions); err != nil {
			return err
		}
		batch.Queue(insertPositionUpdatesQuery, args...)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err = results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("insert records: %w", err)
		}
	}
	if err = results.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func positionUpdateArgs(positions []model.PositionUpdate) ([]any, error) {
	n := len(positions)
	var (
		digests      = make([]string, n)
		eventDigests = make([]string, n)
		senders      = make([]string, n)
		checkpoints  = make([]int64, n)
		timestamps   = make([]int64, n)
		packages     = make([]string, n)
		poolIDs      = make([]string, n)
		positionIDs  = make([]string, n)
		tickLowers   = make([]int32, n)
		tickUppers   = make([]int32, n)
		liquidities  = make([]string, n)
		prices       = make([]string, n)
		isClose      = make([]bool, n)
	)

	for i, p := range positions {
		checkpoint, err := safe.Int64(p.Checkpoint)
		if err != nil {
			return nil, fmt.Errorf("position %s checkpoint: %w", p.EventDigest, err)
		}
		ts, err := safe.Int64(p.CheckpointTimestampMs)
		if err != nil {
			return nil, fmt.Errorf("position %s timestamp: %w", p.EventDigest, err)
		}

		digests[i] = p.Digest
		eventDigests[i] = p.EventDigest
		senders[i] = p.Sender
		checkpoints[i] = checkpoint
		timestamps[i] = ts
		packages[i] = p.Package
		poolIDs[i] = p.PoolID
		positionIDs[i] = p.PositionID
		tickLowers[i] = p.TickLower
		tickUppers[i] = p.TickUpper
		liquidities[i] = p.Liquidity.String()
		prices[i] = p.Price.String()
		isClose[i] = p.IsClose
	}

	return []any{
		digests, eventDigests, senders, checkpoints, timestamps, packages,
		poolIDs, positionIDs, tickLowers, tickUppers, liquidities, prices, isClose,
	}, nil
}

func errorTransactionArgs(errs []model.TransactionError) ([]any, error) {
	n := len(errs)
	var (
		digests    = make([]string, n)
		senders    = make([]string, n)
		timestamps = make([]int64, n)
		statuses   = make([]string, n)
		packages   = make([]string, n)
		cmdIdxs    = make([]*int64, n)
	)

	for i, e := range errs {
		ts, err := safe.Int64(e.TimestampMs)
		if err != nil {
			return nil, fmt.Errorf("error transaction %s timestamp: %w", e.TxDigest, err)
		}
		if e.CmdIdx != nil {
			idx, err := safe.Int64(*e.CmdIdx)
			if err != nil {
				return nil, fmt.Errorf("error transaction %s command index: %w", e.TxDigest, err)
			}
			cmdIdxs[i] = &idx
		}

		digests[i] = e.TxDigest
		senders[i] = e.Sender
		timestamps[i] = ts
		statuses[i] = e.FailureStatus
		packages[i] = e.Package
	}

	return []any{digests, senders, timestamps, statuses, packages, cmdIdxs}, nil
}
