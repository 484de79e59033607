package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"github.com/goodnatureofminers/autoliquid-backend/pkg/safe"
)

// Latest row per position wins; on a checkpoint tie the close sorts first.
const activePositionsBySenderQuery = `
SELECT position_id, pool_id, sender, tick_lower, tick_upper, checkpoint, digest
FROM (
	SELECT DISTINCT ON (position_id)
		position_id, pool_id, sender, tick_lower, tick_upper, checkpoint, digest, is_close
	FROM position_updates
	WHERE sender = $1
	ORDER BY position_id, checkpoint DESC, is_close DESC
) latest
WHERE NOT is_close
ORDER BY checkpoint DESC, position_id`

// ActivePositionsBySender returns positions of sender whose latest update is an open.
func (r *Repository) ActivePositionsBySender(ctx context.Context, sender string) ([]model.ActivePosition, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("active_positions_by_sender", err, start)
	}()

	rows, err := r.db.Query(ctx, activePositionsBySenderQuery, sender)
	if err != nil {
		return nil, fmt.Errorf("query active positions: %w", err)
	}
	defer rows.Close()

	positions := make([]model.ActivePosition, 0)
	for rows.Next() {
		var (
			p          model.ActivePosition
			checkpoint int64
		)
		if err = rows.Scan(&p.PositionID, &p.PoolID, &p.Sender, &p.TickLower, &p.TickUpper, &checkpoint, &p.Digest); err != nil {
			return nil, fmt.Errorf("scan active position: %w", err)
		}
		if p.Checkpoint, err = safe.Uint64(checkpoint); err != nil {
			return nil, fmt.Errorf("active position checkpoint: %w", err)
		}
		positions = append(positions, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active positions: %w", err)
	}
	return positions, nil
}
