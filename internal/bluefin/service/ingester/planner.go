package ingester

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/source"
	"go.uber.org/zap"
)

// checkpointRange is the half-open interval (from, to] of checkpoints.
type checkpointRange struct {
	from uint64
	to   uint64
}

func splitRange(from, to, size uint64) []checkpointRange {
	if size == 0 {
		size = 1
	}
	var out []checkpointRange
	for from < to {
		end := to
		if to-from > size {
			end = from + size
		}
		out = append(out, checkpointRange{from: from, to: end})
		from = end
	}
	return out
}

func liveTaskName(prefix string) string {
	return prefix + " - Live"
}

func backfillTaskName(prefix string, r checkpointRange) string {
	return fmt.Sprintf("%s - backfill - %d:%d", prefix, r.from+1, r.to)
}

// taskPlanner makes sure a live task exists and that backfill tasks are no larger than splitSize.
type taskPlanner struct {
	tracker         ProgressTracker
	source          CheckpointSource
	prefix          string
	startCheckpoint uint64
	splitSize       uint64
	logger          *zap.Logger
}

// Plan registers missing tasks and returns the ongoing ones.
func (p *taskPlanner) Plan(ctx context.Context) (model.Tasks, error) {
	tasks, err := p.tracker.GetOngoingTasks(ctx, p.prefix)
	if err != nil {
		return nil, err
	}

	changed := false
	if _, ok := tasks.Live(); !ok {
		if err = p.registerLive(ctx); err != nil {
			return nil, err
		}
		changed = true
	}

	for _, task := range tasks.Backfill() {
		split, err := p.splitBackfill(ctx, task)
		if err != nil {
			return nil, err
		}
		changed = changed || split
	}

	if !changed {
		return tasks, nil
	}
	return p.tracker.GetOngoingTasks(ctx, p.prefix)
}

// startWatermark is the inclusive watermark a fresh deployment resumes after. A start of 0 maps
// to watermark 0, so the genesis checkpoint is never fetched: it only carries the genesis
// transaction, which publishes system packages and cannot emit events of a user package.
func (p *taskPlanner) startWatermark() uint64 {
	if p.startCheckpoint == 0 {
		return 0
	}
	return p.startCheckpoint - 1
}

func (p *taskPlanner) registerLive(ctx context.Context) error {
	from := p.startWatermark()

	indexed, ok, err := p.tracker.GetLargestIndexedCheckpoint(ctx, p.prefix)
	if err != nil {
		return err
	}
	if ok && indexed > from {
		from = indexed
	}

	latest, err := p.source.LatestCheckpoint(ctx)
	switch {
	case errors.Is(err, source.ErrCheckpointNotFound):
		latest = from
	case err != nil:
		return fmt.Errorf("latest checkpoint: %w", err)
	}

	if latest > from {
		if err = p.registerBackfills(ctx, from, latest); err != nil {
			return err
		}
		from = latest
	}

	return p.tracker.RegisterLiveTask(ctx, liveTaskName(p.prefix), from)
}

func (p *taskPlanner) registerBackfills(ctx context.Context, from, to uint64) error {
	for _, r := range splitRange(from, to, p.splitSize) {
		err := p.tracker.RegisterTask(ctx, backfillTaskName(p.prefix, r), r.from, r.to)
		if errors.Is(err, model.ErrTaskAlreadyExists) {
			p.logger.Info("backfill task already registered", zap.Uint64("from", r.from), zap.Uint64("to", r.to))
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// splitBackfill shrinks an oversized backfill task to splitSize and registers the remainder as new tasks.
func (p *taskPlanner) splitBackfill(ctx context.Context, task model.Task) (bool, error) {
	if task.TargetCheckpoint-task.Checkpoint <= p.splitSize {
		return false, nil
	}

	ranges := splitRange(task.Checkpoint, task.TargetCheckpoint, p.splitSize)
	if err := p.registerBackfills(ctx, ranges[1].from, task.TargetCheckpoint); err != nil {
		return false, err
	}

	task.TargetCheckpoint = ranges[0].to
	if err := p.tracker.UpdateTask(ctx, task); err != nil {
		return false, err
	}
	p.logger.Info("backfill task split",
		zap.String("task", task.Name),
		zap.Uint64("target", task.TargetCheckpoint),
		zap.Int("new_tasks", len(ranges)-1),
	)
	return true, nil
}
