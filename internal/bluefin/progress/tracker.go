// Package progress tracks named ingestion tasks and their durable checkpoints.
package progress

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"go.uber.org/zap"
)

// Tracker registers tasks, resumes them and persists their progress through a SavePolicy.
type Tracker struct {
	repo   Repository
	policy SavePolicy
	logger *zap.Logger
}

// NewTracker constructs a Tracker.
func NewTracker(repo Repository, policy SavePolicy, logger *zap.Logger) (*Tracker, error) {
	if repo == nil {
		return nil, fmt.Errorf("repository is nil")
	}
	if policy == nil {
		return nil, fmt.Errorf("save policy is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{repo: repo, policy: policy, logger: logger}, nil
}

// RegisterTask creates a bounded task. A duplicate name returns model.ErrTaskAlreadyExists.
func (t *Tracker) RegisterTask(ctx context.Context, name string, checkpoint, target uint64) error {
	if target >= model.LiveTaskTargetCheckpoint {
		return fmt.Errorf("register task %s: target %d collides with live sentinel", name, target)
	}
	if err := t.repo.InsertTask(ctx, model.Task{Name: name, Checkpoint: checkpoint, TargetCheckpoint: target}); err != nil {
		return fmt.Errorf("register task %s: %w", name, err)
	}
	t.logger.Info("task registered", zap.String("task", name), zap.Uint64("checkpoint", checkpoint), zap.Uint64("target", target))
	return nil
}

// RegisterLiveTask creates the unbounded task starting after checkpoint.
func (t *Tracker) RegisterLiveTask(ctx context.Context, name string, checkpoint uint64) error {
	task := model.Task{
		Name:             name,
		Checkpoint:       checkpoint,
		TargetCheckpoint: model.LiveTaskTargetCheckpoint,
		IsLive:           true,
	}
	if err := t.repo.InsertTask(ctx, task); err != nil {
		return fmt.Errorf("register live task %s: %w", name, err)
	}
	t.logger.Info("live task registered", zap.String("task", name), zap.Uint64("checkpoint", checkpoint))
	return nil
}

// LoadProgress returns the stored checkpoint of a task or model.ErrTaskNotFound.
func (t *Tracker) LoadProgress(ctx context.Context, name string) (uint64, error) {
	cp, err := t.repo.TaskCheckpoint(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("load progress %s: %w", name, err)
	}
	return cp, nil
}

// SaveProgress feeds completed checkpoints to the policy and persists the watermark it releases.
// It returns the persisted checkpoint and whether anything was written.
func (t *Tracker) SaveProgress(ctx context.Context, task model.Task, checkpoints []uint64) (uint64, bool, error) {
	if len(checkpoints) == 0 {
		return 0, false, nil
	}

	cp, ok := t.policy.CacheProgress(task, checkpoints)
	if !ok {
		return 0, false, nil
	}
	if err := t.repo.UpsertProgress(ctx, task.Name, cp); err != nil {
		return 0, false, fmt.Errorf("save progress %s at %d: %w", task.Name, cp, err)
	}
	t.policy.Commit(task, cp)
	t.logger.Debug("progress saved", zap.String("task", task.Name), zap.Uint64("checkpoint", cp))
	return cp, true, nil
}

// GetOngoingTasks returns the unfinished tasks of prefix ordered by target descending.
func (t *Tracker) GetOngoingTasks(ctx context.Context, prefix string) (model.Tasks, error) {
	tasks, err := t.repo.OngoingTasks(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("get ongoing tasks %s: %w", prefix, err)
	}
	return model.NewTasks(tasks)
}

// GetLargestIndexedCheckpoint returns the live task checkpoint, falling back to the largest backfill target.
func (t *Tracker) GetLargestIndexedCheckpoint(ctx context.Context, prefix string) (uint64, bool, error) {
	cp, ok, err := t.repo.LiveTaskCheckpoint(ctx, prefix)
	if err != nil {
		return 0, false, fmt.Errorf("get live task checkpoint %s: %w", prefix, err)
	}
	if ok {
		return cp, true, nil
	}
	return t.GetLargestBackfillTaskTargetCheckpoint(ctx, prefix)
}

// GetLargestBackfillTaskTargetCheckpoint returns the largest target among bounded tasks of prefix.
func (t *Tracker) GetLargestBackfillTaskTargetCheckpoint(ctx context.Context, prefix string) (uint64, bool, error) {
	cp, ok, err := t.repo.LargestBackfillTargetCheckpoint(ctx, prefix)
	if err != nil {
		return 0, false, fmt.Errorf("get largest backfill target %s: %w", prefix, err)
	}
	return cp, ok, nil
}

// UpdateTask overwrites the checkpoint and target of an existing task.
func (t *Tracker) UpdateTask(ctx context.Context, task model.Task) error {
	if err := t.repo.UpdateTask(ctx, task); err != nil {
		return fmt.Errorf("update task %s: %w", task.Name, err)
	}
	return nil
}
