package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"github.com/goodnatureofminers/autoliquid-backend/pkg/safe"
	"github.com/jackc/pgx/v5"
)

const insertTaskQuery = `
INSERT INTO progress_store (task_name, checkpoint, target_checkpoint)
VALUES ($1, $2, $3)`

// InsertTask creates a task row. A duplicate name returns model.ErrTaskAlreadyExists.
func (r *Repository) InsertTask(ctx context.Context, task model.Task) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_task", err, start)
	}()

	checkpoint, target, err := taskBounds(task)
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, insertTaskQuery, task.Name, checkpoint, target); err != nil {
		err = mapTaskError(err)
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

const taskCheckpointQuery = `
SELECT checkpoint
FROM progress_store
WHERE task_name = $1`

// TaskCheckpoint returns the stored checkpoint of a task or model.ErrTaskNotFound.
func (r *Repository) TaskCheckpoint(ctx context.Context, name string) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("task_checkpoint", err, start)
	}()

	var checkpoint int64
	if err = r.db.QueryRow(ctx, taskCheckpointQuery, name).Scan(&checkpoint); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = model.ErrTaskNotFound
		}
		return 0, fmt.Errorf("query task checkpoint: %w", err)
	}

	cp, err := safe.Uint64(checkpoint)
	if err != nil {
		return 0, fmt.Errorf("task checkpoint: %w", err)
	}
	return cp, nil
}

const upsertProgressQuery = `
INSERT INTO progress_store (task_name, checkpoint, target_checkpoint)
VALUES ($1, $2, $3)
ON CONFLICT (task_name) DO UPDATE
SET checkpoint = EXCLUDED.checkpoint,
	timestamp = now()`

// UpsertProgress sets the checkpoint of a task. A missing task is created as a live task.
func (r *Repository) UpsertProgress(ctx context.Context, name string, checkpoint uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_progress", err, start)
	}()

	cp, err := safe.Int64(checkpoint)
	if err != nil {
		return fmt.Errorf("progress checkpoint: %w", err)
	}

	if _, err = r.db.Exec(ctx, upsertProgressQuery, name, cp, int64(model.LiveTaskTargetCheckpoint)); err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

const ongoingTasksQuery = `
SELECT task_name, checkpoint, target_checkpoint, timestamp
FROM progress_store
WHERE task_name LIKE $1
	AND checkpoint < target_checkpoint
ORDER BY target_checkpoint DESC`

// OngoingTasks returns the unfinished tasks of prefix ordered by target descending.
func (r *Repository) OngoingTasks(ctx context.Context, prefix string) ([]model.Task, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("ongoing_tasks", err, start)
	}()

	rows, err := r.db.Query(ctx, ongoingTasksQuery, taskPattern(prefix))
	if err != nil {
		return nil, fmt.Errorf("query ongoing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var (
			name               string
			checkpoint, target int64
			ts                 *time.Time
		)
		if err = rows.Scan(&name, &checkpoint, &target, &ts); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}

		var task model.Task
		if task, err = newTask(name, checkpoint, target, ts); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

const liveTaskCheckpointQuery = `
SELECT checkpoint
FROM progress_store
WHERE task_name LIKE $1
	AND target_checkpoint = $2
LIMIT 1`

// LiveTaskCheckpoint returns the checkpoint of the live task of prefix, if one exists.
func (r *Repository) LiveTaskCheckpoint(ctx context.Context, prefix string) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("live_task_checkpoint", err, start)
	}()

	var (
		cp    uint64
		found bool
	)
	cp, found, err = r.optionalCheckpoint(ctx, "live task checkpoint", liveTaskCheckpointQuery,
		taskPattern(prefix), int64(model.LiveTaskTargetCheckpoint))
	return cp, found, err
}

const largestBackfillTargetCheckpointQuery = `
SELECT target_checkpoint
FROM progress_store
WHERE task_name LIKE $1
	AND target_checkpoint <> $2
ORDER BY target_checkpoint DESC
LIMIT 1`

// LargestBackfillTargetCheckpoint returns the largest target among bounded tasks of prefix.
func (r *Repository) LargestBackfillTargetCheckpoint(ctx context.Context, prefix string) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("largest_backfill_target_checkpoint", err, start)
	}()

	var (
		cp    uint64
		found bool
	)
	cp, found, err = r.optionalCheckpoint(ctx, "largest backfill target checkpoint", largestBackfillTargetCheckpointQuery,
		taskPattern(prefix), int64(model.LiveTaskTargetCheckpoint))
	return cp, found, err
}

func (r *Repository) optionalCheckpoint(ctx context.Context, what, query string, args ...any) (uint64, bool, error) {
	var checkpoint int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&checkpoint); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query %s: %w", what, err)
	}

	cp, err := safe.Uint64(checkpoint)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", what, err)
	}
	return cp, true, nil
}

const updateTaskQuery = `
UPDATE progress_store
SET checkpoint = $2,
	target_checkpoint = $3,
	timestamp = now()
WHERE task_name = $1`

// UpdateTask overwrites checkpoint and target of a task, or returns model.ErrTaskNotFound.
func (r *Repository) UpdateTask(ctx context.Context, task model.Task) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_task", err, start)
	}()

	checkpoint, target, err := taskBounds(task)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, updateTaskQuery, task.Name, checkpoint, target)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = model.ErrTaskNotFound
		return fmt.Errorf("update task %s: %w", task.Name, err)
	}
	return nil
}

func taskBounds(task model.Task) (int64, int64, error) {
	checkpoint, err := safe.Int64(task.Checkpoint)
	if err != nil {
		return 0, 0, fmt.Errorf("task %s checkpoint: %w", task.Name, err)
	}
	target, err := safe.Int64(task.TargetCheckpoint)
	if err != nil {
		return 0, 0, fmt.Errorf("task %s target: %w", task.Name, err)
	}
	return checkpoint, target, nil
}

func newTask(name string, checkpoint, target int64, ts *time.Time) (model.Task, error) {
	cp, err := safe.Uint64(checkpoint)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %s checkpoint: %w", name, err)
	}
	tg, err := safe.Uint64(target)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %s target: %w", name, err)
	}

	task := model.Task{
		Name:             name,
		Checkpoint:       cp,
		TargetCheckpoint: tg,
		IsLive:           tg == model.LiveTaskTargetCheckpoint,
	}
	if ts != nil {
		task.Timestamp = *ts
	}
	return task, nil
}
