package progress

import (
	"context"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Repository is the durable task table.
	Repository interface {
		InsertTask(ctx context.Context, task model.Task) error
		TaskCheckpoint(ctx context.Context, name string) (uint64, error)
		UpsertProgress(ctx context.Context, name string, checkpoint uint64) error
		OngoingTasks(ctx context.Context, prefix string) ([]model.Task, error)
		LiveTaskCheckpoint(ctx context.Context, prefix string) (uint64, bool, error)
		LargestBackfillTargetCheckpoint(ctx context.Context, prefix string) (uint64, bool, error)
		UpdateTask(ctx context.Context, task model.Task) error
	}

	// SavePolicy decides which watermark, if any, should be persisted for a batch of completed checkpoints.
	// Commit is called once the watermark returned by CacheProgress has been stored.
	SavePolicy interface {
		CacheProgress(task model.Task, checkpoints []uint64) (uint64, bool)
		Commit(task model.Task, checkpoint uint64)
	}
)
