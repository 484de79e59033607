package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	CheckpointSource interface {
		LatestCheckpoint(ctx context.Context) (uint64, error)
		FetchCheckpoint(ctx context.Context, n uint64) (*model.Checkpoint, error)
	}
	Extractor interface {
		Extract(txn model.CheckpointTxn) ([]model.ProcessedRecord, error)
	}
	RecordWriter interface {
		Write(ctx context.Context, records []model.ProcessedRecord) error
	}
	ProgressTracker interface {
		RegisterTask(ctx context.Context, name string, checkpoint, target uint64) error
		RegisterLiveTask(ctx context.Context, name string, checkpoint uint64) error
		LoadProgress(ctx context.Context, name string) (uint64, error)
		SaveProgress(ctx context.Context, task model.Task, checkpoints []uint64) (uint64, bool, error)
		GetOngoingTasks(ctx context.Context, prefix string) (model.Tasks, error)
		GetLargestIndexedCheckpoint(ctx context.Context, prefix string) (uint64, bool, error)
		UpdateTask(ctx context.Context, task model.Task) error
	}
	// ProgressSink receives checkpoints whose records are durably written.
	ProgressSink interface {
		Add(ctx context.Context, checkpoint uint64) error
	}
	CheckpointProcessor interface {
		Process(ctx context.Context, task string, checkpoints []uint64, sink ProgressSink) error
	}
	Metrics interface {
		ObserveFetchLatest(task string, err error)
		ObserveProcessBatch(task string, err error, checkpoints int, started time.Time)
		ObserveProcessCheckpoint(task string, err error, checkpoint uint64, started time.Time)
		ObserveSavedCheckpoint(task string, checkpoint uint64)
	}
)
