// Package ingester drives checkpoint ingestion for the registered indexing tasks.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/source"
	"github.com/goodnatureofminers/autoliquid-backend/internal/clock"
	"github.com/goodnatureofminers/autoliquid-backend/pkg/batcher"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config tunes the IndexerService.
type Config struct {
	TaskPrefix      string
	StartCheckpoint uint64
	Concurrency     int
}

// IndexerService plans the live and backfill tasks and ingests each of them until done.
type IndexerService struct {
	logger             *zap.Logger
	source             CheckpointSource
	tracker            ProgressTracker
	metrics            Metrics
	planner            *taskPlanner
	processor          CheckpointProcessor
	sleep              func(context.Context, time.Duration) error
	idleSleepDuration  time.Duration
	errorSleepDuration time.Duration
	chunkSize          uint64
	maxBackfills       int
	batcherSize        int
	batcherInterval    time.Duration
}

// NewIndexerService builds an IndexerService with its dependencies.
func NewIndexerService(
	src CheckpointSource,
	extractor Extractor,
	writer RecordWriter,
	tracker ProgressTracker,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*IndexerService, error) {
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}
	if src == nil || extractor == nil || writer == nil || tracker == nil {
		return nil, errors.New("source, extractor, writer and tracker are required")
	}
	if cfg.TaskPrefix == "" {
		cfg.TaskPrefix = DefaultTaskPrefix
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultWorkerCount
	}

	clk := clock.New()
	return &IndexerService{
		logger:  logger,
		source:  src,
		tracker: tracker,
		metrics: metrics,
		planner: &taskPlanner{
			tracker:         tracker,
			source:          src,
			prefix:          cfg.TaskPrefix,
			startCheckpoint: cfg.StartCheckpoint,
			splitSize:       backfillSplitSize,
			logger:          logger.Named("planner"),
		},
		processor: &checkpointProcessor{
			workerCount: cfg.Concurrency,
			source:      src,
			extractor:   extractor,
			writer:      writer,
			metrics:     metrics,
			logger:      logger.Named("processor"),
		},
		sleep: func(ctx context.Context, d time.Duration) error {
			return clock.Sleep(ctx, clk, d)
		},
		idleSleepDuration:  idleSleepDuration,
		errorSleepDuration: errorSleepDuration,
		chunkSize:          checkpointChunkSize,
		maxBackfills:       maxConcurrentBackfills,
		batcherSize:        progressBatcherSize,
		batcherInterval:    progressBatcherFlushInterval,
	}, nil
}

// Run ingests until the context is canceled, re-planning after failures.
func (s *IndexerService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.errorSleepDuration))
			if sleepErr := s.sleep(ctx, s.errorSleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *IndexerService) run(ctx context.Context) error {
	tasks, err := s.planner.Plan(ctx)
	if err != nil {
		return fmt.Errorf("plan tasks: %w", err)
	}

	live, hasLive := tasks.Live()
	backfills := tasks.Backfill()
	s.logger.Info("starting tasks", zap.Bool("live", hasLive), zap.Int("backfills", len(backfills)))

	g, gctx := errgroup.WithContext(ctx)
	if hasLive {
		g.Go(func() error {
			return s.runTask(gctx, live)
		})
	}
	g.Go(func() error {
		bg, bctx := errgroup.WithContext(gctx)
		bg.SetLimit(s.maxBackfills)
		for _, task := range backfills {
			bg.Go(func() error {
				return s.runTask(bctx, task)
			})
		}
		return bg.Wait()
	})

	if err = g.Wait(); err != nil {
		return err
	}
	// Only reached without a live task; plan again to register one.
	return nil
}

// runTask ingests the checkpoints of one task. Backfills return once every checkpoint up to the
// target is written and its progress flushed.
func (s *IndexerService) runTask(ctx context.Context, task model.Task) error {
	logger := s.logger.With(zap.String("task", task.Name))
	logger.Info("task started", zap.Uint64("checkpoint", task.Checkpoint), zap.Uint64("target", task.TargetCheckpoint))

	progress := batcher.New(logger.Named("progress"), func(ctx context.Context, checkpoints []uint64) error {
		return s.saveProgress(ctx, task, checkpoints)
	}, s.batcherSize, s.batcherInterval, progressBatcherRPS)
	progress.Start(ctx)
	defer progress.Stop()

	next := task.Checkpoint + 1
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !task.IsLive && next > task.TargetCheckpoint {
			progress.Stop()
			if err := s.confirmCompleted(ctx, task); err != nil {
				return err
			}
			logger.Info("task completed", zap.Uint64("target", task.TargetCheckpoint))
			return nil
		}

		upper, err := s.upperBound(ctx, task)
		if err != nil {
			logger.Warn("read latest checkpoint failed", zap.Error(err), zap.Duration("sleep", s.errorSleepDuration))
			if sleepErr := s.sleep(ctx, s.errorSleepDuration); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		if upper < next {
			if sleepErr := s.sleep(ctx, s.idleSleepDuration); sleepErr != nil {
				return sleepErr
			}
			continue
		}

		end := upper
		if end-next >= s.chunkSize {
			end = next + s.chunkSize - 1
		}
		checkpoints := sequence(next, end)

		started := time.Now()
		err = s.processor.Process(ctx, task.Name, checkpoints, progress)
		s.metrics.ObserveProcessBatch(task.Name, err, len(checkpoints), started)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("process checkpoints failed, retrying",
				zap.Uint64("from", next),
				zap.Uint64("to", end),
				zap.Error(err),
				zap.Duration("sleep", s.errorSleepDuration),
			)
			if sleepErr := s.sleep(ctx, s.errorSleepDuration); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		next = end + 1
	}
}

// upperBound returns the highest checkpoint the task may process now.
func (s *IndexerService) upperBound(ctx context.Context, task model.Task) (uint64, error) {
	if !task.IsLive {
		return task.TargetCheckpoint, nil
	}

	latest, err := s.source.LatestCheckpoint(ctx)
	if errors.Is(err, source.ErrCheckpointNotFound) {
		s.metrics.ObserveFetchLatest(task.Name, nil)
		return 0, nil
	}
	s.metrics.ObserveFetchLatest(task.Name, err)
	if err != nil {
		return 0, err
	}
	return latest, nil
}

// confirmCompleted makes sure the target of a finished backfill is stored. A failed flush of the
// progress batcher is retried once; if the target still cannot be stored the task fails so the
// next run plans it again.
func (s *IndexerService) confirmCompleted(ctx context.Context, task model.Task) error {
	stored, err := s.tracker.LoadProgress(ctx, task.Name)
	if err != nil {
		return fmt.Errorf("load progress of %s: %w", task.Name, err)
	}
	if stored >= task.TargetCheckpoint {
		return nil
	}

	cp, saved, err := s.tracker.SaveProgress(ctx, task, []uint64{task.TargetCheckpoint})
	if err != nil {
		return fmt.Errorf("save final progress of %s: %w", task.Name, err)
	}
	if !saved || cp < task.TargetCheckpoint {
		return fmt.Errorf("task %s stored progress %d below target %d", task.Name, stored, task.TargetCheckpoint)
	}
	s.metrics.ObserveSavedCheckpoint(task.Name, cp)
	return nil
}

func (s *IndexerService) saveProgress(ctx context.Context, task model.Task, checkpoints []uint64) error {
	cp, saved, err := s.tracker.SaveProgress(ctx, task, checkpoints)
	if err != nil {
		return err
	}
	if saved {
		s.metrics.ObserveSavedCheckpoint(task.Name, cp)
	}
	return nil
}

func sequence(from, to uint64) []uint64 {
	out := make([]uint64, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}
