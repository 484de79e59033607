package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/extractor"
	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/progress"
	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/repository/postgres"
	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/service/ingester"
	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/source"
	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/writer"
	"github.com/goodnatureofminers/autoliquid-backend/internal/clock"
	"github.com/goodnatureofminers/autoliquid-backend/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	var cfg config
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogFormat)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	packageID, err := cfg.resolve(os.Getenv)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, packageID, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("indexer failed", zap.Error(err))
	}
	logger.Info("indexer stopped")
}

func newLogger(format string) (*zap.Logger, error) {
	if format == "json" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, packageID model.Address, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricPort, logger)

	repo, err := postgres.NewRepository(ctx, cfg.DBURL, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer repo.Close()

	ext, err := extractor.New(packageID, metrics.NewIndexer(packageID.String()), logger.Named("extractor"))
	if err != nil {
		return err
	}

	policy := progress.NewOutOfOrderSaveAfterDurationPolicy(progress.DefaultSaveInterval, clock.New())
	tracker, err := progress.NewTracker(repo, policy, logger.Named("progress"))
	if err != nil {
		return err
	}

	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	svc, err := ingester.NewIndexerService(
		src,
		ext,
		writer.New(repo, logger.Named("writer")),
		tracker,
		metrics.NewIngester(),
		ingester.Config{
			TaskPrefix:      cfg.TaskPrefix,
			StartCheckpoint: cfg.StartCheckpoint,
			Concurrency:     cfg.Concurrency,
		},
		logger.Named("ingester"),
	)
	if err != nil {
		return err
	}

	logger.Info("starting indexer",
		zap.Stringer("package_id", packageID),
		zap.Uint64("start_checkpoint", cfg.StartCheckpoint),
		zap.Int("concurrency", cfg.Concurrency),
	)
	return svc.Run(ctx)
}

func newSource(cfg config) (ingester.CheckpointSource, error) {
	if cfg.CheckpointsPath != "" {
		return source.NewLocalSource(cfg.CheckpointsPath)
	}
	return source.NewObjectStoreSource(cfg.RemoteStoreURL, source.ObjectStoreOptions{
		AccessKey: cfg.RemoteAccessKey,
		SecretKey: cfg.RemoteSecretKey,
		Region:    cfg.RemoteRegion,
	})
}

func startMetricsServer(ctx context.Context, port uint16, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              ":" + strconv.Itoa(int(port)),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("Starting metrics server", zap.String("addr", s.Addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to listen and serve metrics", zap.Error(err))
		}
	}()
}
