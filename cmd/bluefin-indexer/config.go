package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	"gopkg.in/yaml.v3"
)

const (
	defaultConcurrency = 2
	defaultMetricPort  = 9090
	dbURLEnv           = "DB_URL"
)

// config holds flag and environment values. Fields left empty are filled from the YAML file.
type config struct {
	ConfigFile string `long:"config" env:"BLUEFIN_INDEXER_CONFIG" description:"Path to a YAML config file"`
	LogFormat  string `long:"log-format" env:"BLUEFIN_INDEXER_LOG_FORMAT" default:"console" choice:"console" choice:"json" description:"Log encoding"`
	TaskPrefix string `long:"task-prefix" env:"BLUEFIN_INDEXER_TASK_PREFIX" default:"BluefinIndexer" description:"Prefix of the progress task names"`

	indexerConfig
}

// indexerConfig mirrors the keys of the YAML config file.
type indexerConfig struct {
	RemoteStoreURL  string `long:"remote-store-url" env:"BLUEFIN_INDEXER_REMOTE_STORE_URL" yaml:"remote_store_url" description:"Checkpoint bucket (s3://bucket/prefix or http(s)://endpoint/bucket/prefix)"`
	RemoteAccessKey string `long:"remote-access-key" env:"BLUEFIN_INDEXER_REMOTE_ACCESS_KEY" yaml:"remote_access_key" description:"Checkpoint bucket access key"`
	RemoteSecretKey string `long:"remote-secret-key" env:"BLUEFIN_INDEXER_REMOTE_SECRET_KEY" yaml:"remote_secret_key" description:"Checkpoint bucket secret key"`
	RemoteRegion    string `long:"remote-region" env:"BLUEFIN_INDEXER_REMOTE_REGION" yaml:"remote_region" description:"Checkpoint bucket region"`
	DBURL           string `long:"db-url" env:"BLUEFIN_INDEXER_DB_URL" yaml:"db_url" description:"PostgreSQL DSN, falls back to $DB_URL"`
	CheckpointsPath string `long:"checkpoints-path" env:"BLUEFIN_INDEXER_CHECKPOINTS_PATH" yaml:"checkpoints_path" description:"Directory of exported checkpoints, used instead of the remote store"`
	PackageID       string `long:"package-id" env:"BLUEFIN_INDEXER_PACKAGE_ID" yaml:"package_id" description:"Bluefin spot package id"`
	StartCheckpoint uint64 `long:"start-checkpoint" env:"BLUEFIN_INDEXER_START_CHECKPOINT" yaml:"start_checkpoint" description:"First checkpoint to index"`
	Concurrency     int    `long:"concurrency" env:"BLUEFIN_INDEXER_CONCURRENCY" yaml:"concurrency" description:"Checkpoints processed in parallel per task"`
	MetricPort      uint16 `long:"metric-port" env:"BLUEFIN_INDEXER_METRIC_PORT" yaml:"metric_port" description:"Prometheus metrics port"`
}

func loadConfigFile(path string) (indexerConfig, error) {
	var fc indexerConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("decode config file: %w", err)
	}
	return fc, nil
}

// merge fills every zero field of c from file.
func (c *indexerConfig) merge(file indexerConfig) {
	setString(&c.RemoteStoreURL, file.RemoteStoreURL)
	setString(&c.RemoteAccessKey, file.RemoteAccessKey)
	setString(&c.RemoteSecretKey, file.RemoteSecretKey)
	setString(&c.RemoteRegion, file.RemoteRegion)
	setString(&c.DBURL, file.DBURL)
	setString(&c.CheckpointsPath, file.CheckpointsPath)
	setString(&c.PackageID, file.PackageID)
	if c.StartCheckpoint == 0 {
		c.StartCheckpoint = file.StartCheckpoint
	}
	if c.Concurrency == 0 {
		c.Concurrency = file.Concurrency
	}
	if c.MetricPort == 0 {
		c.MetricPort = file.MetricPort
	}
}

func setString(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// resolve merges the config file, applies defaults and validates the result.
func (c *config) resolve(getenv func(string) string) (model.Address, error) {
	if c.ConfigFile != "" {
		fc, err := loadConfigFile(c.ConfigFile)
		if err != nil {
			return model.Address{}, err
		}
		c.merge(fc)
	}

	setString(&c.DBURL, getenv(dbURLEnv))
	if c.Concurrency == 0 {
		c.Concurrency = defaultConcurrency
	}
	if c.MetricPort == 0 {
		c.MetricPort = defaultMetricPort
	}

	return c.validate()
}

func (c *config) validate() (model.Address, error) {
	if c.DBURL == "" {
		return model.Address{}, errors.New("db url must be set in config or via the $DB_URL env var")
	}
	if c.RemoteStoreURL == "" && c.CheckpointsPath == "" {
		return model.Address{}, errors.New("either remote store url or checkpoints path is required")
	}
	if c.PackageID == "" {
		return model.Address{}, errors.New("package id is required")
	}
	pkg, err := model.ParseAddress(c.PackageID)
	if err != nil {
		return model.Address{}, fmt.Errorf("package id: %w", err)
	}
	if c.Concurrency < 0 {
		return model.Address{}, fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	return pkg, nil
}
