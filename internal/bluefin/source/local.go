package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
)

// LocalSource reads <dir>/<sequence>.json files.
type LocalSource struct {
	dir string
}

// NewLocalSource constructs a LocalSource over an existing directory.
func NewLocalSource(dir string) (*LocalSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat checkpoints dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("checkpoints path %s is not a directory", dir)
	}
	return &LocalSource{dir: dir}, nil
}

// LatestCheckpoint returns the highest checkpoint present in the directory.
func (s *LocalSource) LatestCheckpoint(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read checkpoints dir: %w", err)
	}

	var (
		latest uint64
		found  bool
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n, ok := parseCheckpointName(e.Name())
		if !ok {
			continue
		}
		if !found || n > latest {
			latest, found = n, true
		}
	}
	if !found {
		return 0, ErrCheckpointNotFound
	}
	return latest, nil
}

// FetchCheckpoint reads and decodes checkpoint n.
func (s *LocalSource) FetchCheckpoint(ctx context.Context, n uint64) (*model.Checkpoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, checkpointName(n)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checkpoint %d: %w", n, ErrCheckpointNotFound)
		}
		return nil, fmt.Errorf("read checkpoint %d: %w", n, err)
	}
	return decodeCheckpoint(n, data)
}
