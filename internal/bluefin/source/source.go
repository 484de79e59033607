// Package source reads exported Sui checkpoints from a directory or an S3-compatible bucket.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
)

// ErrCheckpointNotFound is returned when the requested checkpoint has not been exported yet.
var ErrCheckpointNotFound = errors.New("checkpoint not found")

const checkpointExt = ".json"

func checkpointName(n uint64) string {
	return strconv.FormatUint(n, 10) + checkpointExt
}

// parseCheckpointName returns the sequence number encoded in an object or file name.
func parseCheckpointName(name string) (uint64, bool) {
	base, ok := strings.CutSuffix(name, checkpointExt)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(base, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func decodeCheckpoint(n uint64, data []byte) (*model.Checkpoint, error) {
	var cp model.Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, fmt.Errorf("decode checkpoint %d: %w", n, err)
	}
	if cp.SequenceNumber != n {
		return nil, fmt.Errorf("decode checkpoint %d: sequence number %d does not match", n, cp.SequenceNumber)
	}
	return &cp, nil
}
