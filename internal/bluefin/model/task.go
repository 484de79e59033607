package model

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// LiveTaskTargetCheckpoint is the target stored for the unbounded live task.
const LiveTaskTargetCheckpoint uint64 = math.MaxInt64

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskAlreadyExists = errors.New("task already exists")
)

// Task is a named ingestion range. Checkpoint is the highest checkpoint below which everything is indexed.
type Task struct {
	Name             string
	Checkpoint       uint64
	TargetCheckpoint uint64
	Timestamp        time.Time
	IsLive           bool
}

// IsOngoing reports whether the task still has checkpoints left to index.
func (t Task) IsOngoing() bool {
	return t.Checkpoint < t.TargetCheckpoint
}

// Tasks is the set of ongoing tasks for one prefix, with at most one live task.
type Tasks []Task

// NewTasks validates that tasks contain at most one live task.
func NewTasks(tasks []Task) (Tasks, error) {
	live := 0
	for _, t := range tasks {
		if t.IsLive {
			live++
		}
	}
	if live > 1 {
		return nil, fmt.Errorf("found %d live tasks, expected at most one", live)
	}
	return Tasks(tasks), nil
}

// Live returns the live task when present.
func (ts Tasks) Live() (Task, bool) {
	for _, t := range ts {
		if t.IsLive {
			return t, true
		}
	}
	return Task{}, false
}

// Backfill returns the bounded tasks in their original order.
func (ts Tasks) Backfill() []Task {
	out := make([]Task, 0, len(ts))
	for _, t := range ts {
		if !t.IsLive {
			out = append(out, t)
		}
	}
	return out
}
