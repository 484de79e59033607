package progress

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
)

// DefaultSaveInterval is how often a live task persists its watermark.
const DefaultSaveInterval = 30 * time.Second

// OutOfOrderSaveAfterDurationPolicy tracks, per task, the highest checkpoint below which every
// checkpoint has completed. Completions may arrive in any order; gaps are buffered until filled.
// A watermark is handed out for persisting at most once per interval, or immediately when a
// bounded task reaches its target. It keeps being handed out until Commit confirms it was stored.
type OutOfOrderSaveAfterDurationPolicy struct {
	interval time.Duration
	clock    clock.Clock

	mu    sync.Mutex
	tasks map[string]*taskProgress
}

type taskProgress struct {
	watermark uint64
	persisted uint64
	pending   map[uint64]struct{}
	lastSave  time.Time
}

// NewOutOfOrderSaveAfterDurationPolicy constructs the policy. A nil clock means wall time.
func NewOutOfOrderSaveAfterDurationPolicy(interval time.Duration, clk clock.Clock) *OutOfOrderSaveAfterDurationPolicy {
	if clk == nil {
		clk = clock.New()
	}
	return &OutOfOrderSaveAfterDurationPolicy{
		interval: interval,
		clock:    clk,
		tasks:    make(map[string]*taskProgress),
	}
}

// CacheProgress records completed checkpoints of task and returns the watermark to persist, if any.
func (p *OutOfOrderSaveAfterDurationPolicy) CacheProgress(task model.Task, checkpoints []uint64) (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	st, ok := p.tasks[task.Name]
	if !ok {
		st = &taskProgress{
			watermark: task.Checkpoint,
			persisted: task.Checkpoint,
			pending:   make(map[uint64]struct{}),
			lastSave:  now,
		}
		p.tasks[task.Name] = st
	}

	for _, cp := range checkpoints {
		if cp > st.watermark {
			st.pending[cp] = struct{}{}
		}
	}
	for {
		next := st.watermark + 1
		if _, ok := st.pending[next]; !ok {
			break
		}
		delete(st.pending, next)
		st.watermark = next
	}

	if st.watermark <= st.persisted {
		return 0, false
	}

	reachedTarget := !task.IsLive && st.watermark >= task.TargetCheckpoint
	if !reachedTarget && now.Sub(st.lastSave) < p.interval {
		return 0, false
	}

	return st.watermark, true
}

// Commit marks checkpoint as durably stored for task and restarts its save interval.
func (p *OutOfOrderSaveAfterDurationPolicy) Commit(task model.Task, checkpoint uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	st, ok := p.tasks[task.Name]
	if !ok {
		return
	}
	if checkpoint > st.persisted {
		st.persisted = checkpoint
	}
	st.lastSave = p.clock.Now()
}

// Watermark returns the in-memory contiguous watermark of a task.
func (p *OutOfOrderSaveAfterDurationPolicy) Watermark(name string) (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	st, ok := p.tasks[name]
	if !ok {
		return 0, false
	}
	return st.watermark, true
}
