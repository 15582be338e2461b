package timing

import (
	"sort"
	"sync"
	"time"

	"job-mapper/internal/logger"
)

// Operation names recorded by the job service
const (
	OpLoad   = "store_load"
	OpSave   = "store_save"
	OpExport = "map_export"
)

// Stats summarises the recorded durations of one operation
type Stats struct {
	Count   int
	Total   time.Duration
	Average time.Duration
	Last    time.Duration
	Max     time.Duration
}

// Tracker records how long operations take and logs each one at debug level
type Tracker struct {
	mu      sync.RWMutex
	timings map[string][]time.Duration
	logger  logger.Logger
	enabled bool
	now     func() time.Time
}

func NewTracker(log logger.Logger) *Tracker {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Tracker{
		timings: make(map[string][]time.Duration),
		logger:  log,
		enabled: true,
		now:     time.Now,
	}
}

// Start begins timing operation. Call the returned function when it ends.
func (tt *Tracker) Start(operation string) func() {
	tt.mu.RLock()
	enabled := tt.enabled
	tt.mu.RUnlock()
	if !enabled {
		return func() {}
	}

	start := tt.now()
	return func() {
		tt.Record(operation, tt.now().Sub(start))
	}
}

// Record adds a measured duration for operation
func (tt *Tracker) Record(operation string, d time.Duration) {
	tt.mu.Lock()
	tt.timings[operation] = append(tt.timings[operation], d)
	tt.mu.Unlock()

	tt.logger.Debug("Timing", "operation completed", map[string]interface{}{
		"operation":   operation,
		"duration_ms": d.Milliseconds(),
	})
}

func (tt *Tracker) Stats(operation string) Stats {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return summarise(tt.timings[operation])
}

// Operations lists every operation with at least one recording, sorted
func (tt *Tracker) Operations() []string {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	ops := make([]string, 0, len(tt.timings))
	for op := range tt.timings {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// LogSummary writes one info line per operation
func (tt *Tracker) LogSummary() {
	for _, op := range tt.Operations() {
		s := tt.Stats(op)
		tt.logger.Info("Timing", "operation summary", map[string]interface{}{
			"operation":  op,
			"count":      s.Count,
			"average_ms": s.Average.Milliseconds(),
			"max_ms":     s.Max.Milliseconds(),
		})
	}
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *Tracker) Reset(operation string) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if operation == "" {
		tt.timings = make(map[string][]time.Duration)
	} else {
		delete(tt.timings, operation)
	}
}

func summarise(timings []time.Duration) Stats {
	if len(timings) == 0 {
		return Stats{}
	}

	s := Stats{Count: len(timings), Last: timings[len(timings)-1]}
	for _, d := range timings {
		s.Total += d
		if d > s.Max {
			s.Max = d
		}
	}
	s.Average = s.Total / time.Duration(len(timings))
	return s
}
