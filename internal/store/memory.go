package store

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned when no probe has been recorded yet.
	ErrNotFound = errors.New("no probe results recorded")
)

// ProbeResult is the outcome of one provider health probe.
type ProbeResult struct {
	Query     string        `json:"query"`
	Timestamp time.Time     `json:"timestamp"` // always UTC
	Latency   time.Duration `json:"latencyNs"`
	OK        bool          `json:"ok"`
	Error     string        `json:"error,omitempty"`
}

// ProbeLog is a concurrency-safe, bounded in-memory log of probe results.
type ProbeLog struct {
	mu sync.RWMutex

	results    []ProbeResult
	maxHistory int // max number of results kept
}

// NewProbeLog creates a new ProbeLog.
// If maxHistory is <= 0, only the latest result is kept.
func NewProbeLog(maxHistory int) *ProbeLog {
	if maxHistory <= 0 {
		maxHistory = 1
	}
	return &ProbeLog{maxHistory: maxHistory}
}

// Record appends a result and drops the oldest ones beyond the limit.
func (l *ProbeLog) Record(r ProbeResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.results = append(l.results, r)
	if over := len(l.results) - l.maxHistory; over > 0 {
		l.results = append([]ProbeResult(nil), l.results[over:]...)
	}
}

// Latest returns the most recent result.
func (l *ProbeLog) Latest() (ProbeResult, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.results) == 0 {
		return ProbeResult{}, ErrNotFound
	}
	return l.results[len(l.results)-1], nil
}

// Recent returns a copy of the kept results, oldest first.
func (l *ProbeLog) Recent() []ProbeResult {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]ProbeResult(nil), l.results...)
}

// FailureRate returns the share of kept probes that failed.
func (l *ProbeLog) FailureRate() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.results) == 0 {
		return 0
	}
	failed := 0
	for _, r := range l.results {
		if !r.OK {
			failed++
		}
	}
	return float64(failed) / float64(len(l.results))
}
