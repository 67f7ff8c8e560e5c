package utils

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics holds counters for a single run
type Metrics struct {
	TermsGenerated       int64
	TermsVerified        int64
	VerificationFailures int64

	StartTime time.Time
}

var (
	// GlobalMetrics is the global metrics instance
	GlobalMetrics *Metrics
	metricsOnce   sync.Once
)

// InitMetrics initializes the global metrics
func InitMetrics() *Metrics {
	metricsOnce.Do(func() {
		GlobalMetrics = NewMetrics()
	})
	return GlobalMetrics
}

// NewMetrics returns a zeroed Metrics starting now.
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// GetMetrics returns the global metrics instance
func GetMetrics() *Metrics {
	if GlobalMetrics == nil {
		return InitMetrics()
	}
	return GlobalMetrics
}

func (m *Metrics) AddTermsGenerated(n int) {
	atomic.AddInt64(&m.TermsGenerated, int64(n))
}

func (m *Metrics) IncrementVerified() {
	atomic.AddInt64(&m.TermsVerified, 1)
}

func (m *Metrics) IncrementFailures() {
	atomic.AddInt64(&m.VerificationFailures, 1)
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		TermsGenerated:       atomic.LoadInt64(&m.TermsGenerated),
		TermsVerified:        atomic.LoadInt64(&m.TermsVerified),
		VerificationFailures: atomic.LoadInt64(&m.VerificationFailures),
		Elapsed:              time.Since(m.StartTime),
	}
}

// MetricsSnapshot is a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	TermsGenerated       int64         `json:"terms_generated"`
	TermsVerified        int64         `json:"terms_verified"`
	VerificationFailures int64         `json:"verification_failures"`
	Elapsed              time.Duration `json:"elapsed"`
}
