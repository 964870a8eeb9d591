package query

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Clock is the time source used for freshness, retention and retry backoff
type Clock = clock.Clock

func realClock() Clock {
	return clock.New()
}

// Request outcomes reported to MetricsRecorder.RecordRequest
const (
	OutcomeFresh     = "fresh"
	OutcomeStale     = "stale"
	OutcomeMiss      = "miss"
	OutcomeCoalesced = "coalesced"
)

// MetricsRecorder receives lifecycle events from a Client
type MetricsRecorder interface {
	RecordRequest(outcome string)
	RecordFetch(result string, attempts int, duration time.Duration)
	RecordRetry()
	RecordEviction(count int)
	UpdateEntries(count int)
}

// NoopMetrics discards all events
type NoopMetrics struct{}

func (NoopMetrics) RecordRequest(string)                    {}
func (NoopMetrics) RecordFetch(string, int, time.Duration)  {}
func (NoopMetrics) RecordRetry()                            {}
func (NoopMetrics) RecordEviction(int)                      {}
func (NoopMetrics) UpdateEntries(int)                       {}
