package query

import (
	"time"
)

// Options controls the lifecycle of a single query entry
type Options struct {
	// StaleTime is how long a successful result is served without refetching
	StaleTime time.Duration
	// Retention is how long an entry survives without access before it may be evicted
	Retention time.Duration
	// RetryCount is the number of automatic retries after a failed attempt
	RetryCount int
	// RetryDelay returns the wait before retry number attempt (1-based). Nil retries immediately.
	RetryDelay func(attempt int, err error) time.Duration
	// RefetchOnRevisit starts a background refresh when a stale entry is requested again.
	// A failed entry without data is always fetched again on request.
	RefetchOnRevisit bool
}

// DefaultOptions returns the options used when neither the client nor the caller overrides them
func DefaultOptions() Options {
	return Options{
		StaleTime:        0,
		Retention:        5 * time.Minute,
		RetryCount:       3,
		RefetchOnRevisit: true,
	}
}

// Option mutates Options for a single Request, Fetch or Refetch call
type Option func(*Options)

// WithStaleTime sets the freshness window
func WithStaleTime(d time.Duration) Option {
	return func(o *Options) {
		o.StaleTime = d
	}
}

// WithRetention sets the inactivity window after which the entry may be evicted
func WithRetention(d time.Duration) Option {
	return func(o *Options) {
		o.Retention = d
	}
}

// WithRetry sets the number of automatic retries
func WithRetry(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.RetryCount = n
	}
}

// WithRetryDelay sets a backoff function for retries
func WithRetryDelay(fn func(attempt int, err error) time.Duration) Option {
	return func(o *Options) {
		o.RetryDelay = fn
	}
}

// WithConstantRetryDelay waits d between every retry
func WithConstantRetryDelay(d time.Duration) Option {
	return WithRetryDelay(func(int, error) time.Duration { return d })
}

// WithRefetchOnRevisit toggles background refresh of stale entries
func WithRefetchOnRevisit(enabled bool) Option {
	return func(o *Options) {
		o.RefetchOnRevisit = enabled
	}
}

// apply returns a copy of o with opts applied in order
func (o Options) apply(opts []Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ClientOption configures a Client at construction time
type ClientOption func(*clientOptions)

type clientOptions struct {
	defaults      Options
	clock         Clock
	metrics       MetricsRecorder
	sweepInterval time.Duration
}

func defaultClientOptions() *clientOptions {
	return &clientOptions{
		defaults:      DefaultOptions(),
		clock:         realClock(),
		metrics:       NoopMetrics{},
		sweepInterval: time.Minute,
	}
}

// WithDefaults replaces the client-wide default Options
func WithDefaults(o Options) ClientOption {
	return func(co *clientOptions) {
		co.defaults = o
	}
}

// WithClock injects the time source. Tests pass clock.NewMock().
func WithClock(c Clock) ClientOption {
	return func(co *clientOptions) {
		if c != nil {
			co.clock = c
		}
	}
}

// WithMetrics injects a metrics recorder
func WithMetrics(m MetricsRecorder) ClientOption {
	return func(co *clientOptions) {
		if m != nil {
			co.metrics = m
		}
	}
}

// WithSweepInterval sets how often the background sweeper runs. Zero disables it.
func WithSweepInterval(d time.Duration) ClientOption {
	return func(co *clientOptions) {
		co.sweepInterval = d
	}
}
