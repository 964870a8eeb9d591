package query

import (
	"time"
)

// Status is the lifecycle state of a query entry
type Status string

const (
	StatusIdle     Status = "idle"
	StatusFetching Status = "fetching"
	StatusFresh    Status = "fresh"
	StatusStale    Status = "stale"
	StatusFailed   Status = "failed"
)

// flight is one fetch attempt chain (initial try plus retries).
// done is closed after the outcome has been applied to the entry.
type flight[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// entry holds the state of one cached resource. All fields are guarded by Client.mu.
type entry[V any] struct {
	key Key

	value    V
	hasValue bool

	fetchedAt   time.Time // zero until the first success
	retainUntil time.Time
	invalidated bool // forces stale until the next success

	// status is the stored transition state. Stale is never stored, see statusAt.
	status Status

	flights []*flight[V] // attempts started and not yet settled, oldest first
	fetch   FetchFunc[V] // last fetch function registered for the key

	lastErr      error
	errorAt      time.Time
	failureCount int

	opts        Options
	subscribers map[uint64]func(Observation[V])

	// pending holds observations not yet delivered, in mutation order.
	// delivering is set while one goroutine drains pending.
	pending    []Observation[V]
	delivering bool
}

func newEntry[V any](key Key, opts Options, now time.Time) *entry[V] {
	return &entry[V]{
		key:         key,
		status:      StatusIdle,
		opts:        opts,
		retainUntil: now.Add(opts.Retention),
		subscribers: make(map[uint64]func(Observation[V])),
	}
}

// inFlightCount is the number of unsettled attempts
func (e *entry[V]) inFlightCount() int {
	return len(e.flights)
}

// latestFlight returns the most recently started unsettled attempt, or nil
func (e *entry[V]) latestFlight() *flight[V] {
	if len(e.flights) == 0 {
		return nil
	}
	return e.flights[len(e.flights)-1]
}

func (e *entry[V]) removeFlight(f *flight[V]) {
	for i, cur := range e.flights {
		if cur == f {
			e.flights = append(e.flights[:i], e.flights[i+1:]...)
			return
		}
	}
}

func (e *entry[V]) subscriberList() []func(Observation[V]) {
	if len(e.subscribers) == 0 {
		return nil
	}
	subs := make([]func(Observation[V]), 0, len(e.subscribers))
	for _, fn := range e.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

// isFresh reports whether a successful value is inside the stale window at now
func (e *entry[V]) isFresh(now time.Time, staleTime time.Duration) bool {
	return !e.invalidated && !e.fetchedAt.IsZero() && now.Before(e.fetchedAt.Add(staleTime))
}

// freshUntil is derived from the last success and the stale window; zero without a success
func (e *entry[V]) freshUntil(staleTime time.Duration) time.Time {
	if e.fetchedAt.IsZero() {
		return time.Time{}
	}
	return e.fetchedAt.Add(staleTime)
}

// statusAt resolves the stored status against the clock
func (e *entry[V]) statusAt(now time.Time) Status {
	if e.status == StatusFresh && !e.isFresh(now, e.opts.StaleTime) {
		return StatusStale
	}
	return e.status
}

// touch pushes the retention deadline forward
func (e *entry[V]) touch(now time.Time) {
	e.retainUntil = now.Add(e.opts.Retention)
}

// evictable reports whether the sweeper may drop the entry at now
func (e *entry[V]) evictable(now time.Time) bool {
	return now.After(e.retainUntil) && e.inFlightCount() == 0 && len(e.subscribers) == 0
}

func (e *entry[V]) observe(now time.Time) Observation[V] {
	obs := Observation[V]{
		Key:          e.key,
		Data:         e.value,
		HasData:      e.hasValue,
		Status:       e.statusAt(now),
		IsFetching:   e.inFlightCount() > 0,
		UpdatedAt:    e.fetchedAt,
		FailureCount: e.failureCount,
	}
	obs.IsLoading = !e.hasValue && e.inFlightCount() > 0
	obs.IsStale = e.hasValue && !e.isFresh(now, e.opts.StaleTime)
	if e.status == StatusFailed {
		obs.IsError = true
		obs.Error = e.lastErr
		obs.ErrorUpdatedAt = e.errorAt
	}
	return obs
}
