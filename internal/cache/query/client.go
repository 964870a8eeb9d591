// Package query implements an in-memory request cache with a stale-while-revalidate
// lifecycle: fresh entries are served from memory, stale ones are served while a
// background refresh runs, concurrent requests for a key share one fetch, and
// unused entries are evicted after a retention window.
package query

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"go-query-cache/internal/scheduler"
)

// FetchFunc loads the value for a key. It receives the client's context, which is
// cancelled on Close, and must be safe to call again on retry.
type FetchFunc[V any] func(ctx context.Context) (V, error)

// Client owns the entry map and serializes every state transition under mu.
// Fetches run on their own goroutines; their outcomes are applied in completion order
// and delivered to subscribers in that same order, one callback at a time per key.
type Client[V any] struct {
	mu      sync.Mutex
	entries map[Key]*entry[V]
	nextSub uint64
	closed  bool

	defaults Options
	clock    Clock
	metrics  MetricsRecorder
	logger   *zap.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	sweeper *scheduler.Scheduler
}

// NewClient creates a request cache. Call Close to stop the sweeper and cancel in-flight fetches.
func NewClient[V any](logger *zap.Logger, opts ...ClientOption) *Client[V] {
	co := defaultClientOptions()
	for _, opt := range opts {
		opt(co)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Client[V]{
		entries:  make(map[Key]*entry[V]),
		defaults: co.defaults,
		clock:    co.clock,
		metrics:  co.metrics,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}

	if co.sweepInterval > 0 {
		c.sweeper = scheduler.NewWithClock(co.clock, co.sweepInterval, func() { c.Sweep() })
		c.sweeper.Start()
	}

	return c
}

// Request returns the current observation for key and starts a fetch when the
// entry is missing, holds no data after a failed load, or is stale with
// RefetchOnRevisit set. It never blocks on the fetch.
func (c *Client[V]) Request(key Key, fetch FetchFunc[V], opts ...Option) Observation[V] {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return closedObservation[V](key)
	}

	now := c.clock.Now()
	o := c.defaults.apply(opts)
	e, found := c.lookup(key, now)
	if !found {
		e = c.create(key, o, now)
	}
	e.opts = o
	e.fetch = fetch
	e.touch(now)

	started := false
	switch {
	case !found:
		c.metrics.RecordRequest(OutcomeMiss)
		c.startFetch(e, fetch, o)
		started = true
	case e.inFlightCount() > 0:
		c.metrics.RecordRequest(OutcomeCoalesced)
	case e.isFresh(now, o.StaleTime):
		c.metrics.RecordRequest(OutcomeFresh)
	case e.status == StatusIdle || o.RefetchOnRevisit || !e.hasValue:
		// an entry with nothing to show always loads again, whatever the revisit policy
		c.metrics.RecordRequest(requestOutcome(e))
		c.startFetch(e, fetch, o)
		started = true
	default:
		c.metrics.RecordRequest(requestOutcome(e))
	}

	obs := c.observeLocked(e, now)
	drain := started && c.enqueueLocked(e, obs)
	c.mu.Unlock()

	if drain {
		c.drain(e)
	}
	return obs
}

// Fetch returns the value for key, blocking until a fetch settles when the entry
// is not fresh. Concurrent callers join the latest in-flight attempt.
func (c *Client[V]) Fetch(ctx context.Context, key Key, fetch FetchFunc[V], opts ...Option) (V, error) {
	var zero V

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return zero, ErrClosed
	}

	now := c.clock.Now()
	o := c.defaults.apply(opts)
	e, found := c.lookup(key, now)
	if !found {
		e = c.create(key, o, now)
	}
	e.opts = o
	e.fetch = fetch
	e.touch(now)

	if found && e.isFresh(now, o.StaleTime) {
		val := e.value
		c.metrics.RecordRequest(OutcomeFresh)
		c.mu.Unlock()
		return val, nil
	}

	drain := false
	f := e.latestFlight()
	if f == nil {
		c.metrics.RecordRequest(requestOutcome(e))
		f = c.startFetch(e, fetch, o)
		drain = c.enqueueLocked(e, c.observeLocked(e, now))
	} else {
		c.metrics.RecordRequest(OutcomeCoalesced)
	}
	c.mu.Unlock()

	if drain {
		c.drain(e)
	}

	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Refetch starts a new fetch for key even when the entry is fresh or already
// fetching. Earlier attempts keep running; whichever settles last wins.
func (c *Client[V]) Refetch(key Key, fetch FetchFunc[V], opts ...Option) Observation[V] {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return closedObservation[V](key)
	}

	now := c.clock.Now()
	o := c.defaults.apply(opts)
	e, found := c.lookup(key, now)
	if !found {
		e = c.create(key, o, now)
	}
	e.opts = o
	e.fetch = fetch
	e.touch(now)

	c.startFetch(e, fetch, o)
	obs := c.observeLocked(e, now)
	drain := c.enqueueLocked(e, obs)
	c.mu.Unlock()

	if drain {
		c.drain(e)
	}
	return obs
}

// Peek returns the observation for key without touching retention or starting a fetch
func (c *Client[V]) Peek(key Key) (Observation[V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return Observation[V]{Key: key, Status: StatusIdle}, false
	}
	return c.observeLocked(e, c.clock.Now()), true
}

// Subscribe registers fn for every state change of key. Callbacks for a key run one
// at a time in the order the changes were applied, and may call back into the client.
// They run on whichever goroutine applied the change, so they should not block.
// A subscribed entry is never evicted. The returned function removes the subscription
// and is safe to call twice.
func (c *Client[V]) Subscribe(key Key, fn func(Observation[V])) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || fn == nil {
		return func() {}
	}

	now := c.clock.Now()
	e, found := c.lookup(key, now)
	if !found {
		e = c.create(key, c.defaults, now)
	}
	c.nextSub++
	id := c.nextSub
	e.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(e.subscribers, id)
			if len(e.subscribers) == 0 {
				e.touch(c.clock.Now())
			}
		})
	}
}

// Invalidate marks every entry whose key satisfies match as stale and refetches
// it with its last registered fetch function. It returns the number of entries hit.
func (c *Client[V]) Invalidate(match func(Key) bool) int {
	c.mu.Lock()
	if c.closed || match == nil {
		c.mu.Unlock()
		return 0
	}
	var keys []Key
	for k, e := range c.entries {
		if !match(k) {
			continue
		}
		e.invalidated = true
		if e.fetch != nil {
			keys = append(keys, k)
		}
	}
	c.mu.Unlock()

	for _, k := range keys {
		c.refetchStored(k)
	}
	if len(keys) > 0 {
		c.logger.Debug("Invalidated query entries", zap.Int("count", len(keys)))
	}
	return len(keys)
}

// Keys returns the keys currently held
func (c *Client[V]) Keys() []Key {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]Key, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries currently held
func (c *Client[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Sweep evicts entries past their retention deadline with no subscribers and no
// fetch in flight. It returns the number of evicted entries.
func (c *Client[V]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	evicted := 0
	for k, e := range c.entries {
		if e.evictable(now) {
			delete(c.entries, k)
			evicted++
		}
	}

	if evicted > 0 {
		c.metrics.RecordEviction(evicted)
		c.metrics.UpdateEntries(len(c.entries))
		c.logger.Debug("Evicted inactive query entries",
			zap.Int("evicted", evicted),
			zap.Int("remaining", len(c.entries)))
	}
	return evicted
}

// Close stops the sweeper, cancels the context handed to fetch functions and
// waits for in-flight fetches to settle. Close is idempotent.
func (c *Client[V]) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	if c.sweeper != nil {
		c.sweeper.Stop()
	}
	c.cancel()
	c.wg.Wait()

	c.logger.Debug("Query client closed")
	return nil
}

// lookup returns the entry for key, dropping it first if it is already evictable.
// Caller must hold mu.
func (c *Client[V]) lookup(key Key, now time.Time) (*entry[V], bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if e.evictable(now) {
		delete(c.entries, key)
		c.metrics.RecordEviction(1)
		c.metrics.UpdateEntries(len(c.entries))
		return nil, false
	}
	return e, true
}

// create inserts an Idle entry. Caller must hold mu.
func (c *Client[V]) create(key Key, o Options, now time.Time) *entry[V] {
	e := newEntry[V](key, o, now)
	c.entries[key] = e
	c.metrics.UpdateEntries(len(c.entries))
	return e
}

// startFetch launches a new attempt chain for e. Caller must hold mu and have checked closed.
func (c *Client[V]) startFetch(e *entry[V], fetch FetchFunc[V], o Options) *flight[V] {
	f := &flight[V]{done: make(chan struct{})}
	e.flights = append(e.flights, f)
	if !e.hasValue && e.status == StatusIdle {
		e.status = StatusFetching
	}

	c.wg.Add(1)
	go c.run(e, f, fetch, o)
	return f
}

// run executes one attempt chain and applies its outcome
func (c *Client[V]) run(e *entry[V], f *flight[V], fetch FetchFunc[V], o Options) {
	defer c.wg.Done()

	started := c.clock.Now()
	val, attempts, err := c.attempt(e.key, fetch, o)

	c.mu.Lock()
	now := c.clock.Now()
	e.removeFlight(f)

	if err == nil {
		e.value = val
		e.hasValue = true
		e.fetchedAt = now
		e.lastErr = nil
		e.errorAt = time.Time{}
		e.failureCount = 0
		e.invalidated = false
		e.status = StatusFresh
		e.touch(now)
		f.val = val
		c.metrics.RecordFetch("success", attempts, now.Sub(started))
	} else {
		fetchErr := &FetchError{Key: e.key, Attempts: attempts, Err: err}
		e.lastErr = fetchErr
		e.errorAt = now
		e.failureCount += attempts
		e.status = StatusFailed
		f.err = fetchErr
		c.metrics.RecordFetch("error", attempts, now.Sub(started))
		c.logger.Warn("Query fetch failed",
			zap.String("key", e.key.String()),
			zap.Int("attempts", attempts),
			zap.Bool("has_stale_data", e.hasValue),
			zap.Error(err))
	}
	close(f.done)

	drain := c.enqueueLocked(e, c.observeLocked(e, now))
	c.mu.Unlock()

	if drain {
		c.drain(e)
	}
}

// attempt calls fetch up to 1+RetryCount times
func (c *Client[V]) attempt(key Key, fetch FetchFunc[V], o Options) (V, int, error) {
	for n := 1; ; n++ {
		val, err := safeFetch(c.ctx, fetch)
		if err == nil {
			return val, n, nil
		}
		if n > o.RetryCount || c.ctx.Err() != nil {
			return val, n, err
		}

		c.metrics.RecordRetry()
		c.logger.Debug("Query fetch attempt failed, retrying",
			zap.String("key", key.String()),
			zap.Int("attempt", n),
			zap.Error(err))

		if o.RetryDelay == nil {
			continue
		}
		if d := o.RetryDelay(n, err); d > 0 {
			t := c.clock.Timer(d)
			select {
			case <-t.C:
			case <-c.ctx.Done():
				t.Stop()
				return val, n, err
			}
		}
	}
}

// refetchStored re-runs the last fetch function and options registered for key
func (c *Client[V]) refetchStored(key Key) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok || e.fetch == nil {
		c.mu.Unlock()
		return
	}
	fetch, o := e.fetch, e.opts
	c.mu.Unlock()

	c.Refetch(key, fetch, func(opts *Options) { *opts = o })
}

// observeLocked snapshots e. Caller must hold mu.
func (c *Client[V]) observeLocked(e *entry[V], now time.Time) Observation[V] {
	obs := e.observe(now)
	key := e.key
	obs.refetch = func() { c.refetchStored(key) }
	return obs
}

func closedObservation[V any](key Key) Observation[V] {
	return Observation[V]{
		Key:     key,
		Status:  StatusFailed,
		IsError: true,
		Error:   ErrClosed,
	}
}

func requestOutcome[V any](e *entry[V]) string {
	if e.hasValue {
		return OutcomeStale
	}
	return OutcomeMiss
}

// safeFetch converts a panicking fetch into an error so the entry still settles
func safeFetch[V any](ctx context.Context, fetch FetchFunc[V]) (val V, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("fetch panicked: %v", p)
		}
	}()
	return fetch(ctx)
}

// enqueueLocked queues obs for e's subscribers and reports whether the caller
// must drain the queue after releasing mu. Caller must hold mu.
func (c *Client[V]) enqueueLocked(e *entry[V], obs Observation[V]) bool {
	if len(e.subscribers) == 0 {
		return false
	}
	e.pending = append(e.pending, obs)
	if e.delivering {
		return false
	}
	e.delivering = true
	return true
}

// drain delivers e's queued observations one at a time, in the order they were
// queued, until the queue is empty. Only one goroutine drains an entry at a time,
// so callbacks for a key never overlap and the last one delivered is the latest state.
func (c *Client[V]) drain(e *entry[V]) {
	for {
		c.mu.Lock()
		if len(e.pending) == 0 {
			e.pending = nil
			e.delivering = false
			c.mu.Unlock()
			return
		}
		obs := e.pending[0]
		e.pending[0] = Observation[V]{}
		e.pending = e.pending[1:]
		subs := e.subscriberList()
		c.mu.Unlock()

		c.notify(subs, obs)
	}
}

// notify calls every subscriber, logging instead of unwinding when one panics
func (c *Client[V]) notify(subs []func(Observation[V]), obs Observation[V]) {
	for _, fn := range subs {
		func() {
			defer func() {
				if p := recover(); p != nil {
					c.logger.Error("Query subscriber panicked",
						zap.String("key", obs.Key.String()),
						zap.Any("panic", p))
				}
			}()
			fn(obs)
		}()
	}
}
