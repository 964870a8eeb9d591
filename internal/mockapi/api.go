package mockapi

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Config holds the simulated latencies and failure rates
type Config struct {
	FetchDelay         time.Duration `yaml:"fetch_delay"`
	ErrorDelay         time.Duration `yaml:"error_delay"`
	CategoryDelay      time.Duration `yaml:"category_delay"`
	CreateDelay        time.Duration `yaml:"create_delay"`
	ScenarioDelay      time.Duration `yaml:"scenario_delay"`
	UserListDelay      time.Duration `yaml:"user_list_delay"`
	UserGetDelay       time.Duration `yaml:"user_get_delay"`
	UserCreateDelay    time.Duration `yaml:"user_create_delay"`
	UserDeleteDelay    time.Duration `yaml:"user_delete_delay"`
	ErrorEndpointDelay time.Duration `yaml:"error_endpoint_delay"`

	CategoryErrorRate float64 `yaml:"category_error_rate"`
	CreateErrorRate   float64 `yaml:"create_error_rate"`
}

// DefaultConfig returns the latencies of the demo backend
func DefaultConfig() Config {
	return Config{
		FetchDelay:         2 * time.Second,
		ErrorDelay:         1500 * time.Millisecond,
		CategoryDelay:      1500 * time.Millisecond,
		CreateDelay:        time.Second,
		ScenarioDelay:      1500 * time.Millisecond,
		UserListDelay:      time.Second,
		UserGetDelay:       800 * time.Millisecond,
		UserCreateDelay:    1200 * time.Millisecond,
		UserDeleteDelay:    time.Second,
		ErrorEndpointDelay: 500 * time.Millisecond,
		CategoryErrorRate:  0.3,
		CreateErrorRate:    0.2,
	}
}

// API simulates a slow, occasionally failing backend
type API struct {
	cfg      Config
	clock    clock.Clock
	logger   *zap.Logger
	validate *validator.Validate

	mu    sync.Mutex
	rng   *rand.Rand
	items []DataItem
	users []User
}

// Option customizes an API
type Option func(*API)

// WithClock replaces the clock used for simulated latency
func WithClock(c clock.Clock) Option {
	return func(a *API) {
		a.clock = c
	}
}

// WithRandSource makes failure injection and scenario picks deterministic
func WithRandSource(src rand.Source) Option {
	return func(a *API) {
		a.rng = rand.New(src)
	}
}

// New creates a mock API seeded with the demo data set
func New(cfg Config, logger *zap.Logger, opts ...Option) *API {
	a := &API{
		cfg:      cfg,
		clock:    clock.New(),
		logger:   logger,
		validate: validator.New(),
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		items:    seedItems(),
		users:    seedUsers(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// delay blocks for d or until ctx is done
func (a *API) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := a.clock.Timer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// fails draws against rate. Caller must hold mu.
func (a *API) fails(rate float64) bool {
	return rate > 0 && a.rng.Float64() < rate
}

func (a *API) pick(n int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rng.IntN(n)
}
