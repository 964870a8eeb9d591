package scheduler

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Scheduler runs a task at a fixed interval until stopped
type Scheduler struct {
	interval time.Duration
	task     func()
	clock    clock.Clock

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
}

// New creates a scheduler on the wall clock
func New(interval time.Duration, task func()) *Scheduler {
	return NewWithClock(clock.New(), interval, task)
}

// NewWithClock creates a scheduler driven by c
func NewWithClock(c clock.Clock, interval time.Duration, task func()) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
		clock:    c,
	}
}

// Start launches the ticker loop. Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.interval <= 0 || s.task == nil {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	ticker := s.clock.Ticker(s.interval)
	go s.loop(ticker, s.stop, s.done)
}

func (s *Scheduler) loop(ticker *clock.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.task()
		case <-stop:
			return
		}
	}
}

// Stop halts the loop and waits for a running task to return. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done
}

// Running reports whether the loop is active
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
