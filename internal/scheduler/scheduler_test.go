package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsOnEveryTick(t *testing.T) {
	mock := clock.NewMock()
	var runs atomic.Int32

	s := NewWithClock(mock, time.Second, func() { runs.Add(1) })
	s.Start()
	defer s.Stop()

	for i := 1; i <= 3; i++ {
		mock.Add(time.Second)
		want := int32(i)
		require.Eventually(t, func() bool { return runs.Load() == want }, time.Second, time.Millisecond)
	}
}

func TestScheduler_StopHaltsTask(t *testing.T) {
	mock := clock.NewMock()
	var runs atomic.Int32

	s := NewWithClock(mock, time.Second, func() { runs.Add(1) })
	s.Start()
	mock.Add(time.Second)
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, time.Millisecond)

	s.Stop()
	assert.False(t, s.Running())

	mock.Add(5 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_StartStopIdempotent(t *testing.T) {
	s := NewWithClock(clock.NewMock(), time.Second, func() {})

	s.Start()
	s.Start()
	assert.True(t, s.Running())

	s.Stop()
	s.Stop()
	assert.False(t, s.Running())
}

func TestScheduler_ZeroIntervalNeverStarts(t *testing.T) {
	s := New(0, func() {})
	s.Start()
	assert.False(t, s.Running())
	s.Stop()
}
