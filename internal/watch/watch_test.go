package watch

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/psantana5/peperone/internal/timer"
	"github.com/psantana5/peperone/internal/timer/timertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// removingStore deletes the timer from the underlying store after a number
// of successful reads, like another process running `peperone remove`.
type removingStore struct {
	*timertest.MemoryStore
	after int
	reads int
}

func (s *removingStore) Read(name string) (*timer.Timer, error) {
	t, err := s.MemoryStore.Read(name)
	if err != nil {
		return nil, err
	}
	s.reads++
	if s.reads == s.after {
		if err := s.MemoryStore.Remove(name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func newStore(t *testing.T) (*timertest.MemoryStore, *timertest.Clock) {
	t.Helper()
	clock := timertest.NewClock(epoch)
	store := timertest.NewMemoryStore(clock, false)
	_, err := store.Create("mytimer")
	require.NoError(t, err)
	clock.Advance(21 * time.Second)
	clock.SetStep(time.Second)
	return store, clock
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSpace(buf.String()), "\n")
}

func TestLoopPrintsIncreasingValuesUntilRemoved(t *testing.T) {
	store, clock := newStore(t)
	var out bytes.Buffer

	loop := &Loop{
		Store:    &removingStore{MemoryStore: store, after: 3},
		Clock:    clock,
		Interval: time.Millisecond,
		Out:      &out,
	}

	err := loop.Run(context.Background(), "mytimer")
	require.ErrorIs(t, err, ErrRemoved)
	assert.ErrorIs(t, err, timer.ErrNotFound)
	assert.Equal(t, []string{"00:21", "00:22", "00:23"}, lines(&out))
}

func TestLoopCount(t *testing.T) {
	store, clock := newStore(t)
	var out bytes.Buffer

	loop := &Loop{Store: store, Clock: clock, Interval: time.Millisecond, Out: &out, Count: 2}

	require.NoError(t, loop.Run(context.Background(), "mytimer"))
	assert.Equal(t, []string{"00:21", "00:22"}, lines(&out))
}

func TestLoopUnknownTimer(t *testing.T) {
	store, clock := newStore(t)
	var out bytes.Buffer

	loop := &Loop{Store: store, Clock: clock, Interval: time.Millisecond, Out: &out}

	err := loop.Run(context.Background(), "ghost")
	require.ErrorIs(t, err, timer.ErrNotFound)
	assert.NotErrorIs(t, err, ErrRemoved)
	assert.Empty(t, out.String())
}

func TestLoopStopsOnCancel(t *testing.T) {
	store, clock := newStore(t)
	var out bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := &Loop{Store: store, Clock: clock, Interval: time.Hour, Out: &out}

	require.NoError(t, loop.Run(ctx, "mytimer"))
	assert.Equal(t, []string{"00:21"}, lines(&out))
}

// syncBuffer guards a buffer shared between the loop and the test goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

func TestLoopNoticesExternalRemovalWithinInterval(t *testing.T) {
	store := timertest.NewMemoryStore(nil, false)
	_, err := store.Create("mytimer")
	require.NoError(t, err)

	interval := 20 * time.Millisecond
	out := &syncBuffer{}
	loop := &Loop{Store: store, Interval: interval, Out: out}

	done := make(chan error, 1)
	go func() {
		done <- loop.Run(context.Background(), "mytimer")
	}()

	require.Eventually(t, func() bool { return out.Len() > 0 }, time.Second, time.Millisecond)
	removedAt := time.Now()
	require.NoError(t, store.Remove("mytimer"))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrRemoved)
		assert.Less(t, time.Since(removedAt), interval+500*time.Millisecond)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after the timer was removed")
	}
}
