package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsTaskOnInterval(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(nil)
	s.Register(Task{
		Name:     "tick",
		Interval: 10 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(60 * time.Millisecond)
	cancel()
	s.Stop()

	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestSchedulerRetriesFailedRun(t *testing.T) {
	var attempts atomic.Int32
	s := NewScheduler(nil)
	s.Register(Task{
		Name:     "flaky",
		Interval: 10 * time.Millisecond,
		Retries:  2,
		Backoff:  time.Millisecond,
		Run: func(ctx context.Context) error {
			if attempts.Add(1) == 1 {
				return errors.New("transient")
			}
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()
	s.Stop()

	assert.GreaterOrEqual(t, attempts.Load(), int32(2))
}
