package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TaskFunc performs one run of a background task.
type TaskFunc func(context.Context) error

// Task is a named unit of periodic background work.
type Task struct {
	Name     string
	Interval time.Duration
	Retries  int
	Backoff  time.Duration
	Run      TaskFunc
}

// Scheduler runs registered tasks on their intervals, each in its own
// goroutine. A failed run is retried with backoff before waiting for the
// next tick.
type Scheduler struct {
	logger *zap.Logger

	mu      sync.Mutex
	tasks   []Task
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

// NewScheduler constructs an empty scheduler.
func NewScheduler(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{logger: logger}
}

// Register adds a task. Must be called before Start.
func (s *Scheduler) Register(task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task.Interval <= 0 {
		task.Interval = time.Hour
	}
	if task.Backoff <= 0 {
		task.Backoff = 30 * time.Second
	}
	s.tasks = append(s.tasks, task)
}

// Start launches one goroutine per registered task. Safe to call once.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	for _, task := range s.tasks {
		s.wg.Add(1)
		go s.loop(runCtx, task)
	}
	s.started = true
	s.logger.Info("scheduler started", zap.Int("tasks", len(s.tasks)))
}

// Stop cancels all task loops and waits for them to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, task Task) {
	defer s.wg.Done()
	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.attempt(ctx, task)
		}
	}
}

func (s *Scheduler) attempt(ctx context.Context, task Task) {
	for try := 0; ; try++ {
		err := task.Run(ctx)
		if err == nil {
			return
		}
		if try >= task.Retries {
			s.logger.Error("task failed",
				zap.String("task", task.Name),
				zap.Int("attempts", try+1),
				zap.Error(err))
			return
		}
		s.logger.Warn("task failed, retrying",
			zap.String("task", task.Name),
			zap.Int("attempt", try+1),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return
		case <-time.After(task.Backoff):
		}
	}
}
