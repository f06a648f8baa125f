package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"update-sync/utils/logger"
)

// Job defines a periodic background job.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// JobScheduler runs periodic jobs until its context is cancelled.
type JobScheduler struct {
	jobs   []Job
	wg     sync.WaitGroup
	logger *slog.Logger
}

func NewJobScheduler(log *slog.Logger) *JobScheduler {
	return &JobScheduler{logger: logger.OrDefault(log)}
}

// Add registers a job to be run when Start is called.
func (s *JobScheduler) Add(j Job) {
	s.jobs = append(s.jobs, j)
}

// Start launches every registered job on its own goroutine. A job fires
// once right away and then on each tick of its interval.
func (s *JobScheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Go(func() { s.loop(ctx, j) })
	}
}

func (s *JobScheduler) loop(ctx context.Context, j Job) {
	log := s.logger.With("job", j.Name)
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			log.InfoContext(ctx, "job stopping")
			return
		}
		s.fire(ctx, log, j)

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}

func (s *JobScheduler) fire(ctx context.Context, log *slog.Logger, j Job) {
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	started := time.Now()
	if err := j.Fn(ctx); err != nil {
		log.ErrorContext(ctx, "job failed", "error", err, "elapsed", time.Since(started))
		return
	}
	log.DebugContext(ctx, "job finished", "elapsed", time.Since(started))
}

// Shutdown blocks until every job loop has returned.
func (s *JobScheduler) Shutdown() {
	s.wg.Wait()
}
