package job

import (
	"context"
	"log/slog"
	"time"

	"update-sync/port/synchronizer_port"
	"update-sync/utils/logger"
	"update-sync/utils/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Result tells the job host whether to schedule the pass again.
type Result string

const (
	ResultSuccess Result = "success"
	ResultRetry   Result = "retry"
)

// SyncWorker runs one sync pass over every repository. It is the
// Synchronizer the repositories read and advance their cursors through.
type SyncWorker struct {
	synchronizer synchronizer_port.Synchronizer
	repositories map[string]synchronizer_port.Syncable
	logger       *slog.Logger
}

// NewSyncWorker takes the repositories to sync, keyed by a name used in logs.
func NewSyncWorker(synchronizer synchronizer_port.Synchronizer, repositories map[string]synchronizer_port.Syncable, log *slog.Logger) *SyncWorker {
	return &SyncWorker{
		synchronizer: synchronizer,
		repositories: repositories,
		logger:       logger.OrDefault(log),
	}
}

// DoWork syncs all repositories in parallel. The pass succeeds only when
// every repository reports success; the first failure cancels the others.
func (w *SyncWorker) DoWork(ctx context.Context) Result {
	ctx = logger.WithSyncRun(ctx, uuid.NewString())
	log := logger.NewContextLogger(w.logger).WithContext(ctx)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for name, repo := range w.repositories {
		g.Go(func() error {
			ok, err := repo.Sync(gctx, w.synchronizer)
			if err != nil {
				log.WarnContext(gctx, "repository sync failed", "repository", name, "error", err)
				return err
			}
			if !ok {
				return errSyncIncomplete
			}
			return nil
		})
	}

	result := ResultSuccess
	if err := g.Wait(); err != nil {
		result = ResultRetry
	}
	metrics.RecordSyncJob(string(result))
	log.InfoContext(ctx, "sync pass finished",
		"result", result,
		"repositories", len(w.repositories),
		"duration_ms", time.Since(start).Milliseconds())
	return result
}
