package job

import (
	"context"
	"errors"
	"log/slog"

	"update-sync/utils/retry"
)

var errSyncIncomplete = errors.New("sync pass incomplete")

// RetryingSync repeats failed sync passes with exponential backoff.
type RetryingSync struct {
	worker  *SyncWorker
	retrier *retry.Retrier
}

func NewRetryingSync(worker *SyncWorker, config retry.RetryConfig, log *slog.Logger) *RetryingSync {
	return &RetryingSync{
		worker:  worker,
		retrier: retry.NewRetrier(config, retry.Always, log),
	}
}

// Run returns nil once a pass succeeds, or an error wrapping
// errSyncIncomplete when attempts run out.
func (r *RetryingSync) Run(ctx context.Context) error {
	return r.retrier.Do(ctx, func(ctx context.Context) error {
		if r.worker.DoWork(ctx) == ResultRetry {
			return errSyncIncomplete
		}
		return nil
	})
}
