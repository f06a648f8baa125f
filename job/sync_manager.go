package job

import (
	"context"
	"log/slog"

	"update-sync/utils/logger"
	"update-sync/utils/stream"
)

// SyncManager serializes sync passes, coalesces requests that arrive while a
// pass is running, and publishes whether a pass is in progress.
type SyncManager struct {
	run      func(ctx context.Context) error
	requests chan struct{}
	syncing  *stream.Signal[bool]
	logger   *slog.Logger
}

func NewSyncManager(run func(ctx context.Context) error, log *slog.Logger) *SyncManager {
	return &SyncManager{
		run:      run,
		requests: make(chan struct{}, 1),
		syncing:  stream.NewSignalWith(false),
		logger:   logger.OrDefault(log),
	}
}

// IsSyncing replays the current state and follows every change.
func (m *SyncManager) IsSyncing() stream.Flow[bool] {
	return m.syncing.Flow()
}

// Syncing reports the current state.
func (m *SyncManager) Syncing() bool {
	v, _ := m.syncing.Value()
	return v
}

// RequestSync queues a pass. It returns false when one is already queued.
func (m *SyncManager) RequestSync() bool {
	select {
	case m.requests <- struct{}{}:
		return true
	default:
		return false
	}
}

// Run executes queued passes one at a time until ctx is done.
func (m *SyncManager) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.requests:
		}

		m.syncing.Set(true)
		err := m.run(ctx)
		m.syncing.Set(false)
		if err != nil {
			m.logger.ErrorContext(ctx, "requested sync failed", "error", err)
		}
	}
}
