package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncManager_PublishesSyncingState(t *testing.T) {
	release := make(chan struct{})
	var runs atomic.Int32
	manager := NewSyncManager(func(ctx context.Context) error {
		runs.Add(1)
		<-release
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = manager.Run(ctx) }()

	states := make(chan bool, 8)
	go func() {
		_ = manager.IsSyncing().Collect(ctx, func(v bool) error {
			states <- v
			return nil
		})
	}()
	assert.False(t, <-states)

	require.True(t, manager.RequestSync())
	assert.True(t, <-states)
	assert.True(t, manager.Syncing())

	// one queued request while running; further ones coalesce
	assert.True(t, manager.RequestSync())
	assert.False(t, manager.RequestSync())

	release <- struct{}{}
	release <- struct{}{}
	assert.Eventually(t, func() bool { return runs.Load() == 2 && !manager.Syncing() }, time.Second, 5*time.Millisecond)
}

func TestSyncManager_RunStopsOnCancel(t *testing.T) {
	manager := NewSyncManager(func(context.Context) error { return errors.New("ignored") }, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, manager.Run(ctx), context.Canceled)
}

type fakeMsg struct {
	acks, naks int
}

func (m *fakeMsg) Ack(...nats.AckOpt) error { m.acks++; return nil }
func (m *fakeMsg) Nak(...nats.AckOpt) error { m.naks++; return nil }

func TestNatsSyncTrigger_AcksOnSuccessNaksOnRetry(t *testing.T) {
	result := ResultSuccess
	trigger := NewNatsSyncTrigger(nil, "update.sync.requested", "update-sync", time.Second,
		func(ctx context.Context) Result {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return result
		}, nil)

	ok := &fakeMsg{}
	trigger.handle(context.Background(), ok)
	assert.Equal(t, 1, ok.acks)
	assert.Zero(t, ok.naks)

	result = ResultRetry
	retry := &fakeMsg{}
	trigger.handle(context.Background(), retry)
	assert.Zero(t, retry.acks)
	assert.Equal(t, 1, retry.naks)
}

func TestNatsSyncTrigger_NaksAfterShutdown(t *testing.T) {
	var called bool
	trigger := NewNatsSyncTrigger(nil, "s", "d", 0, func(context.Context) Result {
		called = true
		return ResultSuccess
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	msg := &fakeMsg{}
	trigger.handle(ctx, msg)

	assert.False(t, called)
	assert.Equal(t, 1, msg.naks)
}
