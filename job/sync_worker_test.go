package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"update-sync/mocks"
	"update-sync/port/synchronizer_port"
	"update-sync/utils/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWorker(t *testing.T, topics, news synchronizer_port.Syncable) *SyncWorker {
	t.Helper()
	ctrl := gomock.NewController(t)
	return NewSyncWorker(mocks.NewMockSynchronizer(ctrl), map[string]synchronizer_port.Syncable{
		"topics": topics,
		"news":   news,
	}, nil)
}

func TestSyncWorker_DoWork(t *testing.T) {
	boom := errors.New("remote down")

	tests := []struct {
		name      string
		topicsOK  bool
		topicsErr error
		newsOK    bool
		newsErr   error
		want      Result
	}{
		{name: "both succeed", topicsOK: true, newsOK: true, want: ResultSuccess},
		{name: "topics fail", topicsErr: boom, newsOK: true, want: ResultRetry},
		{name: "news fail", topicsOK: true, newsErr: boom, want: ResultRetry},
		{name: "news incomplete", topicsOK: true, newsOK: false, want: ResultRetry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			topics := mocks.NewMockSyncable(ctrl)
			news := mocks.NewMockSyncable(ctrl)
			topics.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(tt.topicsOK, tt.topicsErr).MaxTimes(1)
			news.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(tt.newsOK, tt.newsErr).MaxTimes(1)

			assert.Equal(t, tt.want, newWorker(t, topics, news).DoWork(context.Background()))
		})
	}
}

func TestSyncWorker_PassesItsSynchronizer(t *testing.T) {
	ctrl := gomock.NewController(t)
	synchronizer := mocks.NewMockSynchronizer(ctrl)
	repo := mocks.NewMockSyncable(ctrl)
	repo.EXPECT().Sync(gomock.Any(), synchronizer).Return(true, nil)

	worker := NewSyncWorker(synchronizer, map[string]synchronizer_port.Syncable{"only": repo}, nil)
	assert.Equal(t, ResultSuccess, worker.DoWork(context.Background()))
}

func TestRetryingSync_RetriesUntilSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	topics := mocks.NewMockSyncable(ctrl)
	news := mocks.NewMockSyncable(ctrl)

	topics.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	gomock.InOrder(
		news.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(false, errors.New("flaky")),
		news.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(true, nil),
	)

	cfg := retry.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, BackoffFactor: 2}
	err := NewRetryingSync(newWorker(t, topics, news), cfg, nil).Run(context.Background())
	require.NoError(t, err)
}

func TestRetryingSync_GivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	topics := mocks.NewMockSyncable(ctrl)
	news := mocks.NewMockSyncable(ctrl)
	topics.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	news.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(false, errors.New("down")).Times(2)

	cfg := retry.RetryConfig{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 1}
	err := NewRetryingSync(newWorker(t, topics, news), cfg, nil).Run(context.Background())
	assert.ErrorIs(t, err, errSyncIncomplete)
}
