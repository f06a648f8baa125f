package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:   attempts,
		BaseDelay:     time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2,
		JitterFactor:  0.1,
	}
}

func TestRetrier_Do(t *testing.T) {
	transient := errors.New("transient")
	permanent := errors.New("permanent")
	classifier := func(err error) bool { return errors.Is(err, transient) }

	tests := map[string]struct {
		results     []error
		wantCalls   int
		wantErr     error
		maxAttempts int
	}{
		"first attempt succeeds": {
			results:     []error{nil},
			wantCalls:   1,
			maxAttempts: 3,
		},
		"succeeds after transient failures": {
			results:     []error{transient, transient, nil},
			wantCalls:   3,
			maxAttempts: 3,
		},
		"stops on permanent error": {
			results:     []error{permanent, nil},
			wantCalls:   1,
			wantErr:     permanent,
			maxAttempts: 3,
		},
		"gives up after max attempts": {
			results:     []error{transient, transient, transient},
			wantCalls:   2,
			wantErr:     transient,
			maxAttempts: 2,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewRetrier(fastConfig(tc.maxAttempts), classifier, nil)
			calls := 0
			err := r.Do(context.Background(), func(context.Context) error {
				res := tc.results[calls]
				calls++
				return res
			})

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetrier_CancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig(5)
	cfg.BaseDelay = time.Hour
	cfg.MaxDelay = time.Hour
	r := NewRetrier(cfg, Always, nil)

	calls := 0
	err := r.Do(ctx, func(context.Context) error {
		calls++
		cancel()
		return errors.New("fail")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetrier_PolicyIsCapped(t *testing.T) {
	r := NewRetrier(RetryConfig{MaxAttempts: 10, BaseDelay: time.Second, MaxDelay: 4 * time.Second, BackoffFactor: 2}, Always, nil)
	b := r.policy()
	b.Reset()

	var got []time.Duration
	for range 5 {
		got = append(got, b.NextBackOff())
	}
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 4 * time.Second, 4 * time.Second}, got)
}

func TestNewRetrier_ClampsConfig(t *testing.T) {
	r := NewRetrier(RetryConfig{}, nil, nil)
	assert.Equal(t, 1, r.config.MaxAttempts)
	assert.Equal(t, 1.0, r.config.BackoffFactor)
}
