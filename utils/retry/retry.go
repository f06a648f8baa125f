// Package retry runs operations with exponential backoff and jitter.
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

type RetryConfig struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterFactor  float64
}

// DefaultRetryConfig is the policy used for background sync.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   5,
		BaseDelay:     5 * time.Second,
		MaxDelay:      5 * time.Minute,
		BackoffFactor: 2.0,
		JitterFactor:  0.2,
	}
}

// ErrorClassifier reports whether an error is worth another attempt.
type ErrorClassifier func(error) bool

// Always retries every error.
func Always(error) bool { return true }

type Retrier struct {
	config      RetryConfig
	isRetryable ErrorClassifier
	logger      *slog.Logger
}

func NewRetrier(config RetryConfig, classifier ErrorClassifier, logger *slog.Logger) *Retrier {
	config.MaxAttempts = max(config.MaxAttempts, 1)
	config.BackoffFactor = max(config.BackoffFactor, 1)
	if logger == nil {
		logger = slog.Default()
	}
	return &Retrier{config: config, isRetryable: classifier, logger: logger}
}

// policy builds a fresh backoff sequence; BackOff values are stateful.
func (r *Retrier) policy() *backoff.ExponentialBackOff {
	return &backoff.ExponentialBackOff{
		InitialInterval:     r.config.BaseDelay,
		RandomizationFactor: r.config.JitterFactor / 2,
		Multiplier:          r.config.BackoffFactor,
		MaxInterval:         r.config.MaxDelay,
	}
}

// Do runs operation until it succeeds, returns a non-retryable error, the
// attempts are exhausted, or ctx is cancelled while waiting.
func (r *Retrier) Do(ctx context.Context, operation func(ctx context.Context) error) error {
	start := time.Now()
	attempts := 0

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempts++
		err := operation(ctx)
		if err == nil {
			if attempts > 1 {
				r.logger.InfoContext(ctx, "operation succeeded after retry",
					"attempt", attempts,
					"total_duration_ms", time.Since(start).Milliseconds())
			}
			return struct{}{}, nil
		}
		if r.isRetryable == nil || !r.isRetryable(err) {
			r.logger.ErrorContext(ctx, "operation failed permanently", "attempt", attempts, "error", err)
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(r.policy()),
		backoff.WithMaxTries(uint(r.config.MaxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, wait time.Duration) {
			r.logger.WarnContext(ctx, "operation attempt failed, backing off",
				"attempt", attempts,
				"error", err,
				"retry_delay_ms", wait.Milliseconds())
		}),
	)
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return fmt.Errorf("retry cancelled after %d attempts: %w", attempts, err)
	default:
		return fmt.Errorf("operation failed after %d attempts (%dms): %w",
			attempts, time.Since(start).Milliseconds(), err)
	}
}
