package errors

import (
	"context"
	"errors"

	"update-sync/domain"
)

// Sentinels for failures raised without an AppContextError.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrOperationTimeout = errors.New("operation timeout")
)

// transient lists causes a later sync pass can recover from.
var transient = []error{
	ErrOperationTimeout,
	context.DeadlineExceeded,
	domain.ErrRemoteUnavailable,
	domain.ErrPreferencesConflict,
}

func IsValidationError(err error) bool {
	if appErr, ok := AsAppContextError(err); ok {
		return appErr.Code == CodeValidation
	}
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, domain.ErrInvalidPreference)
}

// IsRetryableError reports whether a failed operation may succeed when
// retried. The code of the outermost AppContextError wins over sentinels
// further down the chain; cancellation is never retryable.
func IsRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if appErr, ok := AsAppContextError(err); ok {
		return appErr.IsRetryable()
	}
	for _, target := range transient {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
