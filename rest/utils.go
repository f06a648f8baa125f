package rest

import (
	"context"
	stderrors "errors"
	"strings"

	"update-sync/domain"
	"update-sync/utils/errors"
	"update-sync/utils/logger"
	"update-sync/utils/stream"

	"github.com/labstack/echo/v4"
)

// handleError maps err onto an AppContextError and writes it as JSON.
func handleError(c echo.Context, err error, operation string) error {
	req := c.Request()
	details := map[string]any{
		"path":   req.URL.Path,
		"method": req.Method,
	}

	appErr, ok := errors.AsAppContextError(err)
	switch {
	case ok:
	case stderrors.Is(err, domain.ErrTopicNotFound), stderrors.Is(err, domain.ErrNewsResourceNotFound):
		appErr = errors.NewNotFoundContextError(err.Error(), "rest", "RESTHandler", operation, err, details)
	case stderrors.Is(err, domain.ErrInvalidPreference):
		appErr = errors.NewAppContextError(errors.CodeValidation, err.Error(), "rest", "RESTHandler", operation, err, details)
	case stderrors.Is(err, context.DeadlineExceeded):
		appErr = errors.NewTimeoutContextError("request timed out", "rest", "RESTHandler", operation, err, details)
	default:
		appErr = errors.NewUnknownContextError("internal server error", "rest", "RESTHandler", operation, err, details)
	}

	ctx := req.Context()
	logger.NewContextLogger(logger.Logger).WithContext(ctx).ErrorContext(ctx, "REST handler error",
		"error", appErr.Error(),
		"error_code", appErr.Code,
		"operation", operation,
		"path", req.URL.Path,
		"is_retryable", appErr.IsRetryable(),
	)
	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

func handleValidationError(c echo.Context, message, field string, value any) error {
	validationErr := errors.NewValidationContextError(message, "rest", "RESTHandler", "validateInput", map[string]any{
		"field": field,
		"value": value,
		"path":  c.Request().URL.Path,
	})
	return c.JSON(validationErr.HTTPStatusCode(), validationErr.ToHTTPResponse())
}

// snapshot returns the current value of a flow.
func snapshot[T any](c echo.Context, f stream.Flow[T]) (T, error) {
	return stream.First(c.Request().Context(), f)
}

// queryIDs collects a repeatable query parameter, also splitting commas.
// It returns nil when the parameter is absent.
func queryIDs(c echo.Context, name string) domain.IDSet {
	values, ok := c.QueryParams()[name]
	if !ok {
		return nil
	}
	var ids []string
	for _, v := range values {
		for id := range strings.SplitSeq(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return domain.NewIDSet(ids...)
}
