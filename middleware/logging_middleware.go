package middleware

import (
	"log/slog"
	"time"

	"update-sync/utils/logger"

	"github.com/labstack/echo/v4"
)

// quietPaths are polled by probes and scrapers and never logged.
var quietPaths = map[string]struct{}{
	"/v1/health": {},
	"/metrics":   {},
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// LoggingMiddleware writes one access line per request at a level that
// follows the response status.
func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if _, quiet := quietPaths[req.URL.Path]; quiet {
				return next(c)
			}
			start := time.Now()

			err := next(c)
			if err != nil {
				// resolve the final status before logging
				c.Error(err)
			}

			res := c.Response()
			ctx := req.Context()
			contextLogger.WithContext(ctx).Log(ctx, statusLevel(res.Status), "request completed",
				"method", req.Method,
				"route", c.Path(),
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", res.Size,
			)
			return err
		}
	}
}
