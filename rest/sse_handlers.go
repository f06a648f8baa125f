package rest

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"update-sync/config"
	"update-sync/di"
	"update-sync/domain"
	"update-sync/utils/logger"

	"github.com/labstack/echo/v4"
)

const defaultSSEInterval = 15 * time.Second

// handleFollowedNewsStream sends the followed-topic feed as a server-sent
// event on every change, with comment heartbeats in between.
func handleFollowedNewsStream(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithCancel(c.Request().Context())
		defer cancel()
		log := logger.NewContextLogger(container.Logger).WithContext(ctx)

		res := c.Response()
		flusher, ok := res.Writer.(http.Flusher)
		if !ok {
			return c.String(http.StatusInternalServerError, "streaming not supported")
		}
		res.Header().Set(echo.HeaderContentType, "text/event-stream")
		res.Header().Set("Cache-Control", "no-cache")
		res.Header().Set("Connection", "keep-alive")
		res.WriteHeader(http.StatusOK)
		flusher.Flush()

		updates := make(chan []domain.UserNewsResource)
		done := make(chan error, 1)
		go func() {
			done <- container.UserNewsRepository.ObserveAllForFollowedTopics().Collect(ctx, func(news []domain.UserNewsResource) error {
				select {
				case updates <- news:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
		}()

		interval := cfg.Server.SSEInterval
		if interval <= 0 {
			interval = defaultSSEInterval
		}
		heartbeat := time.NewTicker(interval)
		defer heartbeat.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case err := <-done:
				if err != nil && !stderrors.Is(err, context.Canceled) {
					log.ErrorContext(ctx, "followed news stream failed", "error", err)
					fmt.Fprintf(res, "event: error\ndata: %q\n\n", err.Error())
					flusher.Flush()
				}
				return nil
			case news := <-updates:
				data, err := json.Marshal(news)
				if err != nil {
					log.ErrorContext(ctx, "failed to encode news event", "error", err)
					continue
				}
				if _, err := fmt.Fprintf(res, "event: news\ndata: %s\n\n", data); err != nil {
					log.InfoContext(ctx, "client disconnected", "error", err)
					return nil
				}
				flusher.Flush()
			case <-heartbeat.C:
				if _, err := fmt.Fprint(res, ": heartbeat\n\n"); err != nil {
					log.InfoContext(ctx, "client disconnected during heartbeat", "error", err)
					return nil
				}
				flusher.Flush()
			}
		}
	}
}
