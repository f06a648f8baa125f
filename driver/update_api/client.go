// Package update_api talks to the Update backend over HTTP.
package update_api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"update-sync/domain"
	apperrors "update-sync/utils/errors"
	"update-sync/utils/logger"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
)

const (
	component = "UpdateAPIClient"
	userAgent = "update-sync/1.0"
	// maxErrorBody caps how much of a failed response ends up in logs.
	maxErrorBody = 512
)

// Client implements remote_port.RemoteDataSource against the REST backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	validate   *validator.Validate
	logger     *slog.Logger
}

type Options struct {
	BaseURL        string
	Timeout        time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	HTTPClient     *http.Client
	Logger         *slog.Logger
}

func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url must be http or https: %q", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	if opts.RateLimitRPS > 0 {
		limit = rate.Limit(opts.RateLimitRPS)
	}
	burst := opts.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		validate:   validator.New(),
		logger:     logger.OrDefault(opts.Logger),
	}, nil
}

func (c *Client) GetTopics(ctx context.Context, ids []string) ([]domain.NetworkTopic, error) {
	if ids != nil && len(ids) == 0 {
		return []domain.NetworkTopic{}, nil
	}
	var topics []domain.NetworkTopic
	if err := c.get(ctx, "GetTopics", "/topics", idQuery(ids), &topics); err != nil {
		return nil, err
	}
	if err := validateEach(c.validate, topics, "GetTopics"); err != nil {
		return nil, err
	}
	return topics, nil
}

func (c *Client) GetNewsResources(ctx context.Context, ids []string) ([]domain.NetworkNewsResource, error) {
	if ids != nil && len(ids) == 0 {
		return []domain.NetworkNewsResource{}, nil
	}
	var news []domain.NetworkNewsResource
	if err := c.get(ctx, "GetNewsResources", "/newsresources", idQuery(ids), &news); err != nil {
		return nil, err
	}
	if err := validateEach(c.validate, news, "GetNewsResources"); err != nil {
		return nil, err
	}
	return news, nil
}

func (c *Client) GetTopicChangeList(ctx context.Context, after int) ([]domain.ChangeList, error) {
	return c.getChangeList(ctx, "GetTopicChangeList", "/changelists/topics", after)
}

func (c *Client) GetNewsResourceChangeList(ctx context.Context, after int) ([]domain.ChangeList, error) {
	return c.getChangeList(ctx, "GetNewsResourceChangeList", "/changelists/newsresources", after)
}

func (c *Client) getChangeList(ctx context.Context, operation, path string, after int) ([]domain.ChangeList, error) {
	query := url.Values{}
	if after > 0 {
		query.Set("after", strconv.Itoa(after))
	}
	var changes []domain.ChangeList
	if err := c.get(ctx, operation, path, query, &changes); err != nil {
		return nil, err
	}
	if err := validateEach(c.validate, changes, operation); err != nil {
		return nil, err
	}
	return changes, nil
}

func idQuery(ids []string) url.Values {
	query := url.Values{}
	for _, id := range ids {
		query.Add("id", id)
	}
	return query
}

func (c *Client) get(ctx context.Context, operation, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apperrors.NewRateLimitContextError("rate limiter wait failed", "driver", component, operation, err, nil)
	}

	endpoint := *c.baseURL
	endpoint.Path = c.baseURL.Path + path
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return apperrors.NewUnknownContextError("failed to create request", "driver", component, operation, err, nil)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "remote request failed", "operation", operation, "error", err)
		return transportError(operation, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.DebugContext(ctx, "failed to close response body", "error", closeErr)
		}
	}()

	c.logger.DebugContext(ctx, "remote response received",
		"operation", operation,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.WarnContext(ctx, "remote request rejected",
			"operation", operation,
			"status", resp.StatusCode,
			"body", string(body))
		return statusError(operation, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewExternalAPIContextError("failed to decode response", "driver", component, operation, err, nil)
	}
	return nil
}

func statusError(operation string, status int) error {
	details := map[string]any{"status": status}
	switch {
	case status == http.StatusTooManyRequests:
		return apperrors.NewRateLimitContextError("remote rate limited the request", "driver", component, operation, domain.ErrRemoteUnavailable, details)
	case status == http.StatusNotFound:
		return apperrors.NewNotFoundContextError("remote resource not found", "driver", component, operation, nil, details)
	case status >= 500:
		return apperrors.NewExternalAPIContextError("remote server error", "driver", component, operation, domain.ErrRemoteUnavailable, details)
	default:
		return apperrors.NewValidationContextError(fmt.Sprintf("remote rejected request with status %d", status), "driver", component, operation, details)
	}
}

func transportError(operation string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.NewTimeoutContextError("remote request timed out", "driver", component, operation, err, nil)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return apperrors.NewExternalAPIContextError("remote unavailable", "driver", component, operation, errors.Join(domain.ErrRemoteUnavailable, err), nil)
}

func validateEach[T any](v *validator.Validate, items []T, operation string) error {
	for i := range items {
		if err := v.Struct(items[i]); err != nil {
			return apperrors.NewExternalAPIContextError("remote returned an invalid payload", "driver", component, operation, err, map[string]any{"index": i})
		}
	}
	return nil
}
