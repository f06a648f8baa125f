package rest

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"update-sync/config"
	"update-sync/di"
	"update-sync/domain"
	"update-sync/job"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *di.ApplicationComponents) {
	t.Helper()
	ctx := context.Background()
	cfg := &config.Config{
		Server:      config.ServerConfig{SSEInterval: time.Hour},
		Store:       config.StoreConfig{Driver: config.StoreDriverSQLite, SQLitePath: ":memory:"},
		Preferences: config.PreferencesConfig{Backend: config.PreferencesBackendStore},
		Remote:      config.RemoteConfig{Mode: config.RemoteModeDemo},
		Sync:        config.SyncConfig{MaxAttempts: 1},
	}
	container, err := di.NewApplicationComponents(ctx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { container.Close() })
	require.Equal(t, job.ResultSuccess, container.SyncWorker.DoWork(ctx))

	e := echo.New()
	RegisterRoutes(e, container, cfg)
	return e, container
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestTopics(t *testing.T) {
	e, _ := newTestServer(t)

	t.Run("list sorted by name", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/v1/topics?sort=name", "")
		require.Equal(t, http.StatusOK, rec.Code)
		topics := decode[[]domain.FollowableTopic](t, rec)
		require.Len(t, topics, 10)
		for i := 1; i < len(topics); i++ {
			assert.LessOrEqual(t, topics[i-1].Topic.Name, topics[i].Topic.Name)
		}
	})

	t.Run("invalid sort", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/v1/topics?sort=date", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("single topic", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/v1/topics/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Headlines", decode[domain.Topic](t, rec).Name)
	})

	t.Run("unknown topic", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/v1/topics/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestFollowAndFollowedFeed(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/v1/news/followed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]domain.UserNewsResource](t, rec))

	rec = do(t, e, http.MethodPut, "/v1/topics/1/follow", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodGet, "/v1/news/followed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	news := decode[[]domain.UserNewsResource](t, rec)
	ids := make([]string, 0, len(news))
	for _, n := range news {
		ids = append(ids, n.ID)
	}
	assert.ElementsMatch(t, []string{"1", "5", "15", "20"}, ids)

	rec = do(t, e, http.MethodPut, "/v1/topics/followed", `{"ids":["2","3"]}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	prefs := decode[domain.UserData](t, do(t, e, http.MethodGet, "/v1/preferences", ""))
	assert.ElementsMatch(t, []string{"2", "3"}, prefs.FollowedTopics.Sorted())

	rec = do(t, e, http.MethodDelete, "/v1/topics/2/follow", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	prefs = decode[domain.UserData](t, do(t, e, http.MethodGet, "/v1/preferences", ""))
	assert.Equal(t, []string{"3"}, prefs.FollowedTopics.Sorted())
}

func TestNewsQueryAndBookmarks(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/v1/news?newsId=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	news := decode[[]domain.UserNewsResource](t, rec)
	require.Len(t, news, 1)
	assert.Equal(t, "Animating between layouts", news[0].Title)
	// the first sync marks everything viewed
	assert.True(t, news[0].HasBeenViewed)

	rec = do(t, e, http.MethodGet, "/v1/news?topicId=3&newsId=1,2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	news = decode[[]domain.UserNewsResource](t, rec)
	require.Len(t, news, 1)
	assert.Equal(t, "1", news[0].ID)

	require.Equal(t, http.StatusNoContent, do(t, e, http.MethodPut, "/v1/news/2/bookmark", "").Code)
	require.Equal(t, http.StatusNoContent, do(t, e, http.MethodDelete, "/v1/news/2/viewed", "").Code)

	rec = do(t, e, http.MethodGet, "/v1/news/bookmarked", "")
	require.Equal(t, http.StatusOK, rec.Code)
	news = decode[[]domain.UserNewsResource](t, rec)
	require.Len(t, news, 1)
	assert.True(t, news[0].IsSaved)
	assert.False(t, news[0].HasBeenViewed)

	require.Equal(t, http.StatusNoContent, do(t, e, http.MethodDelete, "/v1/news/2/bookmark", "").Code)
	rec = do(t, e, http.MethodGet, "/v1/news/bookmarked", "")
	assert.Empty(t, decode[[]domain.UserNewsResource](t, rec))
}

func TestPatchPreferences(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodPatch, "/v1/preferences", `{"themeBrand":"PURPLE"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodPatch, "/v1/preferences", `{"themeBrand":"ANDROID","darkThemeConfig":"DARK","useDynamicColor":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode[domain.UserData](t, rec)
	assert.Equal(t, domain.ThemeBrandAndroid, data.ThemeBrand)
	assert.Equal(t, domain.DarkThemeDark, data.DarkThemeConfig)
	assert.True(t, data.UseDynamicColor)
	assert.False(t, data.ShouldHideTopicSelection)
}

func TestSyncEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/v1/sync/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[SyncStatusResponse](t, rec)
	assert.False(t, status.Syncing)
	assert.Equal(t, domain.ChangeListVersions{TopicVersion: 10, NewsResourceVersion: 20}, status.Versions)

	rec = do(t, e, http.MethodPost, "/v1/sync", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"queued":true}`, rec.Body.String())

	// nothing drains the queue in this test
	rec = do(t, e, http.MethodPost, "/v1/sync", "")
	assert.JSONEq(t, `{"queued":false}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "updatesync_sync_pass_total")
}

func TestFollowedNewsStream(t *testing.T) {
	e, _ := newTestServer(t)
	server := httptest.NewServer(e)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/v1/news/followed/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	next := func() []domain.UserNewsResource {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if data, ok := strings.CutPrefix(line, "data: "); ok {
				var news []domain.UserNewsResource
				require.NoError(t, json.Unmarshal([]byte(data), &news))
				return news
			}
		}
	}

	assert.Empty(t, next())

	followReq, err := http.NewRequest(http.MethodPut, server.URL+"/v1/topics/1/follow", nil)
	require.NoError(t, err)
	followResp, err := http.DefaultClient.Do(followReq)
	require.NoError(t, err)
	followResp.Body.Close()
	require.Equal(t, http.StatusNoContent, followResp.StatusCode)

	for {
		if news := next(); len(news) == 4 {
			for _, n := range news {
				followed := false
				for _, topic := range n.FollowableTopics {
					followed = followed || (topic.Topic.ID == "1" && topic.IsFollowed)
				}
				assert.True(t, followed, "news %s", n.ID)
			}
			return
		}
	}
}
