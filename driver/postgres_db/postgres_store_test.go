package postgres_db

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"update-sync/domain"
	"update-sync/port/local_store_port"
	"update-sync/utils/stream"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresStore(mock, stream.NewInvalidationTracker()), mock
}

func strPtr(s string) *string { return &s }

func TestPostgresStore_GetTopic(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery("SELECT id, name, short_description, long_description, url, image_url FROM topics WHERE id = \\$1").
			WithArgs("t1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "short_description", "long_description", "url", "image_url"}).
				AddRow("t1", "Headlines", "short", "long", "https://t1", "https://t1.png"))

		topic, err := store.GetTopic(context.Background(), "t1")
		require.NoError(t, err)
		assert.Equal(t, "Headlines", topic.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery("FROM topics WHERE id").
			WithArgs("nope").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "short_description", "long_description", "url", "image_url"}))

		_, err := store.GetTopic(context.Background(), "nope")
		assert.ErrorIs(t, err, domain.ErrTopicNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_UpsertTopicsUsesUnnest(t *testing.T) {
	store, mock := newMockStore(t)
	topics := []domain.Topic{
		{ID: "t1", Name: "Headlines"},
		{ID: "t2", Name: "UI"},
	}

	mock.ExpectExec("INSERT INTO topics .* unnest.* ON CONFLICT \\(id\\) DO UPDATE").
		WithArgs([]string{"t1", "t2"}, []string{"Headlines", "UI"}, []string{"", ""}, []string{"", ""}, []string{"", ""}, []string{"", ""}).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	require.NoError(t, store.UpsertTopics(context.Background(), topics))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_InsertOrIgnoreTopics(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO topics .* ON CONFLICT \\(id\\) DO NOTHING").
		WithArgs([]string{"t9"}, []string{""}, []string{""}, []string{""}, []string{""}, []string{""}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.InsertOrIgnoreTopics(context.Background(), []domain.Topic{domain.ShellTopic("t9")}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_EmptyWritesSkipDatabase(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertTopics(ctx, nil))
	require.NoError(t, store.DeleteTopics(ctx, nil))
	require.NoError(t, store.UpsertNewsResources(ctx, nil))
	require.NoError(t, store.InsertOrIgnoreTopicCrossRefs(ctx, nil))
	require.NoError(t, store.DeleteNewsResources(ctx, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteNewsResourcesWrapsErrors(t *testing.T) {
	store, mock := newMockStore(t)
	boom := errors.New("connection reset")
	mock.ExpectExec("DELETE FROM news_resources WHERE id = ANY").
		WithArgs([]string{"n1"}).
		WillReturnError(boom)

	err := store.DeleteNewsResources(context.Background(), []string{"n1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetNewsResources(t *testing.T) {
	store, mock := newMockStore(t)
	published := time.Date(2022, 5, 3, 0, 0, 0, 0, time.UTC)
	filter := local_store_port.NewsResourceFilter{UseFilterTopicIDs: true, FilterTopicIDs: []string{"t1"}}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, title, content, url, header_image_url, publish_date, type\\s+FROM news_resources").
		WithArgs(true, []string{"t1"}, false, []string{}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "content", "url", "header_image_url", "publish_date", "type"}).
			AddRow("n2", "new", "body", "https://n2", strPtr("https://n2.png"), published, "Video").
			AddRow("n1", "old", "body", "https://n1", strPtr(""), published.Add(-48*time.Hour), "Article"))
	mock.ExpectQuery("FROM news_resources_topics nrt").
		WithArgs([]string{"n2", "n1"}).
		WillReturnRows(pgxmock.NewRows([]string{"news_resource_id", "id", "name", "short_description", "long_description", "url", "image_url"}).
			AddRow("n1", "t1", "Headlines", "", "", "", "").
			AddRow("n2", "t1", "Headlines", "", "", "", ""))
	mock.ExpectCommit()

	news, err := store.GetNewsResources(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, news, 2)
	assert.Equal(t, "n2", news[0].ID)
	assert.Equal(t, "https://n2.png", news[0].HeaderImageURL)
	assert.Equal(t, []string{"t1"}, news[0].TopicIDs())
	assert.Equal(t, []string{"t1"}, news[1].TopicIDs())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdatePreferences(t *testing.T) {
	store, mock := newMockStore(t)

	stored := domain.DefaultUserPreferences()
	stored.ChangeListVersions.TopicVersion = 3
	storedJSON, err := json.Marshal(stored)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO user_preferences .* ON CONFLICT \\(id\\) DO NOTHING").
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectQuery("SELECT data FROM user_preferences WHERE id = 1 FOR UPDATE").
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(storedJSON))
	mock.ExpectExec("UPDATE user_preferences SET data").
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	written, err := store.Update(context.Background(), func(p domain.UserPreferences) (domain.UserPreferences, error) {
		p.ChangeListVersions.TopicVersion++
		return p, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, written.ChangeListVersions.TopicVersion)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdatePreferencesTransformErrorRollsBack(t *testing.T) {
	store, mock := newMockStore(t)
	storedJSON, err := json.Marshal(domain.DefaultUserPreferences())
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO user_preferences").
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectQuery("FOR UPDATE").
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(storedJSON))
	mock.ExpectRollback()

	_, err = store.Update(context.Background(), func(p domain.UserPreferences) (domain.UserPreferences, error) {
		return p, domain.ErrInvalidPreference
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPreference)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadDefaultsWhenMissing(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT data FROM user_preferences WHERE id = 1").
		WillReturnRows(pgxmock.NewRows([]string{"data"}))

	prefs, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUserPreferences(), prefs)
	require.NoError(t, mock.ExpectationsWereMet())
}
