package user_data_gateway

import (
	"context"
	stderrors "errors"
	"testing"

	"update-sync/domain"
	"update-sync/driver/sqlite_db"
	"update-sync/gateway/preferences_gateway"
	"update-sync/utils/errors"
	"update-sync/utils/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) *OfflineFirstUserDataRepository {
	t.Helper()
	store, err := sqlite_db.Open(context.Background(), ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewOfflineFirstUserDataRepository(preferences_gateway.NewDataSource(store, nil), nil)
}

func TestSetFollowedTopicIDs_EmptySetShowsTopicSelectionAgain(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetFollowedTopicIDs(ctx, domain.NewIDSet("t1")))
	require.NoError(t, repo.SetShouldHideTopicSelection(ctx, true))

	u, err := stream.First(ctx, repo.UserData())
	require.NoError(t, err)
	require.True(t, u.ShouldHideTopicSelection)

	require.NoError(t, repo.SetFollowedTopicIDs(ctx, domain.NewIDSet()))

	u, err = stream.First(ctx, repo.UserData())
	require.NoError(t, err)
	assert.False(t, u.ShouldHideTopicSelection)
	assert.Zero(t, u.FollowedTopics.Len())
}

func TestSetTopicIDFollowed_UnfollowingLastTopicResetsFlag(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetTopicIDFollowed(ctx, "t1", true))
	require.NoError(t, repo.SetShouldHideTopicSelection(ctx, true))
	require.NoError(t, repo.SetTopicIDFollowed(ctx, "t1", false))

	u, err := stream.First(ctx, repo.UserData())
	require.NoError(t, err)
	assert.False(t, u.ShouldHideTopicSelection)
}

func TestSetters_PersistAcrossDataSources(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite_db.Open(ctx, ":memory:", nil)
	require.NoError(t, err)
	defer store.Close()

	repo := NewOfflineFirstUserDataRepository(preferences_gateway.NewDataSource(store, nil), nil)
	require.NoError(t, repo.SetNewsResourceBookmarked(ctx, "n1", true))
	require.NoError(t, repo.SetNewsResourceViewed(ctx, "n2", true))
	require.NoError(t, repo.SetThemeBrand(ctx, domain.ThemeBrandAndroid))
	require.NoError(t, repo.SetDarkThemeConfig(ctx, domain.DarkThemeLight))
	require.NoError(t, repo.SetDynamicColorPreference(ctx, true))

	reopened := NewOfflineFirstUserDataRepository(preferences_gateway.NewDataSource(store, nil), nil)
	u, err := stream.First(ctx, reopened.UserData())
	require.NoError(t, err)
	assert.True(t, u.BookmarkedNewsResources.Has("n1"))
	assert.True(t, u.ViewedNewsResources.Has("n2"))
	assert.Equal(t, domain.ThemeBrandAndroid, u.ThemeBrand)
	assert.Equal(t, domain.DarkThemeLight, u.DarkThemeConfig)
	assert.True(t, u.UseDynamicColor)
}

func TestSetters_RejectInvalidInput(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	err := repo.SetTopicIDFollowed(ctx, " ", true)
	assert.True(t, isValidation(err))

	err = repo.SetFollowedTopicIDs(ctx, domain.NewIDSet("ok", ""))
	assert.True(t, isValidation(err))

	err = repo.SetThemeBrand(ctx, "NEON")
	assert.True(t, isValidation(err))
	assert.True(t, stderrors.Is(err, domain.ErrInvalidPreference))

	err = repo.SetDarkThemeConfig(ctx, "DIM")
	assert.True(t, stderrors.Is(err, domain.ErrInvalidPreference))
}

func isValidation(err error) bool {
	appErr, ok := errors.AsAppContextError(err)
	return ok && appErr.Code == errors.CodeValidation
}
