package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserData_FollowedTopicsResetHideTopicSelection(t *testing.T) {
	tests := map[string]struct {
		apply        func(UserData) UserData
		expectHidden bool
	}{
		"clearing followed set shows selection again": {
			apply:        func(u UserData) UserData { return u.WithFollowedTopics(IDSet{}) },
			expectHidden: false,
		},
		"unfollowing last topic shows selection again": {
			apply:        func(u UserData) UserData { return u.WithTopicFollowed("1", false) },
			expectHidden: false,
		},
		"unfollowing one of two keeps selection hidden": {
			apply: func(u UserData) UserData {
				return u.WithTopicFollowed("2", true).WithTopicFollowed("1", false)
			},
			expectHidden: true,
		},
		"following another topic keeps selection hidden": {
			apply:        func(u UserData) UserData { return u.WithTopicFollowed("3", true) },
			expectHidden: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			base := DefaultUserData().
				WithFollowedTopics(NewIDSet("1")).
				WithShouldHideTopicSelection(true)

			got := tc.apply(base)
			assert.Equal(t, tc.expectHidden, got.ShouldHideTopicSelection)
			assert.True(t, base.FollowedTopics.Has("1"), "base record must not be mutated")
			assert.True(t, base.ShouldHideTopicSelection)
		})
	}
}

func TestUserData_WithNewsResourcesViewed(t *testing.T) {
	u := DefaultUserData().WithNewsResourcesViewed([]string{"a", "b"}, true)
	assert.Equal(t, []string{"a", "b"}, u.ViewedNewsResources.Sorted())

	u = u.WithNewsResourcesViewed([]string{"a"}, false)
	assert.Equal(t, []string{"b"}, u.ViewedNewsResources.Sorted())
}

func TestUserData_Bookmark(t *testing.T) {
	u := DefaultUserData().WithNewsResourceBookmarked("n1", true)
	assert.True(t, u.BookmarkedNewsResources.Has("n1"))
	assert.False(t, u.WithNewsResourceBookmarked("n1", false).BookmarkedNewsResources.Has("n1"))
}

func TestUserPreferences_JSONRoundTripKeepsSets(t *testing.T) {
	prefs := DefaultUserPreferences()
	prefs.UserData = prefs.UserData.WithFollowedTopics(NewIDSet("b", "a"))
	prefs.ChangeListVersions.NewsResourceVersion = 9

	raw, err := json.Marshal(prefs)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"followedTopics":["a","b"]`)

	var decoded UserPreferences
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.UserData.FollowedTopics.Equal(NewIDSet("a", "b")))
	assert.Equal(t, 9, decoded.ChangeListVersions.NewsResourceVersion)
}

func TestUserData_NormalizeFillsDefaults(t *testing.T) {
	u := UserData{}.Normalize()
	assert.Equal(t, ThemeBrandDefault, u.ThemeBrand)
	assert.Equal(t, DarkThemeFollowSystem, u.DarkThemeConfig)
	assert.NotNil(t, u.FollowedTopics)
}

func TestParseThemeValues(t *testing.T) {
	brand, err := ParseThemeBrand("ANDROID")
	require.NoError(t, err)
	assert.Equal(t, ThemeBrandAndroid, brand)

	_, err = ParseThemeBrand("PURPLE")
	assert.ErrorIs(t, err, ErrInvalidPreference)

	cfg, err := ParseDarkThemeConfig("DARK")
	require.NoError(t, err)
	assert.Equal(t, DarkThemeDark, cfg)

	_, err = ParseDarkThemeConfig("dim")
	assert.ErrorIs(t, err, ErrInvalidPreference)
}

func TestUserData_Equal(t *testing.T) {
	base := DefaultUserData().WithTopicFollowed("t1", true)

	assert.True(t, base.Equal(DefaultUserData().WithTopicFollowed("t1", true)))
	assert.False(t, base.Equal(base.WithNewsResourceBookmarked("n1", true)))
	assert.False(t, base.Equal(base.WithShouldHideTopicSelection(true)))
	assert.False(t, base.Equal(base.WithThemeBrand(ThemeBrandAndroid)))
}
