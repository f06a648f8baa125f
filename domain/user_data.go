package domain

// UserData is the user's durable preference record. Values are immutable:
// every With method returns an updated copy.
type UserData struct {
	BookmarkedNewsResources  IDSet           `json:"bookmarkedNewsResources"`
	ViewedNewsResources      IDSet           `json:"viewedNewsResources"`
	FollowedTopics           IDSet           `json:"followedTopics"`
	ThemeBrand               ThemeBrand      `json:"themeBrand"`
	DarkThemeConfig          DarkThemeConfig `json:"darkThemeConfig"`
	UseDynamicColor          bool            `json:"useDynamicColor"`
	ShouldHideTopicSelection bool            `json:"shouldHideTopicSelection"`
}

// DefaultUserData is the record of a user who has not changed anything yet.
func DefaultUserData() UserData {
	return UserData{
		BookmarkedNewsResources: IDSet{},
		ViewedNewsResources:     IDSet{},
		FollowedTopics:          IDSet{},
		ThemeBrand:              ThemeBrandDefault,
		DarkThemeConfig:         DarkThemeFollowSystem,
	}
}

// Normalize fills zero fields left by decoding an older or partial record.
func (u UserData) Normalize() UserData {
	if u.BookmarkedNewsResources == nil {
		u.BookmarkedNewsResources = IDSet{}
	}
	if u.ViewedNewsResources == nil {
		u.ViewedNewsResources = IDSet{}
	}
	if u.FollowedTopics == nil {
		u.FollowedTopics = IDSet{}
	}
	if u.ThemeBrand == "" {
		u.ThemeBrand = ThemeBrandDefault
	}
	if u.DarkThemeConfig == "" {
		u.DarkThemeConfig = DarkThemeFollowSystem
	}
	return u
}

// Equal reports whether both records hold the same values.
func (u UserData) Equal(o UserData) bool {
	return u.ThemeBrand == o.ThemeBrand &&
		u.DarkThemeConfig == o.DarkThemeConfig &&
		u.UseDynamicColor == o.UseDynamicColor &&
		u.ShouldHideTopicSelection == o.ShouldHideTopicSelection &&
		u.FollowedTopics.Equal(o.FollowedTopics) &&
		u.BookmarkedNewsResources.Equal(o.BookmarkedNewsResources) &&
		u.ViewedNewsResources.Equal(o.ViewedNewsResources)
}

// WithFollowedTopics replaces the followed set. Unfollowing every topic brings
// the topic selection back.
func (u UserData) WithFollowedTopics(ids IDSet) UserData {
	u.FollowedTopics = NewIDSet().With(ids.Sorted()...)
	if u.FollowedTopics.Len() == 0 {
		u.ShouldHideTopicSelection = false
	}
	return u
}

func (u UserData) WithTopicFollowed(id string, followed bool) UserData {
	if followed {
		return u.WithFollowedTopics(u.FollowedTopics.With(id))
	}
	return u.WithFollowedTopics(u.FollowedTopics.Without(id))
}

func (u UserData) WithNewsResourceBookmarked(id string, bookmarked bool) UserData {
	if bookmarked {
		u.BookmarkedNewsResources = u.BookmarkedNewsResources.With(id)
	} else {
		u.BookmarkedNewsResources = u.BookmarkedNewsResources.Without(id)
	}
	return u
}

func (u UserData) WithNewsResourcesViewed(ids []string, viewed bool) UserData {
	if viewed {
		u.ViewedNewsResources = u.ViewedNewsResources.With(ids...)
	} else {
		u.ViewedNewsResources = u.ViewedNewsResources.Without(ids...)
	}
	return u
}

func (u UserData) WithThemeBrand(brand ThemeBrand) UserData {
	u.ThemeBrand = brand
	return u
}

func (u UserData) WithDarkThemeConfig(cfg DarkThemeConfig) UserData {
	u.DarkThemeConfig = cfg
	return u
}

func (u UserData) WithDynamicColor(use bool) UserData {
	u.UseDynamicColor = use
	return u
}

func (u UserData) WithShouldHideTopicSelection(hide bool) UserData {
	u.ShouldHideTopicSelection = hide
	return u
}

// UserPreferences is the single persisted record: user data plus the
// change list versions of every synced collection.
type UserPreferences struct {
	UserData           UserData           `json:"userData"`
	ChangeListVersions ChangeListVersions `json:"changeListVersions"`
}

func DefaultUserPreferences() UserPreferences {
	return UserPreferences{UserData: DefaultUserData()}
}
