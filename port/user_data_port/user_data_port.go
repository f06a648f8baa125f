package user_data_port

//go:generate go run go.uber.org/mock/mockgen -source=user_data_port.go -destination=../../mocks/mock_user_data_port.go -package=mocks

import (
	"context"

	"update-sync/domain"
	"update-sync/utils/stream"
)

// UserDataRepository exposes the user's preferences and their mutations.
// Every setter is durable once it returns nil.
type UserDataRepository interface {
	UserData() stream.Flow[domain.UserData]
	SetFollowedTopicIDs(ctx context.Context, ids domain.IDSet) error
	SetTopicIDFollowed(ctx context.Context, id string, followed bool) error
	SetNewsResourceBookmarked(ctx context.Context, id string, bookmarked bool) error
	SetNewsResourceViewed(ctx context.Context, id string, viewed bool) error
	SetThemeBrand(ctx context.Context, brand domain.ThemeBrand) error
	SetDarkThemeConfig(ctx context.Context, cfg domain.DarkThemeConfig) error
	SetDynamicColorPreference(ctx context.Context, use bool) error
	SetShouldHideTopicSelection(ctx context.Context, hide bool) error
}
