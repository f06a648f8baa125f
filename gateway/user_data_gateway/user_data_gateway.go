package user_data_gateway

import (
	"context"
	"log/slog"
	"strings"

	"update-sync/domain"
	"update-sync/gateway/preferences_gateway"
	"update-sync/utils/errors"
	"update-sync/utils/logger"
	"update-sync/utils/stream"
)

// OfflineFirstUserDataRepository implements user_data_port.UserDataRepository
// on top of the preferences data source, rejecting malformed input and
// logging each change.
type OfflineFirstUserDataRepository struct {
	source *preferences_gateway.DataSource
	logger *slog.Logger
}

func NewOfflineFirstUserDataRepository(source *preferences_gateway.DataSource, log *slog.Logger) *OfflineFirstUserDataRepository {
	return &OfflineFirstUserDataRepository{source: source, logger: logger.OrDefault(log)}
}

func (r *OfflineFirstUserDataRepository) UserData() stream.Flow[domain.UserData] {
	return r.source.UserData()
}

func requireID(operation, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewValidationContextError("id must not be empty", "gateway", "OfflineFirstUserDataRepository", operation, nil)
	}
	return nil
}

func (r *OfflineFirstUserDataRepository) SetFollowedTopicIDs(ctx context.Context, ids domain.IDSet) error {
	for id := range ids {
		if err := requireID("SetFollowedTopicIDs", id); err != nil {
			return err
		}
	}
	if err := r.source.SetFollowedTopicIDs(ctx, ids); err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "followed topics replaced", "count", ids.Len())
	return nil
}

func (r *OfflineFirstUserDataRepository) SetTopicIDFollowed(ctx context.Context, id string, followed bool) error {
	if err := requireID("SetTopicIDFollowed", id); err != nil {
		return err
	}
	if err := r.source.SetTopicIDFollowed(ctx, id, followed); err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "topic follow changed", "topic_id", id, "followed", followed)
	return nil
}

func (r *OfflineFirstUserDataRepository) SetNewsResourceBookmarked(ctx context.Context, id string, bookmarked bool) error {
	if err := requireID("SetNewsResourceBookmarked", id); err != nil {
		return err
	}
	if err := r.source.SetNewsResourceBookmarked(ctx, id, bookmarked); err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "news bookmark changed", "news_id", id, "bookmarked", bookmarked)
	return nil
}

func (r *OfflineFirstUserDataRepository) SetNewsResourceViewed(ctx context.Context, id string, viewed bool) error {
	if err := requireID("SetNewsResourceViewed", id); err != nil {
		return err
	}
	return r.source.SetNewsResourceViewed(ctx, id, viewed)
}

func (r *OfflineFirstUserDataRepository) SetThemeBrand(ctx context.Context, brand domain.ThemeBrand) error {
	if _, err := domain.ParseThemeBrand(string(brand)); err != nil {
		return errors.NewAppContextError(errors.CodeValidation, "invalid theme brand", "gateway", "OfflineFirstUserDataRepository", "SetThemeBrand", err, nil)
	}
	return r.source.SetThemeBrand(ctx, brand)
}

func (r *OfflineFirstUserDataRepository) SetDarkThemeConfig(ctx context.Context, cfg domain.DarkThemeConfig) error {
	if _, err := domain.ParseDarkThemeConfig(string(cfg)); err != nil {
		return errors.NewAppContextError(errors.CodeValidation, "invalid dark theme config", "gateway", "OfflineFirstUserDataRepository", "SetDarkThemeConfig", err, nil)
	}
	return r.source.SetDarkThemeConfig(ctx, cfg)
}

func (r *OfflineFirstUserDataRepository) SetDynamicColorPreference(ctx context.Context, use bool) error {
	return r.source.SetDynamicColorPreference(ctx, use)
}

func (r *OfflineFirstUserDataRepository) SetShouldHideTopicSelection(ctx context.Context, hide bool) error {
	return r.source.SetShouldHideTopicSelection(ctx, hide)
}
