// Package preferences_gateway exposes the durable preferences record as a
// reactive user data stream plus atomic setters, and backs the sync cursor.
package preferences_gateway

import (
	"context"
	"log/slog"
	"sync"

	"update-sync/domain"
	"update-sync/port/preferences_port"
	"update-sync/utils/logger"
	"update-sync/utils/stream"
)

// DataSource implements synchronizer_port.Synchronizer over a preferences
// store and publishes every written UserData to its subscribers.
type DataSource struct {
	store  preferences_port.Store
	logger *slog.Logger

	// writeMu orders store reads and writes with signal updates so
	// subscribers never observe an older record after a newer one.
	writeMu  sync.Mutex
	userData *stream.Signal[domain.UserData]
}

func NewDataSource(store preferences_port.Store, log *slog.Logger) *DataSource {
	return &DataSource{
		store:    store,
		logger:   logger.OrDefault(log),
		userData: stream.NewSignal[domain.UserData](),
	}
}

// UserData replays the latest record and follows every subsequent write.
// The record is loaded from the store on first use.
func (d *DataSource) UserData() stream.Flow[domain.UserData] {
	return func(ctx context.Context, emit func(domain.UserData) error) error {
		if err := d.ensureLoaded(ctx); err != nil {
			return err
		}
		return d.userData.Flow()(ctx, emit)
	}
}

// Current reads the durable record. Other processes may share the store, so
// the cache is never trusted here; a changed record is republished.
func (d *DataSource) Current(ctx context.Context) (domain.UserData, error) {
	return d.Refresh(ctx)
}

// Refresh loads the record and publishes it when it differs from the one
// subscribers last saw. Polling it brings outside writes into UserData.
func (d *DataSource) Refresh(ctx context.Context) (domain.UserData, error) {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	prefs, err := d.store.Load(ctx)
	if err != nil {
		return domain.UserData{}, err
	}
	u := prefs.UserData.Normalize()
	if cached, ok := d.userData.Value(); !ok || !cached.Equal(u) {
		d.logger.DebugContext(ctx, "user data changed in store")
		d.userData.Set(u)
	}
	return u, nil
}

func (d *DataSource) ensureLoaded(ctx context.Context) error {
	if _, ok := d.userData.Value(); ok {
		return nil
	}
	_, err := d.Refresh(ctx)
	return err
}

func (d *DataSource) publish(u domain.UserData) {
	d.userData.Set(u.Normalize())
}

func (d *DataSource) updateUserData(ctx context.Context, change func(domain.UserData) domain.UserData) error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	written, err := d.store.Update(ctx, func(p domain.UserPreferences) (domain.UserPreferences, error) {
		p.UserData = change(p.UserData.Normalize())
		return p, nil
	})
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to update user data", "error", err)
		return err
	}
	d.publish(written.UserData)
	return nil
}

func (d *DataSource) SetFollowedTopicIDs(ctx context.Context, ids domain.IDSet) error {
	return d.updateUserData(ctx, func(u domain.UserData) domain.UserData {
		return u.WithFollowedTopics(ids)
	})
}

func (d *DataSource) SetTopicIDFollowed(ctx context.Context, id string, followed bool) error {
	return d.updateUserData(ctx, func(u domain.UserData) domain.UserData {
		return u.WithTopicFollowed(id, followed)
	})
}

func (d *DataSource) SetNewsResourceBookmarked(ctx context.Context, id string, bookmarked bool) error {
	return d.updateUserData(ctx, func(u domain.UserData) domain.UserData {
		return u.WithNewsResourceBookmarked(id, bookmarked)
	})
}

func (d *DataSource) SetNewsResourceViewed(ctx context.Context, id string, viewed bool) error {
	return d.SetNewsResourcesViewed(ctx, []string{id}, viewed)
}

func (d *DataSource) SetNewsResourcesViewed(ctx context.Context, ids []string, viewed bool) error {
	if len(ids) == 0 {
		return nil
	}
	return d.updateUserData(ctx, func(u domain.UserData) domain.UserData {
		return u.WithNewsResourcesViewed(ids, viewed)
	})
}

func (d *DataSource) SetThemeBrand(ctx context.Context, brand domain.ThemeBrand) error {
	return d.updateUserData(ctx, func(u domain.UserData) domain.UserData {
		return u.WithThemeBrand(brand)
	})
}

func (d *DataSource) SetDarkThemeConfig(ctx context.Context, cfg domain.DarkThemeConfig) error {
	return d.updateUserData(ctx, func(u domain.UserData) domain.UserData {
		return u.WithDarkThemeConfig(cfg)
	})
}

func (d *DataSource) SetDynamicColorPreference(ctx context.Context, use bool) error {
	return d.updateUserData(ctx, func(u domain.UserData) domain.UserData {
		return u.WithDynamicColor(use)
	})
}

func (d *DataSource) SetShouldHideTopicSelection(ctx context.Context, hide bool) error {
	return d.updateUserData(ctx, func(u domain.UserData) domain.UserData {
		return u.WithShouldHideTopicSelection(hide)
	})
}

func (d *DataSource) GetChangeListVersions(ctx context.Context) (domain.ChangeListVersions, error) {
	prefs, err := d.store.Load(ctx)
	if err != nil {
		return domain.ChangeListVersions{}, err
	}
	return prefs.ChangeListVersions, nil
}

// UpdateChangeListVersions rewrites the cursors in one store transaction. The
// user data half of the record is carried through untouched.
func (d *DataSource) UpdateChangeListVersions(ctx context.Context, update func(domain.ChangeListVersions) domain.ChangeListVersions) error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	_, err := d.store.Update(ctx, func(p domain.UserPreferences) (domain.UserPreferences, error) {
		p.ChangeListVersions = update(p.ChangeListVersions)
		return p, nil
	})
	return err
}
