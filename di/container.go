package di

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"update-sync/config"
	"update-sync/driver/demo_network"
	"update-sync/driver/nats_bus"
	"update-sync/driver/postgres_db"
	"update-sync/driver/redis_prefs"
	"update-sync/driver/sqlite_db"
	"update-sync/driver/update_api"
	"update-sync/gateway/news_gateway"
	"update-sync/gateway/notifier_gateway"
	"update-sync/gateway/preferences_gateway"
	"update-sync/gateway/topics_gateway"
	"update-sync/gateway/user_data_gateway"
	"update-sync/job"
	"update-sync/port/local_store_port"
	"update-sync/port/notifier_port"
	"update-sync/port/preferences_port"
	"update-sync/port/remote_port"
	"update-sync/port/synchronizer_port"
	"update-sync/usecase/followable_topics_usecase"
	"update-sync/usecase/user_news_usecase"
	"update-sync/utils/logger"
	"update-sync/utils/retry"
	"update-sync/utils/stream"

	"github.com/nats-io/nats.go"
)

// localStore is what both database drivers provide.
type localStore interface {
	local_store_port.TopicStore
	local_store_port.NewsResourceStore
	preferences_port.Store
	Ping(ctx context.Context) error
	Close() error
}

type ApplicationComponents struct {
	Config *config.Config
	Logger *slog.Logger

	PreferencesDataSource   *preferences_gateway.DataSource
	TopicsRepository        *topics_gateway.OfflineFirstTopicsRepository
	NewsRepository          *news_gateway.OfflineFirstNewsRepository
	UserDataRepository      *user_data_gateway.OfflineFirstUserDataRepository
	UserNewsRepository      *user_news_usecase.CompositeUserNewsResourceRepository
	FollowableTopicsUsecase *followable_topics_usecase.GetFollowableTopicsUsecase

	SyncWorker   *job.SyncWorker
	RetryingSync *job.RetryingSync
	SyncManager  *job.SyncManager

	// NatsConn is nil unless NATS is enabled.
	NatsConn *nats.Conn

	pingers []func(ctx context.Context) error
	closers []func() error
}

// NewApplicationComponents opens the configured stores and wires every
// repository, use case and job on top of them.
func NewApplicationComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*ApplicationComponents, error) {
	log = logger.OrDefault(log)
	c := &ApplicationComponents{Config: cfg, Logger: log}

	store, err := openLocalStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, store.Close)
	c.pingers = append(c.pingers, store.Ping)

	var prefsStore preferences_port.Store = store
	if cfg.Preferences.Backend == config.PreferencesBackendRedis {
		redisStore, err := redis_prefs.NewRedisPreferencesStoreWithURL(cfg.Preferences.RedisURL, cfg.Preferences.Key)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("open redis preferences: %w", err)
		}
		c.closers = append(c.closers, redisStore.Close)
		c.pingers = append(c.pingers, redisStore.Ping)
		prefsStore = redisStore
	}

	remote, err := newRemote(cfg.Remote, log)
	if err != nil {
		c.Close()
		return nil, err
	}

	notifiers := []notifier_port.Notifier{notifier_gateway.NewLogNotifier(log)}
	if cfg.NATS.Enabled {
		nc, err := nats_bus.Connect(cfg.NATS.URL, cfg.OTel.ServiceName, log)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("connect nats: %w", err)
		}
		c.NatsConn = nc
		c.closers = append(c.closers, func() error { nc.Close(); return nil })
		notifiers = append(notifiers, nats_bus.NewNotifier(nc, cfg.NATS.NotifySubject, log))
	}

	c.PreferencesDataSource = preferences_gateway.NewDataSource(prefsStore, log)
	c.TopicsRepository = topics_gateway.NewOfflineFirstTopicsRepository(store, remote, log)
	c.NewsRepository = news_gateway.NewOfflineFirstNewsRepository(store, remote, c.PreferencesDataSource, notifier_gateway.NewFanout(notifiers...), log)
	c.UserDataRepository = user_data_gateway.NewOfflineFirstUserDataRepository(c.PreferencesDataSource, log)
	c.UserNewsRepository = user_news_usecase.NewCompositeUserNewsResourceRepository(c.NewsRepository, c.UserDataRepository)
	c.FollowableTopicsUsecase = followable_topics_usecase.NewGetFollowableTopicsUsecase(c.TopicsRepository, c.UserDataRepository)

	c.SyncWorker = job.NewSyncWorker(c.PreferencesDataSource, map[string]synchronizer_port.Syncable{
		"topics": c.TopicsRepository,
		"news":   c.NewsRepository,
	}, log)
	c.RetryingSync = job.NewRetryingSync(c.SyncWorker, retry.RetryConfig{
		MaxAttempts:   cfg.Sync.MaxAttempts,
		BaseDelay:     cfg.Sync.BaseDelay,
		MaxDelay:      cfg.Sync.MaxDelay,
		BackoffFactor: 2.0,
		JitterFactor:  0.2,
	}, log)
	c.SyncManager = job.NewSyncManager(c.RetryingSync.Run, log)

	return c, nil
}

func openLocalStore(ctx context.Context, cfg config.StoreConfig) (localStore, error) {
	tracker := stream.NewInvalidationTracker()
	switch cfg.Driver {
	case config.StoreDriverPostgres:
		store, err := postgres_db.Connect(ctx, cfg.DatabaseURL, cfg.MaxConnections, tracker)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return store, nil
	default:
		store, err := sqlite_db.Open(ctx, cfg.SQLitePath, tracker)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	}
}

func newRemote(cfg config.RemoteConfig, log *slog.Logger) (remote_port.RemoteDataSource, error) {
	if cfg.Mode != config.RemoteModeHTTP {
		return demo_network.NewDataSource(), nil
	}
	client, err := update_api.NewClient(update_api.Options{
		BaseURL:        cfg.BaseURL,
		Timeout:        cfg.Timeout,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Logger:         log,
	})
	if err != nil {
		return nil, fmt.Errorf("create remote client: %w", err)
	}
	return client, nil
}

// Ping checks every backing store.
func (c *ApplicationComponents) Ping(ctx context.Context) error {
	for _, ping := range c.pingers {
		if err := ping(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases resources in reverse order of acquisition.
func (c *ApplicationComponents) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
