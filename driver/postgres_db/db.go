// Package postgres_db mirrors the local store on PostgreSQL for server-side
// deployments that share one database between processes.
package postgres_db

import (
	"context"
	"fmt"
	"log/slog"

	"update-sync/utils/stream"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	tableTopics             = "topics"
	tableNewsResources      = "news_resources"
	tableNewsResourceTopics = "news_resources_topics"
	tableUserPreferences    = "user_preferences"
)

// PgxIface is the subset of *pgxpool.Pool the store uses.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements the topic, news and preference stores. Observing
// queries re-run after writes made through this store.
type PostgresStore struct {
	pool    PgxIface
	tracker *stream.InvalidationTracker
}

func NewPostgresStore(pool PgxIface, tracker *stream.InvalidationTracker) *PostgresStore {
	if tracker == nil {
		tracker = stream.NewInvalidationTracker()
	}
	return &PostgresStore{pool: pool, tracker: tracker}
}

// Connect opens a pool, verifies it and applies the schema.
func Connect(ctx context.Context, databaseURL string, maxConns int, tracker *stream.InvalidationTracker) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = int32(maxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := NewPostgresStore(pool, tracker)
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.InfoContext(ctx, "Connected to database", "host", cfg.ConnConfig.Host, "database", cfg.ConnConfig.Database)
	return s, nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS topics (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		short_description TEXT NOT NULL DEFAULT '',
		long_description TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS news_resources (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		url TEXT NOT NULL,
		header_image_url TEXT,
		publish_date TIMESTAMPTZ NOT NULL,
		type TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS news_resources_topics (
		news_resource_id TEXT NOT NULL REFERENCES news_resources(id) ON DELETE CASCADE,
		topic_id TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
		PRIMARY KEY (news_resource_id, topic_id)
	);
	CREATE INDEX IF NOT EXISTS idx_news_resources_topics_topic_id ON news_resources_topics(topic_id);
	CREATE INDEX IF NOT EXISTS idx_news_resources_publish_date ON news_resources(publish_date DESC);
	CREATE TABLE IF NOT EXISTS user_preferences (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schema)
	return err
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// exec runs one statement and invalidates tables on success.
func (s *PostgresStore) exec(ctx context.Context, sql string, args []any, tables ...string) error {
	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return err
	}
	s.tracker.Invalidate(tables...)
	return nil
}
