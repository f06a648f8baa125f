// Package sqlite_db is the local offline store backed by SQLite.
package sqlite_db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"update-sync/utils/stream"

	_ "modernc.org/sqlite"
)

const (
	tableTopics             = "topics"
	tableNewsResources      = "news_resources"
	tableNewsResourceTopics = "news_resources_topics"
	tableUserPreferences    = "user_preferences"

	// maxQueryParams keeps IN lists well under SQLite's variable limit.
	maxQueryParams = 500
)

// SQLiteStore implements the topic, news and preference stores on one
// database. Writes invalidate tables in the shared tracker so observing
// queries re-run.
type SQLiteStore struct {
	db      *sql.DB
	tracker *stream.InvalidationTracker
	prefsMu sync.Mutex
}

// Open opens or creates the database at path (":memory:" for a private
// in-memory database) and applies the schema.
func Open(ctx context.Context, path string, tracker *stream.InvalidationTracker) (*SQLiteStore, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&"
	} else {
		dsn += "?"
	}
	dsn += "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one connection serializes writers and keeps :memory: databases alive
	db.SetMaxOpenConns(1)

	if path != ":memory:" {
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
			db.Close()
			return nil, fmt.Errorf("set wal mode: %w", err)
		}
	}

	if tracker == nil {
		tracker = stream.NewInvalidationTracker()
	}
	s := &SQLiteStore{db: db, tracker: tracker}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	schema := `
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
		publish_date INTEGER NOT NULL,
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
		data TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// inTx runs fn in a transaction and invalidates tables after commit.
func (s *SQLiteStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error, tables ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.tracker.Invalidate(tables...)
	return nil
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}

func toArgs(ids []string) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func chunk(ids []string, size int) [][]string {
	var out [][]string
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		out = append(out, ids[start:end])
	}
	return out
}
