package sqlite_db

import (
	"context"
	"database/sql"
	"fmt"

	"update-sync/domain"
	"update-sync/utils/errors"
	"update-sync/utils/stream"
)

const topicColumns = "id, name, short_description, long_description, url, image_url"

func scanTopic(row interface{ Scan(...any) error }) (domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(&t.ID, &t.Name, &t.ShortDescription, &t.LongDescription, &t.URL, &t.ImageURL)
	return t, err
}

func (s *SQLiteStore) ObserveTopics() stream.Flow[[]domain.Topic] {
	return stream.Query(s.tracker, []string{tableTopics}, s.GetTopics)
}

func (s *SQLiteStore) ObserveTopic(id string) stream.Flow[domain.Topic] {
	return stream.Query(s.tracker, []string{tableTopics}, func(ctx context.Context) (domain.Topic, error) {
		return s.GetTopic(ctx, id)
	})
}

func (s *SQLiteStore) GetTopics(ctx context.Context) ([]domain.Topic, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+topicColumns+" FROM topics ORDER BY id")
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to query topics", "driver", "SQLiteStore", "GetTopics", err, nil)
	}
	defer rows.Close()

	topics := make([]domain.Topic, 0)
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (s *SQLiteStore) GetTopic(ctx context.Context, id string) (domain.Topic, error) {
	t, err := scanTopic(s.db.QueryRowContext(ctx, "SELECT "+topicColumns+" FROM topics WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return domain.Topic{}, fmt.Errorf("topic %q: %w", id, domain.ErrTopicNotFound)
	}
	if err != nil {
		return domain.Topic{}, errors.NewDatabaseContextError("failed to query topic", "driver", "SQLiteStore", "GetTopic", err, map[string]any{"id": id})
	}
	return t, nil
}

// InsertOrIgnoreTopics inserts topics whose id is not present yet.
func (s *SQLiteStore) InsertOrIgnoreTopics(ctx context.Context, topics []domain.Topic) error {
	if len(topics) == 0 {
		return nil
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		return execTopics(ctx, tx, "INSERT OR IGNORE INTO topics ("+topicColumns+") VALUES (?, ?, ?, ?, ?, ?)", topics)
	}, tableTopics)
	if err != nil {
		return errors.NewDatabaseContextError("failed to insert topics", "driver", "SQLiteStore", "InsertOrIgnoreTopics", err, map[string]any{"count": len(topics)})
	}
	return nil
}

// UpsertTopics inserts topics or updates them in place. Updating in place
// keeps news cross references that point at the topic.
func (s *SQLiteStore) UpsertTopics(ctx context.Context, topics []domain.Topic) error {
	if len(topics) == 0 {
		return nil
	}
	const query = "INSERT INTO topics (" + topicColumns + ") VALUES (?, ?, ?, ?, ?, ?) " +
		"ON CONFLICT(id) DO UPDATE SET name = excluded.name, short_description = excluded.short_description, " +
		"long_description = excluded.long_description, url = excluded.url, image_url = excluded.image_url"
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		return execTopics(ctx, tx, query, topics)
	}, tableTopics)
	if err != nil {
		return errors.NewDatabaseContextError("failed to upsert topics", "driver", "SQLiteStore", "UpsertTopics", err, map[string]any{"count": len(topics)})
	}
	return nil
}

func execTopics(ctx context.Context, tx *sql.Tx, query string, topics []domain.Topic) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, t := range topics {
		if _, err := stmt.ExecContext(ctx, t.ID, t.Name, t.ShortDescription, t.LongDescription, t.URL, t.ImageURL); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) DeleteTopics(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		for _, part := range chunk(ids, maxQueryParams) {
			if _, err := tx.ExecContext(ctx, "DELETE FROM topics WHERE id IN ("+placeholders(len(part))+")", toArgs(part)...); err != nil {
				return err
			}
		}
		return nil
	}, tableTopics, tableNewsResourceTopics)
	if err != nil {
		return errors.NewDatabaseContextError("failed to delete topics", "driver", "SQLiteStore", "DeleteTopics", err, map[string]any{"count": len(ids)})
	}
	return nil
}
