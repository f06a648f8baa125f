package postgres_db

import (
	"context"
	"errors"
	"fmt"

	"update-sync/domain"
	apperrors "update-sync/utils/errors"
	"update-sync/utils/stream"

	"github.com/jackc/pgx/v5"
)

const (
	selectTopicsQuery = `SELECT id, name, short_description, long_description, url, image_url FROM topics ORDER BY id`
	selectTopicQuery  = `SELECT id, name, short_description, long_description, url, image_url FROM topics WHERE id = $1`

	insertOrIgnoreTopicsQuery = `
		INSERT INTO topics (id, name, short_description, long_description, url, image_url)
		SELECT * FROM unnest($1::text[], $2::text[], $3::text[], $4::text[], $5::text[], $6::text[])
		ON CONFLICT (id) DO NOTHING`

	upsertTopicsQuery = `
		INSERT INTO topics (id, name, short_description, long_description, url, image_url)
		SELECT * FROM unnest($1::text[], $2::text[], $3::text[], $4::text[], $5::text[], $6::text[])
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			short_description = EXCLUDED.short_description,
			long_description = EXCLUDED.long_description,
			url = EXCLUDED.url,
			image_url = EXCLUDED.image_url`

	deleteTopicsQuery = `DELETE FROM topics WHERE id = ANY($1)`
)

func (s *PostgresStore) ObserveTopics() stream.Flow[[]domain.Topic] {
	return stream.Query(s.tracker, []string{tableTopics}, s.GetTopics)
}

func (s *PostgresStore) ObserveTopic(id string) stream.Flow[domain.Topic] {
	return stream.Query(s.tracker, []string{tableTopics}, func(ctx context.Context) (domain.Topic, error) {
		return s.GetTopic(ctx, id)
	})
}

func (s *PostgresStore) GetTopics(ctx context.Context) ([]domain.Topic, error) {
	rows, err := s.pool.Query(ctx, selectTopicsQuery)
	if err != nil {
		return nil, apperrors.NewDatabaseContextError("failed to query topics", "driver", "PostgresStore", "GetTopics", err, nil)
	}
	defer rows.Close()

	topics := make([]domain.Topic, 0)
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.ShortDescription, &t.LongDescription, &t.URL, &t.ImageURL); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (s *PostgresStore) GetTopic(ctx context.Context, id string) (domain.Topic, error) {
	var t domain.Topic
	err := s.pool.QueryRow(ctx, selectTopicQuery, id).Scan(&t.ID, &t.Name, &t.ShortDescription, &t.LongDescription, &t.URL, &t.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Topic{}, fmt.Errorf("topic %q: %w", id, domain.ErrTopicNotFound)
	}
	if err != nil {
		return domain.Topic{}, apperrors.NewDatabaseContextError("failed to query topic", "driver", "PostgresStore", "GetTopic", err, map[string]any{"id": id})
	}
	return t, nil
}

func topicColumns(topics []domain.Topic) []any {
	ids := make([]string, len(topics))
	names := make([]string, len(topics))
	shorts := make([]string, len(topics))
	longs := make([]string, len(topics))
	urls := make([]string, len(topics))
	images := make([]string, len(topics))
	for i, t := range topics {
		ids[i], names[i], shorts[i], longs[i], urls[i], images[i] = t.ID, t.Name, t.ShortDescription, t.LongDescription, t.URL, t.ImageURL
	}
	return []any{ids, names, shorts, longs, urls, images}
}

func (s *PostgresStore) InsertOrIgnoreTopics(ctx context.Context, topics []domain.Topic) error {
	if len(topics) == 0 {
		return nil
	}
	if err := s.exec(ctx, insertOrIgnoreTopicsQuery, topicColumns(topics), tableTopics); err != nil {
		return apperrors.NewDatabaseContextError("failed to insert topics", "driver", "PostgresStore", "InsertOrIgnoreTopics", err, map[string]any{"count": len(topics)})
	}
	return nil
}

func (s *PostgresStore) UpsertTopics(ctx context.Context, topics []domain.Topic) error {
	if len(topics) == 0 {
		return nil
	}
	if err := s.exec(ctx, upsertTopicsQuery, topicColumns(topics), tableTopics); err != nil {
		return apperrors.NewDatabaseContextError("failed to upsert topics", "driver", "PostgresStore", "UpsertTopics", err, map[string]any{"count": len(topics)})
	}
	return nil
}

func (s *PostgresStore) DeleteTopics(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.exec(ctx, deleteTopicsQuery, []any{ids}, tableTopics, tableNewsResourceTopics); err != nil {
		return apperrors.NewDatabaseContextError("failed to delete topics", "driver", "PostgresStore", "DeleteTopics", err, map[string]any{"count": len(ids)})
	}
	return nil
}
