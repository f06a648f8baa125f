package postgres_db

import (
	"context"
	"fmt"
	"time"

	"update-sync/domain"
	"update-sync/port/local_store_port"
	apperrors "update-sync/utils/errors"
	"update-sync/utils/stream"

	"github.com/jackc/pgx/v5"
)

const (
	newsFilter = `
		WHERE ($1::boolean = false OR id IN (SELECT news_resource_id FROM news_resources_topics WHERE topic_id = ANY($2::text[])))
		  AND ($3::boolean = false OR id = ANY($4::text[]))`

	selectNewsQuery = `
		SELECT id, title, content, url, header_image_url, publish_date, type
		FROM news_resources` + newsFilter + `
		ORDER BY publish_date DESC, id`

	selectNewsIDsQuery = `SELECT id FROM news_resources` + newsFilter + ` ORDER BY publish_date DESC, id`

	selectNewsTopicsQuery = `
		SELECT nrt.news_resource_id, t.id, t.name, t.short_description, t.long_description, t.url, t.image_url
		FROM news_resources_topics nrt
		JOIN topics t ON t.id = nrt.topic_id
		WHERE nrt.news_resource_id = ANY($1::text[])
		ORDER BY t.id`

	upsertNewsQuery = `
		INSERT INTO news_resources (id, title, content, url, header_image_url, publish_date, type)
		SELECT * FROM unnest($1::text[], $2::text[], $3::text[], $4::text[], $5::text[], $6::timestamptz[], $7::text[])
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			url = EXCLUDED.url,
			header_image_url = EXCLUDED.header_image_url,
			publish_date = EXCLUDED.publish_date,
			type = EXCLUDED.type`

	insertCrossRefsQuery = `
		INSERT INTO news_resources_topics (news_resource_id, topic_id)
		SELECT * FROM unnest($1::text[], $2::text[])
		ON CONFLICT DO NOTHING`

	deleteNewsQuery = `DELETE FROM news_resources WHERE id = ANY($1)`
)

func filterArgs(filter local_store_port.NewsResourceFilter) []any {
	topicIDs := filter.FilterTopicIDs
	if topicIDs == nil {
		topicIDs = []string{}
	}
	newsIDs := filter.FilterNewsIDs
	if newsIDs == nil {
		newsIDs = []string{}
	}
	return []any{filter.UseFilterTopicIDs, topicIDs, filter.UseFilterNewsIDs, newsIDs}
}

func (s *PostgresStore) ObserveNewsResources(filter local_store_port.NewsResourceFilter) stream.Flow[[]domain.NewsResource] {
	tables := []string{tableNewsResources, tableNewsResourceTopics, tableTopics}
	return stream.Query(s.tracker, tables, func(ctx context.Context) ([]domain.NewsResource, error) {
		return s.GetNewsResources(ctx, filter)
	})
}

func (s *PostgresStore) GetNewsResources(ctx context.Context, filter local_store_port.NewsResourceFilter) ([]domain.NewsResource, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseContextError("failed to begin read", "driver", "PostgresStore", "GetNewsResources", err, nil)
	}
	defer tx.Rollback(ctx)

	news, err := queryNews(ctx, tx, filter)
	if err != nil {
		return nil, apperrors.NewDatabaseContextError("failed to query news resources", "driver", "PostgresStore", "GetNewsResources", err, nil)
	}
	if err := attachTopics(ctx, tx, news); err != nil {
		return nil, apperrors.NewDatabaseContextError("failed to query news topics", "driver", "PostgresStore", "GetNewsResources", err, nil)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit read: %w", err)
	}
	return news, nil
}

func queryNews(ctx context.Context, tx pgx.Tx, filter local_store_port.NewsResourceFilter) ([]domain.NewsResource, error) {
	rows, err := tx.Query(ctx, selectNewsQuery, filterArgs(filter)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	news := make([]domain.NewsResource, 0)
	for rows.Next() {
		var (
			n      domain.NewsResource
			header *string
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.URL, &header, &n.PublishDate, &n.Type); err != nil {
			return nil, fmt.Errorf("scan news resource: %w", err)
		}
		if header != nil {
			n.HeaderImageURL = *header
		}
		n.PublishDate = n.PublishDate.UTC()
		n.Topics = []domain.Topic{}
		news = append(news, n)
	}
	return news, rows.Err()
}

func attachTopics(ctx context.Context, tx pgx.Tx, news []domain.NewsResource) error {
	if len(news) == 0 {
		return nil
	}
	index := make(map[string]int, len(news))
	ids := make([]string, len(news))
	for i, n := range news {
		index[n.ID] = i
		ids[i] = n.ID
	}

	rows, err := tx.Query(ctx, selectNewsTopicsQuery, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var newsID string
		var t domain.Topic
		if err := rows.Scan(&newsID, &t.ID, &t.Name, &t.ShortDescription, &t.LongDescription, &t.URL, &t.ImageURL); err != nil {
			return fmt.Errorf("scan news topic: %w", err)
		}
		if i, ok := index[newsID]; ok {
			news[i].Topics = append(news[i].Topics, t)
		}
	}
	return rows.Err()
}

func (s *PostgresStore) GetNewsResourceIDs(ctx context.Context, filter local_store_port.NewsResourceFilter) ([]string, error) {
	rows, err := s.pool.Query(ctx, selectNewsIDsQuery, filterArgs(filter)...)
	if err != nil {
		return nil, apperrors.NewDatabaseContextError("failed to query news resource ids", "driver", "PostgresStore", "GetNewsResourceIDs", err, nil)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan news resource id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *PostgresStore) UpsertNewsResources(ctx context.Context, resources []domain.NewsResource) error {
	if len(resources) == 0 {
		return nil
	}
	ids := make([]string, len(resources))
	titles := make([]string, len(resources))
	contents := make([]string, len(resources))
	urls := make([]string, len(resources))
	headers := make([]*string, len(resources))
	dates := make([]time.Time, len(resources))
	types := make([]string, len(resources))
	for i, n := range resources {
		ids[i], titles[i], contents[i], urls[i], dates[i], types[i] = n.ID, n.Title, n.Content, n.URL, n.PublishDate, n.Type
		if n.HeaderImageURL != "" {
			header := n.HeaderImageURL
			headers[i] = &header
		}
	}

	args := []any{ids, titles, contents, urls, headers, dates, types}
	if err := s.exec(ctx, upsertNewsQuery, args, tableNewsResources); err != nil {
		return apperrors.NewDatabaseContextError("failed to upsert news resources", "driver", "PostgresStore", "UpsertNewsResources", err, map[string]any{"count": len(resources)})
	}
	return nil
}

func (s *PostgresStore) InsertOrIgnoreTopicCrossRefs(ctx context.Context, refs []domain.NewsResourceTopicCrossRef) error {
	if len(refs) == 0 {
		return nil
	}
	newsIDs := make([]string, len(refs))
	topicIDs := make([]string, len(refs))
	for i, ref := range refs {
		newsIDs[i], topicIDs[i] = ref.NewsResourceID, ref.TopicID
	}
	if err := s.exec(ctx, insertCrossRefsQuery, []any{newsIDs, topicIDs}, tableNewsResourceTopics); err != nil {
		return apperrors.NewDatabaseContextError("failed to insert topic cross references", "driver", "PostgresStore", "InsertOrIgnoreTopicCrossRefs", err, map[string]any{"count": len(refs)})
	}
	return nil
}

func (s *PostgresStore) DeleteNewsResources(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.exec(ctx, deleteNewsQuery, []any{ids}, tableNewsResources, tableNewsResourceTopics); err != nil {
		return apperrors.NewDatabaseContextError("failed to delete news resources", "driver", "PostgresStore", "DeleteNewsResources", err, map[string]any{"count": len(ids)})
	}
	return nil
}
