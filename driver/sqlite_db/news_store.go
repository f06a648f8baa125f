package sqlite_db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"update-sync/domain"
	"update-sync/port/local_store_port"
	"update-sync/utils/errors"
	"update-sync/utils/stream"
)

const newsColumns = "id, title, content, url, header_image_url, publish_date, type"

// newsWhere renders the filter as a WHERE clause. Each id list binds as a
// single JSON array expanded by json_each, so filter size is not bounded by
// the host parameter limit. empty is true when an applied filter has no ids,
// so no row can match.
func newsWhere(filter local_store_port.NewsResourceFilter) (clause string, args []any, empty bool) {
	var conds []string
	if filter.UseFilterTopicIDs {
		if len(filter.FilterTopicIDs) == 0 {
			return "", nil, true
		}
		conds = append(conds, "id IN (SELECT news_resource_id FROM news_resources_topics WHERE topic_id IN (SELECT value FROM json_each(?)))")
		args = append(args, jsonList(filter.FilterTopicIDs))
	}
	if filter.UseFilterNewsIDs {
		if len(filter.FilterNewsIDs) == 0 {
			return "", nil, true
		}
		conds = append(conds, "id IN (SELECT value FROM json_each(?))")
		args = append(args, jsonList(filter.FilterNewsIDs))
	}
	if len(conds) == 0 {
		return "", nil, false
	}
	return " WHERE " + strings.Join(conds, " AND "), args, false
}

func jsonList(ids []string) string {
	raw, _ := json.Marshal(ids) // a string slice always encodes
	return string(raw)
}

func (s *SQLiteStore) ObserveNewsResources(filter local_store_port.NewsResourceFilter) stream.Flow[[]domain.NewsResource] {
	tables := []string{tableNewsResources, tableNewsResourceTopics, tableTopics}
	return stream.Query(s.tracker, tables, func(ctx context.Context) ([]domain.NewsResource, error) {
		return s.GetNewsResources(ctx, filter)
	})
}

func (s *SQLiteStore) GetNewsResources(ctx context.Context, filter local_store_port.NewsResourceFilter) ([]domain.NewsResource, error) {
	where, args, empty := newsWhere(filter)
	if empty {
		return []domain.NewsResource{}, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to begin read", "driver", "SQLiteStore", "GetNewsResources", err, nil)
	}
	defer tx.Rollback()

	news, err := queryNews(ctx, tx, "SELECT "+newsColumns+" FROM news_resources"+where+" ORDER BY publish_date DESC, id", args)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to query news resources", "driver", "SQLiteStore", "GetNewsResources", err, nil)
	}
	if err := attachTopics(ctx, tx, news); err != nil {
		return nil, errors.NewDatabaseContextError("failed to query news topics", "driver", "SQLiteStore", "GetNewsResources", err, nil)
	}
	return news, nil
}

func queryNews(ctx context.Context, tx *sql.Tx, query string, args []any) ([]domain.NewsResource, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	news := make([]domain.NewsResource, 0)
	for rows.Next() {
		var (
			n         domain.NewsResource
			header    sql.NullString
			published int64
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.URL, &header, &published, &n.Type); err != nil {
			return nil, fmt.Errorf("scan news resource: %w", err)
		}
		n.HeaderImageURL = header.String
		n.PublishDate = time.UnixMilli(published).UTC()
		n.Topics = []domain.Topic{}
		news = append(news, n)
	}
	return news, rows.Err()
}

func attachTopics(ctx context.Context, tx *sql.Tx, news []domain.NewsResource) error {
	if len(news) == 0 {
		return nil
	}
	index := make(map[string]int, len(news))
	ids := make([]string, len(news))
	for i, n := range news {
		index[n.ID] = i
		ids[i] = n.ID
	}

	for _, part := range chunk(ids, maxQueryParams) {
		rows, err := tx.QueryContext(ctx,
			"SELECT nrt.news_resource_id, t.id, t.name, t.short_description, t.long_description, t.url, t.image_url "+
				"FROM news_resources_topics nrt JOIN topics t ON t.id = nrt.topic_id "+
				"WHERE nrt.news_resource_id IN ("+placeholders(len(part))+") ORDER BY t.id",
			toArgs(part)...)
		if err != nil {
			return err
		}
		for rows.Next() {
			var newsID string
			var t domain.Topic
			if err := rows.Scan(&newsID, &t.ID, &t.Name, &t.ShortDescription, &t.LongDescription, &t.URL, &t.ImageURL); err != nil {
				rows.Close()
				return fmt.Errorf("scan news topic: %w", err)
			}
			i := index[newsID]
			news[i].Topics = append(news[i].Topics, t)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) GetNewsResourceIDs(ctx context.Context, filter local_store_port.NewsResourceFilter) ([]string, error) {
	where, args, empty := newsWhere(filter)
	if empty {
		return []string{}, nil
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id FROM news_resources"+where+" ORDER BY publish_date DESC, id", args...)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to query news resource ids", "driver", "SQLiteStore", "GetNewsResourceIDs", err, nil)
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

func (s *SQLiteStore) UpsertNewsResources(ctx context.Context, resources []domain.NewsResource) error {
	if len(resources) == 0 {
		return nil
	}
	const query = "INSERT INTO news_resources (" + newsColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?) " +
		"ON CONFLICT(id) DO UPDATE SET title = excluded.title, content = excluded.content, url = excluded.url, " +
		"header_image_url = excluded.header_image_url, publish_date = excluded.publish_date, type = excluded.type"

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, n := range resources {
			header := sql.NullString{String: n.HeaderImageURL, Valid: n.HeaderImageURL != ""}
			if _, err := stmt.ExecContext(ctx, n.ID, n.Title, n.Content, n.URL, header, n.PublishDate.UnixMilli(), n.Type); err != nil {
				return err
			}
		}
		return nil
	}, tableNewsResources)
	if err != nil {
		return errors.NewDatabaseContextError("failed to upsert news resources", "driver", "SQLiteStore", "UpsertNewsResources", err, map[string]any{"count": len(resources)})
	}
	return nil
}

func (s *SQLiteStore) InsertOrIgnoreTopicCrossRefs(ctx context.Context, refs []domain.NewsResourceTopicCrossRef) error {
	if len(refs) == 0 {
		return nil
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO news_resources_topics (news_resource_id, topic_id) VALUES (?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, ref := range refs {
			if _, err := stmt.ExecContext(ctx, ref.NewsResourceID, ref.TopicID); err != nil {
				return err
			}
		}
		return nil
	}, tableNewsResourceTopics)
	if err != nil {
		return errors.NewDatabaseContextError("failed to insert topic cross references", "driver", "SQLiteStore", "InsertOrIgnoreTopicCrossRefs", err, map[string]any{"count": len(refs)})
	}
	return nil
}

func (s *SQLiteStore) DeleteNewsResources(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		for _, part := range chunk(ids, maxQueryParams) {
			if _, err := tx.ExecContext(ctx, "DELETE FROM news_resources WHERE id IN ("+placeholders(len(part))+")", toArgs(part)...); err != nil {
				return err
			}
		}
		return nil
	}, tableNewsResources, tableNewsResourceTopics)
	if err != nil {
		return errors.NewDatabaseContextError("failed to delete news resources", "driver", "SQLiteStore", "DeleteNewsResources", err, map[string]any{"count": len(ids)})
	}
	return nil
}
