package sqlite_db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"update-sync/domain"
	"update-sync/utils/errors"
)

// Load returns the stored preferences, or the defaults when none were saved.
func (s *SQLiteStore) Load(ctx context.Context) (domain.UserPreferences, error) {
	prefs, err := loadPreferences(ctx, s.db)
	if err != nil {
		return domain.UserPreferences{}, errors.NewDatabaseContextError("failed to load preferences", "driver", "SQLiteStore", "Load", err, nil)
	}
	return prefs, nil
}

// Update applies transform to the stored preferences in one transaction.
func (s *SQLiteStore) Update(ctx context.Context, transform func(domain.UserPreferences) (domain.UserPreferences, error)) (domain.UserPreferences, error) {
	s.prefsMu.Lock()
	defer s.prefsMu.Unlock()

	var written domain.UserPreferences
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := loadPreferences(ctx, tx)
		if err != nil {
			return err
		}
		next, err := transform(current)
		if err != nil {
			return err
		}
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode preferences: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO user_preferences (id, data, updated_at) VALUES (1, ?, ?) "+
				"ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at",
			string(data), time.Now().UnixMilli())
		if err != nil {
			return err
		}
		written = next
		return nil
	}, tableUserPreferences)
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("update preferences: %w", err)
	}
	return written, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func loadPreferences(ctx context.Context, q queryRower) (domain.UserPreferences, error) {
	var data string
	err := q.QueryRowContext(ctx, "SELECT data FROM user_preferences WHERE id = 1").Scan(&data)
	if err == sql.ErrNoRows {
		return domain.DefaultUserPreferences(), nil
	}
	if err != nil {
		return domain.UserPreferences{}, err
	}
	var prefs domain.UserPreferences
	if err := json.Unmarshal([]byte(data), &prefs); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	prefs.UserData = prefs.UserData.Normalize()
	return prefs, nil
}
