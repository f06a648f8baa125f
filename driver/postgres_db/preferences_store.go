package postgres_db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"update-sync/domain"
	apperrors "update-sync/utils/errors"

	"github.com/jackc/pgx/v5"
)

const (
	ensurePreferencesQuery = `INSERT INTO user_preferences (id, data) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`
	selectPreferencesQuery = `SELECT data FROM user_preferences WHERE id = 1`
	lockPreferencesQuery   = `SELECT data FROM user_preferences WHERE id = 1 FOR UPDATE`
	updatePreferencesQuery = `UPDATE user_preferences SET data = $1, updated_at = now() WHERE id = 1`
)

func (s *PostgresStore) Load(ctx context.Context) (domain.UserPreferences, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, selectPreferencesQuery).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DefaultUserPreferences(), nil
	}
	if err != nil {
		return domain.UserPreferences{}, apperrors.NewDatabaseContextError("failed to load preferences", "driver", "PostgresStore", "Load", err, nil)
	}
	return decodePreferences(data)
}

// Update locks the preferences row for the duration of the transform.
func (s *PostgresStore) Update(ctx context.Context, transform func(domain.UserPreferences) (domain.UserPreferences, error)) (domain.UserPreferences, error) {
	defaults, err := json.Marshal(domain.DefaultUserPreferences())
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("encode default preferences: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, ensurePreferencesQuery, defaults); err != nil {
		return domain.UserPreferences{}, apperrors.NewDatabaseContextError("failed to ensure preferences row", "driver", "PostgresStore", "Update", err, nil)
	}

	var data []byte
	if err := tx.QueryRow(ctx, lockPreferencesQuery).Scan(&data); err != nil {
		return domain.UserPreferences{}, apperrors.NewDatabaseContextError("failed to lock preferences", "driver", "PostgresStore", "Update", err, nil)
	}
	current, err := decodePreferences(data)
	if err != nil {
		return domain.UserPreferences{}, err
	}

	next, err := transform(current)
	if err != nil {
		return domain.UserPreferences{}, err
	}
	encoded, err := json.Marshal(next)
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("encode preferences: %w", err)
	}
	if _, err := tx.Exec(ctx, updatePreferencesQuery, encoded); err != nil {
		return domain.UserPreferences{}, apperrors.NewDatabaseContextError("failed to write preferences", "driver", "PostgresStore", "Update", err, nil)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("commit tx: %w", err)
	}

	s.tracker.Invalidate(tableUserPreferences)
	return next, nil
}

func decodePreferences(data []byte) (domain.UserPreferences, error) {
	var prefs domain.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	prefs.UserData = prefs.UserData.Normalize()
	return prefs, nil
}
