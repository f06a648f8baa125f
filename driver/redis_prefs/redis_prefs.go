// Package redis_prefs keeps the preferences record in a Redis key so several
// processes can share one user's state.
package redis_prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"update-sync/domain"
	apperrors "update-sync/utils/errors"

	"github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic retries when another writer races us.
const maxTxRetries = 16

// RedisPreferencesStore implements preferences_port.Store with WATCH/MULTI.
type RedisPreferencesStore struct {
	client *redis.Client
	key    string
}

func NewRedisPreferencesStore(client *redis.Client, key string) *RedisPreferencesStore {
	return &RedisPreferencesStore{client: client, key: key}
}

// NewRedisPreferencesStoreWithURL creates a store from a redis:// URL.
func NewRedisPreferencesStoreWithURL(url, key string) (*RedisPreferencesStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisPreferencesStore(redis.NewClient(opts), key), nil
}

func (s *RedisPreferencesStore) Close() error {
	return s.client.Close()
}

func (s *RedisPreferencesStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisPreferencesStore) Load(ctx context.Context) (domain.UserPreferences, error) {
	prefs, err := s.read(ctx, s.client)
	if err != nil {
		return domain.UserPreferences{}, apperrors.NewDatabaseContextError("failed to load preferences", "driver", "RedisPreferencesStore", "Load", err, map[string]any{"key": s.key})
	}
	return prefs, nil
}

// Update retries the read-transform-write cycle while other writers change
// the key between our read and our write.
func (s *RedisPreferencesStore) Update(ctx context.Context, transform func(domain.UserPreferences) (domain.UserPreferences, error)) (domain.UserPreferences, error) {
	var written domain.UserPreferences

	txf := func(tx *redis.Tx) error {
		current, err := s.read(ctx, tx)
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
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, data, 0)
			return nil
		})
		if err == nil {
			written = next
		}
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := s.client.Watch(ctx, txf, s.key)
		if err == nil {
			return written, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return domain.UserPreferences{}, fmt.Errorf("update preferences: %w", err)
	}
	return domain.UserPreferences{}, apperrors.NewConflictContextError("preferences changed concurrently", "driver", "RedisPreferencesStore", "Update", domain.ErrPreferencesConflict, map[string]any{"attempts": maxTxRetries})
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *RedisPreferencesStore) read(ctx context.Context, g getter) (domain.UserPreferences, error) {
	data, err := g.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DefaultUserPreferences(), nil
	}
	if err != nil {
		return domain.UserPreferences{}, err
	}
	var prefs domain.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	prefs.UserData = prefs.UserData.Normalize()
	return prefs, nil
}
