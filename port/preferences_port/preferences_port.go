package preferences_port

//go:generate go run go.uber.org/mock/mockgen -source=preferences_port.go -destination=../../mocks/mock_preferences_port.go -package=mocks

import (
	"context"

	"update-sync/domain"
)

// Store holds the single durable preferences record.
type Store interface {
	// Load returns the stored record, or the default record when none exists.
	Load(ctx context.Context) (domain.UserPreferences, error)
	// Update reads, transforms and writes the record as one atomic step and
	// returns what was written. An error from transform aborts the write.
	Update(ctx context.Context, transform func(domain.UserPreferences) (domain.UserPreferences, error)) (domain.UserPreferences, error)
}
