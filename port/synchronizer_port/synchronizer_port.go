package synchronizer_port

//go:generate go run go.uber.org/mock/mockgen -source=synchronizer_port.go -destination=../../mocks/mock_synchronizer_port.go -package=mocks

import (
	"context"

	"update-sync/domain"
)

// Synchronizer persists the change list versions every sync pass starts from.
type Synchronizer interface {
	GetChangeListVersions(ctx context.Context) (domain.ChangeListVersions, error)
	// UpdateChangeListVersions applies update atomically with respect to
	// concurrent callers.
	UpdateChangeListVersions(ctx context.Context, update func(domain.ChangeListVersions) domain.ChangeListVersions) error
}

// Syncable is a repository that can bring its local data up to date.
// Sync reports true when the pass completed; on false the returned error
// explains why and the caller should retry the whole pass later.
type Syncable interface {
	Sync(ctx context.Context, synchronizer Synchronizer) (bool, error)
}
