package remote_port

//go:generate go run go.uber.org/mock/mockgen -source=remote_port.go -destination=../../mocks/mock_remote_port.go -package=mocks

import (
	"context"

	"update-sync/domain"
)

// RemoteDataSource is the backend the local store mirrors.
type RemoteDataSource interface {
	// GetTopics returns the topics with the given ids, or all topics when ids is nil.
	GetTopics(ctx context.Context, ids []string) ([]domain.NetworkTopic, error)
	// GetNewsResources returns the news resources with the given ids, or all when ids is nil.
	GetNewsResources(ctx context.Context, ids []string) ([]domain.NetworkNewsResource, error)
	// GetTopicChangeList returns topic changes with a version greater than after.
	// after <= 0 returns the full log.
	GetTopicChangeList(ctx context.Context, after int) ([]domain.ChangeList, error)
	GetNewsResourceChangeList(ctx context.Context, after int) ([]domain.ChangeList, error)
}
