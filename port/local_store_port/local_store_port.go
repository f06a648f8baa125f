package local_store_port

import (
	"context"

	"update-sync/domain"
	"update-sync/utils/stream"
)

// NewsResourceFilter restricts news reads. A filter only applies when its Use
// flag is set, so an applied filter with no ids matches nothing.
type NewsResourceFilter struct {
	UseFilterTopicIDs bool
	FilterTopicIDs    []string
	UseFilterNewsIDs  bool
	FilterNewsIDs     []string
}

// TopicStore is the local topic table.
type TopicStore interface {
	ObserveTopics() stream.Flow[[]domain.Topic]
	// ObserveTopic emits the topic each time it changes and fails with
	// domain.ErrTopicNotFound when it does not exist.
	ObserveTopic(id string) stream.Flow[domain.Topic]
	GetTopics(ctx context.Context) ([]domain.Topic, error)
	GetTopic(ctx context.Context, id string) (domain.Topic, error)
	InsertOrIgnoreTopics(ctx context.Context, topics []domain.Topic) error
	UpsertTopics(ctx context.Context, topics []domain.Topic) error
	DeleteTopics(ctx context.Context, ids []string) error
}

// NewsResourceStore is the local news table and its topic cross references.
// Reads return resources ordered by publish date, newest first.
type NewsResourceStore interface {
	ObserveNewsResources(filter NewsResourceFilter) stream.Flow[[]domain.NewsResource]
	GetNewsResources(ctx context.Context, filter NewsResourceFilter) ([]domain.NewsResource, error)
	GetNewsResourceIDs(ctx context.Context, filter NewsResourceFilter) ([]string, error)
	// UpsertNewsResources writes resource rows; the Topics field is ignored.
	UpsertNewsResources(ctx context.Context, resources []domain.NewsResource) error
	InsertOrIgnoreTopicCrossRefs(ctx context.Context, refs []domain.NewsResourceTopicCrossRef) error
	DeleteNewsResources(ctx context.Context, ids []string) error
}
