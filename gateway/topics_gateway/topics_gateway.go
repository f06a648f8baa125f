package topics_gateway

import (
	"context"
	"log/slog"

	"update-sync/domain"
	"update-sync/port/local_store_port"
	"update-sync/port/remote_port"
	"update-sync/port/synchronizer_port"
	"update-sync/usecase/changelist_sync_usecase"
	"update-sync/utils/logger"
	"update-sync/utils/stream"
)

// OfflineFirstTopicsRepository reads topics from the local store and keeps
// them in step with the remote source.
type OfflineFirstTopicsRepository struct {
	store  local_store_port.TopicStore
	remote remote_port.RemoteDataSource
	logger *slog.Logger
}

func NewOfflineFirstTopicsRepository(store local_store_port.TopicStore, remote remote_port.RemoteDataSource, log *slog.Logger) *OfflineFirstTopicsRepository {
	return &OfflineFirstTopicsRepository{store: store, remote: remote, logger: logger.OrDefault(log)}
}

func (r *OfflineFirstTopicsRepository) GetTopics() stream.Flow[[]domain.Topic] {
	return r.store.ObserveTopics()
}

func (r *OfflineFirstTopicsRepository) GetTopic(id string) stream.Flow[domain.Topic] {
	return r.store.ObserveTopic(id)
}

func (r *OfflineFirstTopicsRepository) Sync(ctx context.Context, synchronizer synchronizer_port.Synchronizer) (bool, error) {
	return changelist_sync_usecase.SyncWith(ctx, synchronizer, changelist_sync_usecase.Collection{
		Name:            changelist_sync_usecase.CollectionTopics,
		ReadVersion:     changelist_sync_usecase.TopicVersion,
		WriteVersion:    changelist_sync_usecase.WithTopicVersion,
		FetchChangeList: r.remote.GetTopicChangeList,
		DeleteModels:    r.store.DeleteTopics,
		UpdateModels:    r.updateTopics,
	}, r.logger)
}

func (r *OfflineFirstTopicsRepository) updateTopics(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	networkTopics, err := r.remote.GetTopics(ctx, ids)
	if err != nil {
		return err
	}
	topics := make([]domain.Topic, 0, len(networkTopics))
	for _, t := range networkTopics {
		topics = append(topics, t.ToTopic())
	}
	return r.store.UpsertTopics(ctx, topics)
}
