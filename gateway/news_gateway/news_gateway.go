package news_gateway

import (
	"context"
	"log/slog"

	"update-sync/domain"
	"update-sync/port/local_store_port"
	"update-sync/port/notifier_port"
	"update-sync/port/remote_port"
	"update-sync/port/synchronizer_port"
	"update-sync/usecase/changelist_sync_usecase"
	"update-sync/utils/logger"
	"update-sync/utils/metrics"
	"update-sync/utils/stream"
)

// syncBatchSize bounds how many news resources one remote request returns.
const syncBatchSize = 40

// UserDataSource is the slice of the preferences data source news sync needs.
type UserDataSource interface {
	Current(ctx context.Context) (domain.UserData, error)
	SetNewsResourcesViewed(ctx context.Context, ids []string, viewed bool) error
}

// LocalStore is the news table plus the topic table shell topics go into.
type LocalStore interface {
	local_store_port.NewsResourceStore
	InsertOrIgnoreTopics(ctx context.Context, topics []domain.Topic) error
}

// OfflineFirstNewsRepository reads news from the local store and keeps it in
// step with the remote source, notifying about new resources in followed
// topics.
type OfflineFirstNewsRepository struct {
	store    LocalStore
	remote   remote_port.RemoteDataSource
	userData UserDataSource
	notifier notifier_port.Notifier
	logger   *slog.Logger
}

func NewOfflineFirstNewsRepository(
	store LocalStore,
	remote remote_port.RemoteDataSource,
	userData UserDataSource,
	notifier notifier_port.Notifier,
	log *slog.Logger,
) *OfflineFirstNewsRepository {
	return &OfflineFirstNewsRepository{
		store:    store,
		remote:   remote,
		userData: userData,
		notifier: notifier,
		logger:   logger.OrDefault(log),
	}
}

func toFilter(query domain.NewsResourceQuery) local_store_port.NewsResourceFilter {
	filter := local_store_port.NewsResourceFilter{
		UseFilterTopicIDs: query.HasTopicFilter(),
		UseFilterNewsIDs:  query.HasNewsFilter(),
	}
	if filter.UseFilterTopicIDs {
		filter.FilterTopicIDs = query.FilterTopicIDs.Sorted()
	}
	if filter.UseFilterNewsIDs {
		filter.FilterNewsIDs = query.FilterNewsIDs.Sorted()
	}
	return filter
}

func (r *OfflineFirstNewsRepository) GetNewsResources(query domain.NewsResourceQuery) stream.Flow[[]domain.NewsResource] {
	return r.store.ObserveNewsResources(toFilter(query))
}

func (r *OfflineFirstNewsRepository) Sync(ctx context.Context, synchronizer synchronizer_port.Synchronizer) (bool, error) {
	versions, err := synchronizer.GetChangeListVersions(ctx)
	if err != nil {
		return false, err
	}
	isFirstSync := versions.NewsResourceVersion <= 0

	return changelist_sync_usecase.SyncWith(ctx, synchronizer, changelist_sync_usecase.Collection{
		Name:            changelist_sync_usecase.CollectionNewsResources,
		ReadVersion:     changelist_sync_usecase.NewsResourceVersion,
		WriteVersion:    changelist_sync_usecase.WithNewsResourceVersion,
		FetchChangeList: r.remote.GetNewsResourceChangeList,
		DeleteModels:    r.store.DeleteNewsResources,
		UpdateModels: func(ctx context.Context, ids []string) error {
			return r.updateNewsResources(ctx, ids, isFirstSync)
		},
	}, r.logger)
}

func (r *OfflineFirstNewsRepository) updateNewsResources(ctx context.Context, changedIDs []string, isFirstSync bool) error {
	if len(changedIDs) == 0 {
		return nil
	}

	userData, err := r.userData.Current(ctx)
	if err != nil {
		return err
	}

	// A fresh install should not present the whole backlog as unread.
	if isFirstSync {
		if err := r.userData.SetNewsResourcesViewed(ctx, changedIDs, true); err != nil {
			return err
		}
	}

	// Notifications are only computed once topic selection is done.
	notify := userData.ShouldHideTopicSelection
	followedFilter := local_store_port.NewsResourceFilter{
		UseFilterTopicIDs: true,
		FilterTopicIDs:    userData.FollowedTopics.Sorted(),
	}
	changed := domain.NewIDSet(changedIDs...)

	var existing domain.IDSet
	if notify {
		existing, err = r.followedAmong(ctx, followedFilter, changed)
		if err != nil {
			return err
		}
	}

	for start := 0; start < len(changedIDs); start += syncBatchSize {
		end := min(start+syncBatchSize, len(changedIDs))
		if err := r.applyBatch(ctx, changedIDs[start:end]); err != nil {
			return err
		}
	}

	if !notify {
		return nil
	}

	after, err := r.followedAmong(ctx, followedFilter, changed)
	if err != nil {
		return err
	}
	added := after.Minus(existing)
	if added.Len() == 0 {
		return nil
	}

	fresh, err := r.store.GetNewsResources(ctx, local_store_port.NewsResourceFilter{
		UseFilterNewsIDs: true,
		FilterNewsIDs:    added.Sorted(),
	})
	if err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "posting news notifications", "count", len(fresh))
	r.notifier.PostNewsNotifications(ctx, fresh)
	metrics.RecordNotifications(len(fresh))
	return nil
}

// followedAmong returns the ids of candidates stored locally under a followed topic.
func (r *OfflineFirstNewsRepository) followedAmong(ctx context.Context, followed local_store_port.NewsResourceFilter, candidates domain.IDSet) (domain.IDSet, error) {
	ids, err := r.store.GetNewsResourceIDs(ctx, followed)
	if err != nil {
		return nil, err
	}
	out := domain.NewIDSet()
	for _, id := range ids {
		if candidates.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

// applyBatch fetches one batch and writes it. Shell topics go in first so
// cross references never point at a missing topic.
func (r *OfflineFirstNewsRepository) applyBatch(ctx context.Context, ids []string) error {
	networkNews, err := r.remote.GetNewsResources(ctx, ids)
	if err != nil {
		return err
	}

	var (
		shells    []domain.Topic
		seen      = domain.NewIDSet()
		resources = make([]domain.NewsResource, 0, len(networkNews))
		refs      []domain.NewsResourceTopicCrossRef
	)
	for _, n := range networkNews {
		for _, topicID := range n.Topics {
			if !seen.Has(topicID) {
				seen[topicID] = struct{}{}
				shells = append(shells, domain.ShellTopic(topicID))
			}
		}
		resources = append(resources, n.ToNewsResource())
		refs = append(refs, n.TopicCrossRefs()...)
	}

	if err := r.store.InsertOrIgnoreTopics(ctx, shells); err != nil {
		return err
	}
	if err := r.store.UpsertNewsResources(ctx, resources); err != nil {
		return err
	}
	return r.store.InsertOrIgnoreTopicCrossRefs(ctx, refs)
}
