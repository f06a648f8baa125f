package user_news_usecase

import (
	"update-sync/domain"
	"update-sync/port/news_repository_port"
	"update-sync/port/user_data_port"
	"update-sync/utils/stream"
)

// CompositeUserNewsResourceRepository joins news resources with the user's
// bookmark, viewed and follow state. It holds no state of its own.
type CompositeUserNewsResourceRepository struct {
	news     news_repository_port.NewsRepository
	userData user_data_port.UserDataRepository
}

func NewCompositeUserNewsResourceRepository(news news_repository_port.NewsRepository, userData user_data_port.UserDataRepository) *CompositeUserNewsResourceRepository {
	return &CompositeUserNewsResourceRepository{news: news, userData: userData}
}

// ObserveAll re-emits the joined list whenever the matching news or the user
// data changes.
func (r *CompositeUserNewsResourceRepository) ObserveAll(query domain.NewsResourceQuery) stream.Flow[[]domain.UserNewsResource] {
	return stream.CombineLatest(
		r.news.GetNewsResources(query),
		r.userData.UserData(),
		domain.MapToUserNewsResources,
	)
}

func (r *CompositeUserNewsResourceRepository) ObserveAllForFollowedTopics() stream.Flow[[]domain.UserNewsResource] {
	return r.observeBySet(
		func(u domain.UserData) domain.IDSet { return u.FollowedTopics },
		func(ids domain.IDSet) domain.NewsResourceQuery { return domain.NewsResourceQuery{FilterTopicIDs: ids} },
	)
}

func (r *CompositeUserNewsResourceRepository) ObserveAllBookmarked() stream.Flow[[]domain.UserNewsResource] {
	return r.observeBySet(
		func(u domain.UserData) domain.IDSet { return u.BookmarkedNewsResources },
		func(ids domain.IDSet) domain.NewsResourceQuery { return domain.NewsResourceQuery{FilterNewsIDs: ids} },
	)
}

// observeBySet re-subscribes ObserveAll each time the selected id set changes.
// An empty set yields an empty list without querying the store.
func (r *CompositeUserNewsResourceRepository) observeBySet(
	selectIDs func(domain.UserData) domain.IDSet,
	toQuery func(domain.IDSet) domain.NewsResourceQuery,
) stream.Flow[[]domain.UserNewsResource] {
	ids := stream.DistinctUntilChanged(
		stream.Map(r.userData.UserData(), selectIDs),
		domain.IDSet.Equal,
	)
	return stream.FlatMapLatest(ids, func(set domain.IDSet) stream.Flow[[]domain.UserNewsResource] {
		if set.Len() == 0 {
			return stream.Of([]domain.UserNewsResource{})
		}
		return r.ObserveAll(toQuery(set))
	})
}
