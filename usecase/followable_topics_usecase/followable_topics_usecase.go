package followable_topics_usecase

import (
	"cmp"
	"slices"

	"update-sync/domain"
	"update-sync/port/topics_repository_port"
	"update-sync/port/user_data_port"
	"update-sync/utils/stream"
)

type GetFollowableTopicsUsecase struct {
	topics   topics_repository_port.TopicsRepository
	userData user_data_port.UserDataRepository
}

func NewGetFollowableTopicsUsecase(topics topics_repository_port.TopicsRepository, userData user_data_port.UserDataRepository) *GetFollowableTopicsUsecase {
	return &GetFollowableTopicsUsecase{topics: topics, userData: userData}
}

// Execute streams every topic paired with its follow state. TopicSortName
// orders by name; any other value keeps the store order.
func (u *GetFollowableTopicsUsecase) Execute(sortBy domain.TopicSortField) stream.Flow[[]domain.FollowableTopic] {
	return stream.CombineLatest(u.topics.GetTopics(), u.userData.UserData(),
		func(topics []domain.Topic, data domain.UserData) []domain.FollowableTopic {
			out := make([]domain.FollowableTopic, 0, len(topics))
			for _, t := range topics {
				out = append(out, domain.FollowableTopic{Topic: t, IsFollowed: data.FollowedTopics.Has(t.ID)})
			}
			if sortBy == domain.TopicSortName {
				slices.SortStableFunc(out, func(a, b domain.FollowableTopic) int {
					return cmp.Compare(a.Topic.Name, b.Topic.Name)
				})
			}
			return out
		})
}
