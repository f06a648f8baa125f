package user_news_port

import (
	"update-sync/domain"
	"update-sync/utils/stream"
)

// UserNewsResourceRepository joins news resources with the user's state.
type UserNewsResourceRepository interface {
	ObserveAll(query domain.NewsResourceQuery) stream.Flow[[]domain.UserNewsResource]
	ObserveAllForFollowedTopics() stream.Flow[[]domain.UserNewsResource]
	ObserveAllBookmarked() stream.Flow[[]domain.UserNewsResource]
}
