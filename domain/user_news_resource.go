package domain

import "time"

// UserNewsResource is a news resource decorated with the user's state.
type UserNewsResource struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Content          string            `json:"content"`
	URL              string            `json:"url"`
	HeaderImageURL   string            `json:"headerImageUrl,omitempty"`
	PublishDate      time.Time         `json:"publishDate"`
	Type             string            `json:"type"`
	FollowableTopics []FollowableTopic `json:"followableTopics"`
	IsSaved          bool              `json:"isSaved"`
	HasBeenViewed    bool              `json:"hasBeenViewed"`
}

func NewUserNewsResource(n NewsResource, u UserData) UserNewsResource {
	topics := make([]FollowableTopic, 0, len(n.Topics))
	for _, t := range n.Topics {
		topics = append(topics, FollowableTopic{Topic: t, IsFollowed: u.FollowedTopics.Has(t.ID)})
	}
	return UserNewsResource{
		ID:               n.ID,
		Title:            n.Title,
		Content:          n.Content,
		URL:              n.URL,
		HeaderImageURL:   n.HeaderImageURL,
		PublishDate:      n.PublishDate,
		Type:             n.Type,
		FollowableTopics: topics,
		IsSaved:          u.BookmarkedNewsResources.Has(n.ID),
		HasBeenViewed:    u.ViewedNewsResources.Has(n.ID),
	}
}

func MapToUserNewsResources(news []NewsResource, u UserData) []UserNewsResource {
	out := make([]UserNewsResource, 0, len(news))
	for _, n := range news {
		out = append(out, NewUserNewsResource(n, u))
	}
	return out
}
