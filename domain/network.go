package domain

import "time"

// NetworkTopic is the remote representation of a topic.
type NetworkTopic struct {
	ID               string `json:"id" validate:"required"`
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	URL              string `json:"url"`
	ImageURL         string `json:"imageUrl"`
}

func (t NetworkTopic) ToTopic() Topic {
	return Topic(t)
}

// NetworkNewsResource is the remote representation of a news resource. Topics
// are referenced by id only.
type NetworkNewsResource struct {
	ID             string    `json:"id" validate:"required"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	URL            string    `json:"url"`
	HeaderImageURL string    `json:"headerImageUrl"`
	PublishDate    time.Time `json:"publishDate"`
	Type           string    `json:"type"`
	Topics         []string  `json:"topics"`
}

// ToNewsResource converts without topics; topics are attached by cross refs.
func (n NetworkNewsResource) ToNewsResource() NewsResource {
	return NewsResource{
		ID:             n.ID,
		Title:          n.Title,
		Content:        n.Content,
		URL:            n.URL,
		HeaderImageURL: n.HeaderImageURL,
		PublishDate:    n.PublishDate,
		Type:           n.Type,
	}
}

func (n NetworkNewsResource) TopicCrossRefs() []NewsResourceTopicCrossRef {
	refs := make([]NewsResourceTopicCrossRef, 0, len(n.Topics))
	for _, id := range n.Topics {
		refs = append(refs, NewsResourceTopicCrossRef{NewsResourceID: n.ID, TopicID: id})
	}
	return refs
}
