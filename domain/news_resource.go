package domain

import "time"

// NewsResource is a single piece of news content.
type NewsResource struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	URL            string    `json:"url"`
	HeaderImageURL string    `json:"headerImageUrl,omitempty"`
	PublishDate    time.Time `json:"publishDate"`
	Type           string    `json:"type"`
	Topics         []Topic   `json:"topics"`
}

// TopicIDs returns the ids of the topics the resource is tagged with.
func (n NewsResource) TopicIDs() []string {
	ids := make([]string, 0, len(n.Topics))
	for _, t := range n.Topics {
		ids = append(ids, t.ID)
	}
	return ids
}

// NewsResourceTopicCrossRef links a news resource to one of its topics.
type NewsResourceTopicCrossRef struct {
	NewsResourceID string
	TopicID        string
}

// NewsResourceQuery narrows a news read. A nil set means the filter is not
// applied; an empty non-nil set matches nothing. Both filters combine with AND.
type NewsResourceQuery struct {
	FilterTopicIDs IDSet
	FilterNewsIDs  IDSet
}

func (q NewsResourceQuery) HasTopicFilter() bool {
	return q.FilterTopicIDs != nil
}

func (q NewsResourceQuery) HasNewsFilter() bool {
	return q.FilterNewsIDs != nil
}
