package domain

// Topic is a subject that news resources are tagged with and users follow.
type Topic struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	URL              string `json:"url"`
	ImageURL         string `json:"imageUrl"`
}

// ShellTopic returns a placeholder topic carrying only its id. Shell topics
// satisfy cross reference constraints until the topics sync fills them in.
func ShellTopic(id string) Topic {
	return Topic{ID: id}
}

// FollowableTopic is a topic paired with whether the user follows it.
type FollowableTopic struct {
	Topic      Topic `json:"topic"`
	IsFollowed bool  `json:"isFollowed"`
}

// TopicSortField selects the ordering of followable topics.
type TopicSortField string

const (
	TopicSortNone TopicSortField = "NONE"
	TopicSortName TopicSortField = "NAME"
)
