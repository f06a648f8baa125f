package topics_repository_port

import (
	"update-sync/domain"
	"update-sync/port/synchronizer_port"
	"update-sync/utils/stream"
)

type TopicsRepository interface {
	synchronizer_port.Syncable
	// GetTopics streams every topic, re-emitting after each local change.
	GetTopics() stream.Flow[[]domain.Topic]
	// GetTopic streams one topic and fails when it does not exist locally.
	GetTopic(id string) stream.Flow[domain.Topic]
}
