package news_repository_port

import (
	"update-sync/domain"
	"update-sync/port/synchronizer_port"
	"update-sync/utils/stream"
)

type NewsRepository interface {
	synchronizer_port.Syncable
	// GetNewsResources streams the resources matching query, newest first.
	GetNewsResources(query domain.NewsResourceQuery) stream.Flow[[]domain.NewsResource]
}
