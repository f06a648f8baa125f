package notifier_gateway

import (
	"context"
	"log/slog"

	"update-sync/domain"
	"update-sync/port/notifier_port"
	"update-sync/utils/logger"
)

// LogNotifier writes notifications to the log. It is the default when no
// message bus is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.OrDefault(log)}
}

func (n *LogNotifier) PostNewsNotifications(ctx context.Context, newsResources []domain.NewsResource) {
	for _, resource := range newsResources {
		n.logger.InfoContext(ctx, "new news resource",
			"news_id", resource.ID,
			"title", resource.Title,
			"topics", resource.TopicIDs())
	}
}

// Fanout delivers every notification batch to each notifier in order.
type Fanout []notifier_port.Notifier

func NewFanout(notifiers ...notifier_port.Notifier) Fanout {
	out := make(Fanout, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (f Fanout) PostNewsNotifications(ctx context.Context, newsResources []domain.NewsResource) {
	if len(newsResources) == 0 {
		return
	}
	for _, n := range f {
		n.PostNewsNotifications(ctx, newsResources)
	}
}
