// Package nats_bus connects to NATS and publishes new-news notifications.
package nats_bus

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"update-sync/domain"
	"update-sync/utils/logger"

	"github.com/nats-io/nats.go"
)

// Connect dials NATS with unbounded reconnects and logs connection changes.
func Connect(url, name string, log *slog.Logger) (*nats.Conn, error) {
	log = logger.OrDefault(log)
	return nats.Connect(url,
		nats.Name(name),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("reconnected to NATS", "url", nc.ConnectedUrl())
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("disconnected from NATS", "error", err)
			}
		}),
	)
}

// Publisher is the part of *nats.Conn the notifier needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NewsMessage is the payload published for each new news resource.
type NewsMessage struct {
	NewsResource domain.NewsResource `json:"newsResource"`
	Timestamp    time.Time           `json:"timestamp"`
	Source       string              `json:"source"`
	Version      string              `json:"version"`
}

// Notifier implements notifier_port.Notifier by publishing one message per
// news resource. Failures are logged and skipped.
type Notifier struct {
	publisher Publisher
	subject   string
	logger    *slog.Logger
	now       func() time.Time
}

func NewNotifier(publisher Publisher, subject string, log *slog.Logger) *Notifier {
	return &Notifier{
		publisher: publisher,
		subject:   subject,
		logger:    logger.OrDefault(log),
		now:       time.Now,
	}
}

func (n *Notifier) PostNewsNotifications(ctx context.Context, newsResources []domain.NewsResource) {
	published := 0
	for _, resource := range newsResources {
		if ctx.Err() != nil {
			break
		}
		data, err := json.Marshal(NewsMessage{
			NewsResource: resource,
			Timestamp:    n.now().UTC(),
			Source:       "update-sync",
			Version:      "1.0",
		})
		if err != nil {
			n.logger.ErrorContext(ctx, "failed to encode news notification", "news_id", resource.ID, "error", err)
			continue
		}
		if err := n.publisher.Publish(n.subject, data); err != nil {
			n.logger.ErrorContext(ctx, "failed to publish news notification", "news_id", resource.ID, "error", err)
			continue
		}
		published++
	}
	n.logger.InfoContext(ctx, "published news notifications",
		"subject", n.subject,
		"published", published,
		"requested", len(newsResources))
}
