package notifier_port

//go:generate go run go.uber.org/mock/mockgen -source=notifier_port.go -destination=../../mocks/mock_notifier_port.go -package=mocks

import (
	"context"

	"update-sync/domain"
)

// Notifier tells the user about news resources they have not seen yet.
// Delivery is best effort; implementations log their own failures.
type Notifier interface {
	PostNewsNotifications(ctx context.Context, newsResources []domain.NewsResource)
}
