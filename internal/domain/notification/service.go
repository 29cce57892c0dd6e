package notification

import (
	"context"

	"github.com/rudratic/hr-backend-go/internal/pkg/sse"
)

// Service defines the notification service interface
type Service interface {
	// Queue notification (async processing via background workers)
	Queue(ctx context.Context, req CreateRequest) error
	QueueBulk(ctx context.Context, reqs []CreateRequest) error

	// Direct operations
	List(ctx context.Context, userID string) (ListResponse, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error

	// SSE subscription
	Subscribe(ctx context.Context, userID string) (<-chan sse.Event, func())

	// Lifecycle
	Stop()
}
