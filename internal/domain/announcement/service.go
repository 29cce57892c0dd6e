package announcement

import (
	"context"
)

// Service handles company-wide announcements.
type Service interface {
	// Create stores an announcement and notifies active users.
	Create(ctx context.Context, req CreateRequest) (Response, error)
	// List returns all announcements, newest first.
	List(ctx context.Context) ([]Response, error)
}
