package kudos

import (
	"context"
)

// Service handles peer recognition notes.
type Service interface {
	// Create stores a kudos and notifies the recipient.
	Create(ctx context.Context, req CreateRequest) (Response, error)
	// List returns the company-wide feed, newest first.
	List(ctx context.Context) ([]Response, error)
	// Received returns the kudos addressed to one user.
	Received(ctx context.Context, userID string) ([]Response, error)
}
