package kudos

import (
	"context"
)

// Repository - interface for kudos table
type Repository interface {
	Create(ctx context.Context, k Kudos) (Kudos, error)
	List(ctx context.Context) ([]Kudos, error)
	ListByRecipient(ctx context.Context, userID string) ([]Kudos, error)
}
