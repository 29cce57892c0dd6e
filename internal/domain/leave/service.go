package leave

import (
	"context"
)

// Service handles the leave request lifecycle and balances.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (RequestResponse, error)
	List(ctx context.Context, filter ListFilter) ([]RequestResponse, int64, error)
	Balance(ctx context.Context, userID string, year int) (BalanceResponse, error)
	Approve(ctx context.Context, requestID, approverID string) (RequestResponse, error)
	Reject(ctx context.Context, req RejectRequest) (RequestResponse, error)
}
