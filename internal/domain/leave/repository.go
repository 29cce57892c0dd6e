package leave

import (
	"context"
	"time"
)

// RequestRepository - interface for leave_requests table
type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy *string, rejectionReason *string) error
	HasOverlap(ctx context.Context, userID string, start, end time.Time) (bool, error)
	ListApprovedInWindow(ctx context.Context, start, end time.Time) ([]Request, error)
}

// BalanceRepository - interface for leave_balances table
type BalanceRepository interface {
	// GetOrCreate returns the balance row for (userID, year), inserting the
	// default allocation when none exists yet.
	GetOrCreate(ctx context.Context, userID string, year int) (Balance, error)
	Deduct(ctx context.Context, userID string, year int, leaveType Type, days int) error
}
