package user

import (
	"context"
)

// Service covers self-service profile access and the admin user console.
type Service interface {
	Profile(ctx context.Context, userID string) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error)

	// List returns users matching the filter plus the unpaginated total.
	List(ctx context.Context, filter ListUsersFilter) ([]ProfileResponse, int64, error)
	// Pending returns registrations awaiting an approval decision.
	Pending(ctx context.Context) ([]ProfileResponse, error)
	// Approve activates a PENDING account.
	Approve(ctx context.Context, userID, adminID string) (ProfileResponse, error)
	// Reject suspends a PENDING account.
	Reject(ctx context.Context, userID, adminID string) (ProfileResponse, error)
	// ChangeRole reassigns a user to the named role.
	ChangeRole(ctx context.Context, userID string, role Role, adminID string) (ProfileResponse, error)
	Roles(ctx context.Context) ([]RoleRecord, error)
}
