package user

import (
	"context"
)

// UserRepository - interface for users table
type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]User, int64, error)
	ListByStatus(ctx context.Context, status Status) ([]User, error)
	Update(ctx context.Context, req UpdateProfileRequest) error
	UpdateStatus(ctx context.Context, id string, status Status) (User, error)
	UpdateRole(ctx context.Context, id string, roleID string) error
}

// RoleRepository - interface for roles table
type RoleRepository interface {
	GetByName(ctx context.Context, name Role) (RoleRecord, error)
	List(ctx context.Context) ([]RoleRecord, error)
	Upsert(ctx context.Context, role RoleRecord) (RoleRecord, error)
}
