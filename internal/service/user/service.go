package user

import (
	"context"
	"log/slog"

	"github.com/rudratic/hr-backend-go/internal/domain/admin"
	"github.com/rudratic/hr-backend-go/internal/domain/notification"
	"github.com/rudratic/hr-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
	user.RoleRepository
	auditRepo       admin.AuditLogRepository
	notificationSvc notification.Service
}

func NewUserService(
	userRepository user.UserRepository,
	roleRepository user.RoleRepository,
	auditRepo admin.AuditLogRepository,
	notificationSvc notification.Service,
) user.Service {
	return &UserServiceImpl{
		UserRepository:  userRepository,
		RoleRepository:  roleRepository,
		auditRepo:       auditRepo,
		notificationSvc: notificationSvc,
	}
}

// Profile implements user.Service.
func (s *UserServiceImpl) Profile(ctx context.Context, userID string) (user.ProfileResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.ToProfileResponse(u), nil
}

// UpdateProfile implements user.Service.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	if err := s.UserRepository.Update(ctx, req); err != nil {
		return user.ProfileResponse{}, err
	}

	return s.Profile(ctx, req.UserID)
}

// List implements user.Service.
func (s *UserServiceImpl) List(ctx context.Context, filter user.ListUsersFilter) ([]user.ProfileResponse, int64, error) {
	users, total, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]user.ProfileResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToProfileResponse(u))
	}

	return responses, total, nil
}

// Pending implements user.Service.
func (s *UserServiceImpl) Pending(ctx context.Context) ([]user.ProfileResponse, error) {
	users, err := s.UserRepository.ListByStatus(ctx, user.StatusPending)
	if err != nil {
		return nil, err
	}

	responses := make([]user.ProfileResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToProfileResponse(u))
	}

	return responses, nil
}

// Approve implements user.Service. Only PENDING accounts can be decided.
func (s *UserServiceImpl) Approve(ctx context.Context, userID, adminID string) (user.ProfileResponse, error) {
	return s.decide(ctx, userID, adminID, user.StatusActive)
}

// Reject implements user.Service.
func (s *UserServiceImpl) Reject(ctx context.Context, userID, adminID string) (user.ProfileResponse, error) {
	return s.decide(ctx, userID, adminID, user.StatusSuspended)
}

func (s *UserServiceImpl) decide(ctx context.Context, userID, adminID string, to user.Status) (user.ProfileResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	if u.Status != user.StatusPending {
		return user.ProfileResponse{}, user.ErrUserNotPending
	}

	updated, err := s.UserRepository.UpdateStatus(ctx, userID, to)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	action := "user.approve"
	if to == user.StatusSuspended {
		action = "user.reject"
	}
	s.audit(ctx, action, adminID, userID, map[string]interface{}{
		"email":  updated.Email,
		"status": string(to),
	})

	if s.notificationSvc != nil {
		req := notification.CreateRequest{
			UserID:  userID,
			Title:   "Account Approved",
			Message: "Your account has been approved. Welcome aboard!",
			Type:    notification.TypeSuccess,
		}
		if to == user.StatusSuspended {
			req.Title = "Registration Declined"
			req.Message = "Your registration was not approved. Contact HR for details."
			req.Type = notification.TypeWarning
		}
		if err := s.notificationSvc.Queue(ctx, req); err != nil {
			slog.Error("Failed to queue account decision notification", "user_id", userID, "error", err)
		}
	}

	return user.ToProfileResponse(updated), nil
}

// ChangeRole implements user.Service. The role is resolved by name so an
// unknown role fails before anything is written.
func (s *UserServiceImpl) ChangeRole(ctx context.Context, userID string, role user.Role, adminID string) (user.ProfileResponse, error) {
	record, err := s.RoleRepository.GetByName(ctx, user.NormalizeRole(string(role)))
	if err != nil {
		return user.ProfileResponse{}, err
	}

	if err := s.UserRepository.UpdateRole(ctx, userID, record.ID); err != nil {
		return user.ProfileResponse{}, err
	}

	updated, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	s.audit(ctx, "user.change_role", adminID, userID, map[string]interface{}{
		"role": string(record.Name),
	})

	return user.ToProfileResponse(updated), nil
}

// Roles implements user.Service.
func (s *UserServiceImpl) Roles(ctx context.Context) ([]user.RoleRecord, error) {
	return s.RoleRepository.List(ctx)
}

// audit records the action without ever failing the caller.
func (s *UserServiceImpl) audit(ctx context.Context, action, adminID, targetID string, details map[string]interface{}) {
	if s.auditRepo == nil {
		return
	}
	err := s.auditRepo.Create(ctx, admin.AuditLog{
		Action:   action,
		AdminID:  adminID,
		TargetID: &targetID,
		Details:  details,
	})
	if err != nil {
		slog.Error("Failed to write audit log", "action", action, "error", err)
	}
}
