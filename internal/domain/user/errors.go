package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrRoleNotFound            = errors.New("role not found")
	ErrUserNotPending          = errors.New("user is not pending approval")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrApproverRoleRequired    = errors.New("approver role required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
