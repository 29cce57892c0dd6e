package response

import (
	"errors"
	"net/http"

	"github.com/rudratic/hr-backend-go/internal/domain/admin"
	"github.com/rudratic/hr-backend-go/internal/domain/attendance"
	"github.com/rudratic/hr-backend-go/internal/domain/auth"
	"github.com/rudratic/hr-backend-go/internal/domain/holiday"
	"github.com/rudratic/hr-backend-go/internal/domain/kudos"
	"github.com/rudratic/hr-backend-go/internal/domain/leave"
	"github.com/rudratic/hr-backend-go/internal/domain/notification"
	"github.com/rudratic/hr-backend-go/internal/domain/user"
	"github.com/rudratic/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountNotActive):
		Forbidden(w, "Account is not active")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, user.ErrUserNotPending):
		Conflict(w, "User is not pending approval")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrApproverRoleRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "Overlapping leave request exists")
	case errors.Is(err, leave.ErrRejectReasonNeeded):
		BadRequest(w, "Rejection reason is required", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No active clock-in session", nil)
	case errors.Is(err, attendance.ErrSessionTooShort):
		BadRequest(w, "Session too short to record", nil)
	case errors.Is(err, attendance.ErrSessionTooLong):
		BadRequest(w, "Session exceeds the maximum duration", nil)
	case errors.Is(err, attendance.ErrEntryNotActive):
		Conflict(w, "Time entry is not active")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrNoFixtureData):
		NotFound(w, "No holiday data available for that year")

	// Kudos domain errors
	case errors.Is(err, kudos.ErrSelfKudos):
		BadRequest(w, "You cannot send kudos to yourself", nil)
	case errors.Is(err, kudos.ErrRecipientNotFound):
		NotFound(w, "Recipient not found")

	// Admin domain errors
	case errors.Is(err, admin.ErrConfigNotFound):
		NotFound(w, "Config key not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
