package admin

import (
	"time"

	"github.com/rudratic/hr-backend-go/internal/pkg/validator"
)

type AuditLogResponse struct {
	ID        string                 `json:"id"`
	Action    string                 `json:"action"`
	AdminID   string                 `json:"admin_id"`
	AdminName *string                `json:"admin_name,omitempty"`
	TargetID  *string                `json:"target_id,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt string                 `json:"created_at"`
}

func ToAuditLogResponse(l AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        l.ID,
		Action:    l.Action,
		AdminID:   l.AdminID,
		AdminName: l.AdminName,
		TargetID:  l.TargetID,
		Details:   l.Details,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

type SetConfigRequest struct {
	Key   string                 `json:"key"`
	Value map[string]interface{} `json:"value"`
}

func (r *SetConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key is required",
		})
	}
	if len(r.Key) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkConfigRequest struct {
	Configs []SetConfigRequest `json:"configs"`
}

func (r *BulkConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Configs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "configs",
			Message: "configs must not be empty",
		})
	}
	for _, cfg := range r.Configs {
		if validator.IsEmpty(cfg.Key) {
			errs = append(errs, validator.ValidationError{
				Field:   "configs",
				Message: "every config entry requires a key",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
