package kudos

import (
	"time"

	"github.com/rudratic/hr-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	FromUserID string `json:"-"`
	ToUserID   string `json:"to_user_id"`
	Category   string `json:"category"`
	Message    string `json:"message"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ToUserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_user_id",
			Message: "to_user_id is required",
		})
	}

	if validator.IsEmpty(r.Category) {
		r.Category = "APPRECIATION"
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}
	if len(r.Message) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID           string  `json:"id"`
	FromUserID   string  `json:"from_user_id"`
	FromUserName *string `json:"from_user_name,omitempty"`
	ToUserID     string  `json:"to_user_id"`
	ToUserName   *string `json:"to_user_name,omitempty"`
	Category     string  `json:"category"`
	Message      string  `json:"message"`
	CreatedAt    string  `json:"created_at"`
}

func ToResponse(k Kudos) Response {
	return Response{
		ID:           k.ID,
		FromUserID:   k.FromUserID,
		FromUserName: k.FromUserName,
		ToUserID:     k.ToUserID,
		ToUserName:   k.ToUserName,
		Category:     k.Category,
		Message:      k.Message,
		CreatedAt:    k.CreatedAt.Format(time.RFC3339),
	}
}
