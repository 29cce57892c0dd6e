package leave

import (
	"time"

	"github.com/rudratic/hr-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	UserID    string `json:"-"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`

	// Parsed during Validate
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	// Type
	if !validator.IsInSlice(r.Type, Types) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of SICK, CASUAL, VACATION, MATERNITY, UNPAID",
		})
	}

	// Dates
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	// Reason is optional on submission; only rejections demand one.
	if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.Start = start
	r.End = end
	return nil
}

type RejectRequest struct {
	RequestID  string `json:"-"`
	ApproverID string `json:"-"`
	Reason     string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	UserName        *string `json:"user_name,omitempty"`
	Type            string  `json:"type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Days            int     `json:"days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func ToRequestResponse(req Request) RequestResponse {
	return RequestResponse{
		ID:              req.ID,
		UserID:          req.UserID,
		UserName:        req.UserName,
		Type:            string(req.Type),
		StartDate:       req.StartDate.Format("2006-01-02"),
		EndDate:         req.EndDate.Format("2006-01-02"),
		Days:            req.Days(),
		Reason:          req.Reason,
		Status:          string(req.Status),
		RejectionReason: req.RejectionReason,
		ApprovedBy:      req.ApprovedBy,
		CreatedAt:       req.CreatedAt.Format(time.RFC3339),
	}
}

type BalanceResponse struct {
	Year   int `json:"year"`
	Sick   int `json:"sick"`
	Casual int `json:"casual"`
	Earned int `json:"earned"`
}

func ToBalanceResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		Year:   b.Year,
		Sick:   b.Sick,
		Casual: b.Casual,
		Earned: b.Earned,
	}
}

type ListFilter struct {
	UserID *string
	Status *string
	Page   int
	Limit  int
}
