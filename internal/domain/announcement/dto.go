package announcement

import (
	"time"

	"github.com/rudratic/hr-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	AuthorID  string  `json:"-"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Type      string  `json:"type"`
	Priority  string  `json:"priority"`
	EventDate *string `json:"event_date,omitempty"`

	// Parsed during Validate
	ParsedEventDate *time.Time `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		r.Type = "GENERAL"
	}
	if validator.IsEmpty(r.Priority) {
		r.Priority = "NORMAL"
	}

	if r.EventDate != nil {
		date, ok := validator.IsValidDate(*r.EventDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "event_date",
				Message: "event_date must be a valid date (YYYY-MM-DD)",
			})
		} else {
			r.ParsedEventDate = &date
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Type       string  `json:"type"`
	Priority   string  `json:"priority"`
	EventDate  *string `json:"event_date,omitempty"`
	AuthorID   string  `json:"author_id"`
	AuthorName *string `json:"author_name,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func ToResponse(a Announcement) Response {
	resp := Response{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		Type:       a.Type,
		Priority:   a.Priority,
		AuthorID:   a.AuthorID,
		AuthorName: a.AuthorName,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
	if a.EventDate != nil {
		date := a.EventDate.Format("2006-01-02")
		resp.EventDate = &date
	}
	return resp
}
