package attendance

import (
	"time"

	"github.com/rudratic/hr-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	UserID    string `json:"-"`
	ClockType string `json:"clock_type"`
	IsOnCall  bool   `json:"is_on_call"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClockType) {
		r.ClockType = string(ClockTypeInOffice)
	}
	if !validator.IsInSlice(r.ClockType, ClockTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_type",
			Message: "clock_type must be one of IN_OFFICE, REMOTE, HYBRID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	UserName    *string  `json:"user_name,omitempty"`
	ClockIn     string   `json:"clock_in"`
	ClockOut    *string  `json:"clock_out,omitempty"`
	HoursWorked *float64 `json:"hours_worked,omitempty"`
	ClockType   string   `json:"clock_type"`
	Status      string   `json:"status"`
	IsOnCall    bool     `json:"is_on_call"`
	IsLate      bool     `json:"is_late"`
}

func ToEntryResponse(e TimeEntry, loc *time.Location) EntryResponse {
	resp := EntryResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		UserName:    e.UserName,
		ClockIn:     e.ClockIn.Format(time.RFC3339),
		HoursWorked: e.HoursWorked,
		ClockType:   string(e.ClockType),
		Status:      string(e.Status),
		IsOnCall:    e.IsOnCall,
		IsLate:      e.IsLate(loc),
	}
	if e.ClockOut != nil {
		out := e.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}

type SummaryResponse struct {
	TotalHours    float64 `json:"total_hours"`
	DaysWorked    int     `json:"days_worked"`
	OvertimeHours float64 `json:"overtime_hours"`
}

type HistoryFilter struct {
	UserID string
	Page   int
	Limit  int
}

type ReportFilter struct {
	Start  time.Time
	End    time.Time
	UserID *string
}
