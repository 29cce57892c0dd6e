package http

import (
	"net/http"
	"time"

	"github.com/rudratic/hr-backend-go/internal/domain/calendar"
	"github.com/rudratic/hr-backend-go/internal/handler/http/response"
	"github.com/rudratic/hr-backend-go/internal/pkg/validator"
)

type CalendarHandler interface {
	Events(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.Service
}

func NewCalendarHandler(calendarService calendar.Service) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// Events implements CalendarHandler. Omitted bounds default to the
// current month.
func (h *CalendarHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var start, end time.Time
	if raw := query.Get("start"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "start must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		start = parsed
	}
	if raw := query.Get("end"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "end must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		end = parsed
	}

	events, err := h.calendarService.Events(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}
