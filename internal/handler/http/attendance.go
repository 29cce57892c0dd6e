package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/attendance"
	"github.com/rudratic/hr-backend-go/internal/handler/http/response"
	"github.com/rudratic/hr-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Active(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)

	Reset(w http.ResponseWriter, r *http.Request)
	ActiveUsers(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler. An empty body defaults to an
// in-office entry.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req attendance.ClockInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("ClockIn decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.UserID = userID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in successfully", entry)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	entry, err := h.attendanceService.ClockOut(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", entry)
}

// Active implements AttendanceHandler. Returns the caller's open session.
func (h *AttendanceHandlerImpl) Active(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	entry, err := h.attendanceService.Active(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// History implements AttendanceHandler.
func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	query := r.URL.Query()
	filter := attendance.HistoryFilter{UserID: userID}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	entries, total, err := h.attendanceService.History(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, entries, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

// Summary implements AttendanceHandler. Trailing seven days.
func (h *AttendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	summary, err := h.attendanceService.Summary(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Reset implements AttendanceHandler. Admin correction for a stuck entry.
func (h *AttendanceHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	entryID := chi.URLParam(r, "id")
	if entryID == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	entry, err := h.attendanceService.Reset(r.Context(), entryID, adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry reset successfully", entry)
}

// ActiveUsers implements AttendanceHandler. All currently open sessions.
func (h *AttendanceHandlerImpl) ActiveUsers(w http.ResponseWriter, r *http.Request) {
	entries, err := h.attendanceService.ActiveUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Report implements AttendanceHandler. Window defaults to the current
// month when start and end are omitted.
func (h *AttendanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter attendance.ReportFilter
	if start := query.Get("start"); start != "" {
		parsed, ok := validator.IsValidDate(start)
		if !ok {
			response.BadRequest(w, "start must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		filter.Start = parsed
	}
	if end := query.Get("end"); end != "" {
		parsed, ok := validator.IsValidDate(end)
		if !ok {
			response.BadRequest(w, "end must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		// Include the whole end day
		filter.End = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if userID := query.Get("user_id"); userID != "" {
		filter.UserID = &userID
	}

	entries, err := h.attendanceService.Report(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
