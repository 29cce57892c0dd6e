package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/user"
	"github.com/rudratic/hr-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)

	ListUsers(w http.ResponseWriter, r *http.Request)
	ListPendingUsers(w http.ResponseWriter, r *http.Request)
	ApproveUser(w http.ResponseWriter, r *http.Request)
	RejectUser(w http.ResponseWriter, r *http.Request)
	ChangeUserRole(w http.ResponseWriter, r *http.Request)
	ListRoles(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// GetProfile implements UserHandler.
func (h *UserHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	profile, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// UpdateProfile implements UserHandler.
func (h *UserHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	profile, err := h.userService.UpdateProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", profile)
}

// ListUsers implements UserHandler.
func (h *UserHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := user.ListUsersFilter{}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}
	if department := query.Get("department"); department != "" {
		filter.Department = &department
	}
	if search := query.Get("search"); search != "" {
		filter.Search = &search
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	users, total, err := h.userService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, users, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

// ListPendingUsers implements UserHandler.
func (h *UserHandlerImpl) ListPendingUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.Pending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// ApproveUser implements UserHandler.
func (h *UserHandlerImpl) ApproveUser(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	targetID := chi.URLParam(r, "id")
	if targetID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	profile, err := h.userService.Approve(r.Context(), targetID, adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User approved successfully", profile)
}

// RejectUser implements UserHandler.
func (h *UserHandlerImpl) RejectUser(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	targetID := chi.URLParam(r, "id")
	if targetID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	profile, err := h.userService.Reject(r.Context(), targetID, adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User rejected", profile)
}

// ChangeUserRole implements UserHandler.
func (h *UserHandlerImpl) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	targetID := chi.URLParam(r, "id")
	if targetID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangeUserRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Role == "" {
		response.BadRequest(w, "Role is required", nil)
		return
	}

	profile, err := h.userService.ChangeRole(r.Context(), targetID, user.Role(req.Role), adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User role updated successfully", profile)
}

// ListRoles implements UserHandler.
func (h *UserHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.userService.Roles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	type roleResponse struct {
		ID          string           `json:"id"`
		Name        string           `json:"name"`
		Permissions user.Permissions `json:"permissions"`
	}

	responses := make([]roleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, roleResponse{
			ID:          role.ID,
			Name:        string(role.Name),
			Permissions: role.Permissions,
		})
	}

	response.Success(w, responses)
}
