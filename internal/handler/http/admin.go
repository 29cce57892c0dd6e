package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/admin"
	"github.com/rudratic/hr-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	AuditLogs(w http.ResponseWriter, r *http.Request)

	GetConfig(w http.ResponseWriter, r *http.Request)
	ListConfigs(w http.ResponseWriter, r *http.Request)
	SetConfig(w http.ResponseWriter, r *http.Request)
	BulkSetConfig(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	adminService admin.Service
}

func NewAdminHandler(adminService admin.Service) AdminHandler {
	return &AdminHandlerImpl{adminService: adminService}
}

// Overview implements AdminHandler.
func (h *AdminHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.adminService.Overview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// Stats implements AdminHandler. Row counts for the database explorer.
func (h *AdminHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// AuditLogs implements AdminHandler.
func (h *AdminHandlerImpl) AuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.adminService.AuditLogs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// GetConfig implements AdminHandler.
func (h *AdminHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		response.BadRequest(w, "Config key is required", nil)
		return
	}

	cfg, err := h.adminService.Config(r.Context(), key)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg.Value)
}

// ListConfigs implements AdminHandler.
func (h *AdminHandlerImpl) ListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.adminService.Configs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make(map[string]interface{}, len(configs))
	for _, cfg := range configs {
		result[cfg.Key] = cfg.Value
	}

	response.Success(w, result)
}

// SetConfig implements AdminHandler.
func (h *AdminHandlerImpl) SetConfig(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req admin.SetConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if key := chi.URLParam(r, "key"); key != "" {
		req.Key = key
	}

	cfg, err := h.adminService.SetConfig(r.Context(), adminID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Config saved successfully", cfg.Value)
}

// BulkSetConfig implements AdminHandler.
func (h *AdminHandlerImpl) BulkSetConfig(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req admin.BulkConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BulkSetConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.adminService.BulkSetConfig(r.Context(), adminID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Configs saved successfully", nil)
}
