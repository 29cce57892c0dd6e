package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rudratic/hr-backend-go/internal/domain/kudos"
	"github.com/rudratic/hr-backend-go/internal/handler/http/response"
)

type KudosHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Received(w http.ResponseWriter, r *http.Request)
}

type KudosHandlerImpl struct {
	kudosService kudos.Service
}

func NewKudosHandler(kudosService kudos.Service) KudosHandler {
	return &KudosHandlerImpl{kudosService: kudosService}
}

// Create implements KudosHandler.
func (h *KudosHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req kudos.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create kudos decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.FromUserID = userID

	created, err := h.kudosService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Kudos sent successfully", created)
}

// List implements KudosHandler. Company-wide feed.
func (h *KudosHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	feed, err := h.kudosService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, feed)
}

// Received implements KudosHandler. The caller's own kudos.
func (h *KudosHandlerImpl) Received(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	received, err := h.kudosService.Received(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, received)
}
