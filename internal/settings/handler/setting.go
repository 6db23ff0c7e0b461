package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"eventdesk/internal/settings/service"
	httputil "eventdesk/pkg/http"
	"eventdesk/pkg/logger"
)

type SettingHandler struct {
	service service.SettingService
	log     *logger.Logger
}

func NewSettingHandler(service service.SettingService, log *logger.Logger) *SettingHandler {
	return &SettingHandler{
		service: service,
		log:     log,
	}
}

type eventLimitResponse struct {
	Limit int `json:"limit"`
}

type eventLimitRequest struct {
	Limit int `json:"limit"`
}

func (h *SettingHandler) GetEventLimit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, err := h.service.EventLimit(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetEventLimit", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, eventLimitResponse{Limit: limit}); err != nil {
		h.log.Error("failed to write success response", "handler", "GetEventLimit", "error", err)
	}
}

func (h *SettingHandler) SetEventLimit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req eventLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "SetEventLimit", "error", writeErr)
		}
		return
	}

	if err := h.service.SetEventLimit(r.Context(), req.Limit); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SetEventLimit", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, eventLimitResponse{Limit: req.Limit}); err != nil {
		h.log.Error("failed to write success response", "handler", "SetEventLimit", "error", err)
	}
}

func (h *SettingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/settings/event-limit", h.GetEventLimit)
	router.PUT("/api/v1/settings/event-limit", h.SetEventLimit)
}
