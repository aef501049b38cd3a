package list_services

import (
	"net/http"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.PublicInfo(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to load services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", len(info.Services))
	handlers.RespondJSON(w, http.StatusOK, info)
}
