package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
	"github.com/m04kA/PetCare-BookingService/internal/domain"
	settingsService "github.com/m04kA/PetCare-BookingService/internal/service/settings"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle PUT /api/v1/admin/settings
// Настройки заменяются целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req domain.Settings
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidSettings):
			// Текст ошибки валидации указывает на конкретное поле
			h.logger.Warn("PUT /admin/settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/settings - Failed to save settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Settings saved: services=%d, blockedDates=%d",
		len(saved.Services), len(saved.BlockedDates))
	handlers.RespondJSON(w, http.StatusOK, saved)
}
