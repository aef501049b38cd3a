package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/PetCare-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidParams   = "некорректные параметры запроса"
	msgServiceNotFound = "услуга не найдена"
	msgInvalidRange    = "некорректный диапазон дат"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: serviceId, from, to, houseSitType и selected (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := FromQuery(r.URL.Query())

	if err := handlers.Validate(query); err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		var validationErrs handlers.ValidationErrors
		if errors.As(err, &validationErrs) {
			handlers.RespondValidationError(w, msgInvalidParams, validationErrs)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), query.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service=%s", query.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailability.ErrInvalidRange):
			h.logger.Warn("GET /availability - Invalid range: from=%s, to=%s, %v", query.From, query.To, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability - Failed to build calendar: service=%s, error=%v", query.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Calendar built: service=%s, from=%s, to=%s, days=%d",
		query.ServiceID, query.From, query.To, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
