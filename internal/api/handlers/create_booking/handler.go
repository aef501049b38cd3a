package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
	"github.com/m04kA/PetCare-BookingService/internal/engine"
	createBooking "github.com/m04kA/PetCare-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "запрос не прошёл валидацию"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidDate        = "некорректная или повторяющаяся дата бронирования"
	msgDateInPast         = "дата бронирования уже прошла"
	msgDateBlocked        = "выбранная дата закрыта для бронирования"
	msgDateUnavailable    = "выбранная дата недоступна"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		var validationErrs handlers.ValidationErrors
		if errors.As(err, &validationErrs) {
			handlers.RespondValidationError(w, msgValidationFailed, validationErrs)
			return
		}
		handlers.RespondBadRequest(w, msgValidationFailed)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDateUnavailable):
			// Причина отказа уходит клиенту как есть, вместе с датой
			h.logger.Warn("POST /bookings - Date unavailable: service=%s, %v", req.ServiceID, err)
			var rejection *engine.Rejection
			if errors.As(err, &rejection) {
				handlers.RespondDateConflict(w, rejection.Date, rejection.Reason)
				return
			}
			handlers.RespondConflict(w, msgDateUnavailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: service=%s, %v", req.ServiceID, err)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: service=%s, %v", req.ServiceID, err)
			handlers.RespondBadRequest(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: service=%s, %v", req.ServiceID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: service=%s, %v", req.ServiceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service=%s, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, service=%s, dates=%d",
		result.ID, result.ServiceID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
