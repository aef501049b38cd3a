package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/internal/engine"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxDates int) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}

	if len(req.Dates) > maxDates {
		return fmt.Errorf("%w: at most %d dates per booking", ErrInvalidInput, maxDates)
	}

	if req.PetCount < 1 {
		return fmt.Errorf("%w: petCount must be at least 1", ErrInvalidInput)
	}

	if req.HouseSitType != "" && req.HouseSitType != domain.HouseSitDay && req.HouseSitType != domain.HouseSitOvernight {
		return fmt.Errorf("%w: unknown houseSitType %q", ErrInvalidInput, req.HouseSitType)
	}

	if strings.TrimSpace(req.PetName) == "" {
		return fmt.Errorf("%w: petName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.OwnerName) == "" {
		return fmt.Errorf("%w: ownerName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.OwnerPhone) == "" {
		return fmt.Errorf("%w: ownerPhone is required", ErrInvalidInput)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validatePetCount ограничивает house sitting и визиты одним питомцем
func validatePetCount(serviceType domain.ServiceType, petCount int) error {
	if serviceType != domain.ServiceTypeAtHome && petCount > 1 {
		return fmt.Errorf("%w: %s bookings take one pet, got %d", ErrInvalidInput, serviceType, petCount)
	}
	return nil
}

// validateDates проверяет формат, уникальность, прошедшие и заблокированные даты
func validateDates(dates []string, today string, settings *domain.Settings) error {
	seen := make(map[string]struct{}, len(dates))

	for _, date := range dates {
		if _, err := engine.ParseDate(date); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}

		if _, ok := seen[date]; ok {
			return fmt.Errorf("%w: duplicate date %s", ErrInvalidDate, date)
		}
		seen[date] = struct{}{}

		if engine.IsBefore(date, today) {
			return fmt.Errorf("%w: %s", ErrDateInPast, date)
		}

		if settings.IsBlocked(date) {
			return fmt.Errorf("%w: %s", ErrDateBlocked, date)
		}
	}

	return nil
}

// resolveService находит включённую услугу
func resolveService(settings *domain.Settings, serviceID string) (*domain.Service, error) {
	service := settings.FindService(serviceID)
	if service == nil || !service.Enabled {
		return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, serviceID)
	}
	return service, nil
}

// serviceDisplayName добавляет к названию house sitting тип визита
func serviceDisplayName(service *domain.Service, subType domain.HouseSitType) string {
	if service.Type != domain.ServiceTypeHouseSit {
		return service.Name
	}
	if subType == domain.HouseSitOvernight {
		return service.Name + " (Overnight)"
	}
	return service.Name + " (Day Visit)"
}

// rejectionKind сводит причину отказа к метке метрики с ограниченным набором значений
func rejectionKind(reason string) string {
	switch {
	case reason == domain.ReasonAtMaxPetCapacity:
		return "at_capacity"
	case reason == domain.ReasonBufferDay:
		return "buffer_day"
	case reason == domain.ReasonOvernightBooked:
		return "overnight_booked"
	case strings.HasPrefix(reason, "Max "):
		return "house_visits"
	case strings.HasPrefix(reason, "Not enough spots"):
		return "not_enough_spots"
	default:
		return "other"
	}
}
