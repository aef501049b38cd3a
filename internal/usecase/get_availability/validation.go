package get_availability

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/internal/engine"
)

// validateRequest валидирует входные данные запроса и возвращает даты диапазона
func validateRequest(req *Request, maxRangeDays int) ([]string, error) {
	if strings.TrimSpace(req.ServiceID) == "" {
		return nil, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.HouseSitType != "" && req.HouseSitType != domain.HouseSitDay && req.HouseSitType != domain.HouseSitOvernight {
		return nil, fmt.Errorf("%w: unknown houseSitType %q", ErrInvalidInput, req.HouseSitType)
	}

	dates, err := engine.DatesBetween(req.From, req.To, maxRangeDays)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidDate) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	for _, date := range req.Selected {
		if _, err := engine.ParseDate(date); err != nil {
			return nil, fmt.Errorf("%w: selected: %v", ErrInvalidInput, err)
		}
	}

	return dates, nil
}
