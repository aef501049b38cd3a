package engine

import (
	"fmt"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// Rejection описывает первую дату, не прошедшую проверку при отправке бронирования
type Rejection struct {
	Date      string
	Reason    string
	SpotsLeft int
}

// Error реализует error, чтобы отказ можно было вернуть через errors.As
func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Date, r.Reason)
}

// ValidateSubmission повторно проверяет каждую дату кандидата против свежей карты расписания.
// Бронирование принимается целиком или не принимается вовсе, частичных бронирований нет.
// Возвращает nil, если все даты проходят.
func ValidateSubmission(
	dates []string,
	serviceType domain.ServiceType,
	subType domain.HouseSitType,
	petCount int,
	schedule domain.ScheduleMap,
	settings *domain.Settings,
) *Rejection {
	for _, date := range dates {
		avail := GetAvailability(date, serviceType, subType, schedule, settings)
		if !avail.Available {
			return &Rejection{Date: date, Reason: avail.Reason, SpotsLeft: avail.SpotsLeft}
		}

		// Несколько питомцев должны поместиться на каждую дату
		if serviceType == domain.ServiceTypeAtHome && petCount > avail.SpotsLeft {
			return &Rejection{
				Date:      date,
				Reason:    fmt.Sprintf(domain.ReasonNotEnoughSpots, date, avail.SpotsLeft),
				SpotsLeft: avail.SpotsLeft,
			}
		}
	}

	return nil
}
