package engine

import "github.com/m04kA/PetCare-BookingService/internal/domain"

// BookedPetsPerDay считает питомцев at-home по датам для админского календаря
func BookedPetsPerDay(bookings []*domain.Booking, settings *domain.Settings) map[string]int {
	counts := make(map[string]int)

	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		if settings.ServiceTypeOf(b.ServiceID) != domain.ServiceTypeAtHome {
			continue
		}
		for _, date := range b.Dates {
			counts[date] += petCountOf(b)
		}
	}

	return counts
}

// MaxPetsForDates возвращает, сколько питомцев можно привезти на все выбранные даты.
// Для at-home это минимум свободных мест по датам (но не меньше 1), для остальных треков 1.
func MaxPetsForDates(
	dates []string,
	serviceType domain.ServiceType,
	subType domain.HouseSitType,
	schedule domain.ScheduleMap,
	settings *domain.Settings,
) int {
	if serviceType != domain.ServiceTypeAtHome {
		return 1
	}
	if len(dates) == 0 {
		return settings.PetsAtHomeLimit()
	}

	minSpots := settings.PetsAtHomeLimit()
	for _, date := range dates {
		if spots := GetAvailability(date, serviceType, subType, schedule, settings).SpotsLeft; spots < minSpots {
			minSpots = spots
		}
	}

	if minSpots < 1 {
		return 1
	}
	return minSpots
}
