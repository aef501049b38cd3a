package engine

import (
	"fmt"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// GetAvailability решает, можно ли принять бронирование на дату для трека serviceType/subType.
// Функция чистая и не смотрит на blockedDates: заблокированные даты отсекает календарь.
func GetAvailability(
	date string,
	serviceType domain.ServiceType,
	subType domain.HouseSitType,
	schedule domain.ScheduleMap,
	settings *domain.Settings,
) domain.Availability {
	maxPets := settings.PetsAtHomeLimit()
	maxVisits := settings.HouseVisitsLimit()
	maxOvernights := settings.OvernightsLimit()

	day, ok := schedule[date]
	if !ok {
		// Пустой день полностью свободен
		switch serviceType {
		case domain.ServiceTypeAtHome:
			return available(maxPets)
		case domain.ServiceTypeHouseSit:
			if subType == domain.HouseSitOvernight {
				return available(maxOvernights)
			}
			return available(maxVisits)
		default:
			return available(domain.UnboundedSpots)
		}
	}

	switch serviceType {
	// Трек 1: at-home, учитываются только питомцы дома
	case domain.ServiceTypeAtHome:
		spotsLeft := maxPets - day.AtHomePets
		if spotsLeft <= 0 {
			return unavailable(domain.ReasonAtMaxPetCapacity)
		}
		return available(spotsLeft)

	// Трек 2: house sitting, дневные визиты и ночёвки друг друга не блокируют
	case domain.ServiceTypeHouseSit:
		if subType == domain.HouseSitOvernight {
			// Буфер блокирует только если на дату ещё не приходится ночёвка
			if day.IsOvernightBuffer && day.Overnights == 0 {
				return unavailable(domain.ReasonBufferDay)
			}
			spotsLeft := maxOvernights - day.Overnights
			if spotsLeft <= 0 {
				return unavailable(domain.ReasonOvernightBooked)
			}
			return available(spotsLeft)
		}

		spotsLeft := maxVisits - day.HouseVisits
		if spotsLeft <= 0 {
			return unavailable(fmt.Sprintf(domain.ReasonMaxHouseVisits, maxVisits))
		}
		return available(spotsLeft)

	// Drop-in визиты доступны всегда
	default:
		return available(domain.UnboundedSpots)
	}
}

func available(spotsLeft int) domain.Availability {
	return domain.Availability{Available: true, SpotsLeft: spotsLeft}
}

func unavailable(reason string) domain.Availability {
	return domain.Availability{Available: false, SpotsLeft: 0, Reason: reason}
}
