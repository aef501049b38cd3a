package engine

import (
	"sort"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// BuildScheduleMap сворачивает активные бронирования в агрегаты по датам.
// Карта строится заново на каждый проход оценки и нигде не хранится.
func BuildScheduleMap(bookings []*domain.Booking, settings *domain.Settings) domain.ScheduleMap {
	schedule := make(domain.ScheduleMap)

	for _, b := range bookings {
		// Отклонённые бронирования освобождают вместимость сразу
		if b == nil || !b.IsActive() {
			continue
		}

		serviceType := settings.ServiceTypeOf(b.ServiceID)

		for _, date := range b.Dates {
			day := dayOf(schedule, date)
			day.BookingIDs = append(day.BookingIDs, b.ID)

			switch serviceType {
			case domain.ServiceTypeAtHome:
				day.AtHomePets += petCountOf(b)
			case domain.ServiceTypeHouseSit:
				if b.IsOvernight() {
					day.Overnights++
				} else {
					day.HouseVisits++
				}
			case domain.ServiceTypeVisit:
				day.Visits++
			}
		}

		if serviceType == domain.ServiceTypeHouseSit && b.IsOvernight() {
			markBuffer(schedule, b.Dates, settings.BufferDays)
		}
	}

	return schedule
}

// markBuffer помечает bufferDays дней до первой и после последней даты ночёвки.
// Счётчики при этом не меняются.
func markBuffer(schedule domain.ScheduleMap, dates []string, bufferDays int) {
	if bufferDays <= 0 || len(dates) == 0 {
		return
	}

	sorted := make([]string, len(dates))
	copy(sorted, dates)
	sort.Strings(sorted)

	first, last := sorted[0], sorted[len(sorted)-1]
	for i := 1; i <= bufferDays; i++ {
		markBufferDay(schedule, first, -i)
		markBufferDay(schedule, last, i)
	}
}

func markBufferDay(schedule domain.ScheduleMap, base string, offset int) {
	date, err := AddDays(base, offset)
	if err != nil {
		// Некорректные даты отсекаются при создании бронирования
		return
	}
	dayOf(schedule, date).IsOvernightBuffer = true
}

func dayOf(schedule domain.ScheduleMap, date string) *domain.DayAggregate {
	day, ok := schedule[date]
	if !ok {
		day = &domain.DayAggregate{BookingIDs: []string{}}
		schedule[date] = day
	}
	return day
}

func petCountOf(b *domain.Booking) int {
	if b.PetCount < 1 {
		return 1
	}
	return b.PetCount
}
