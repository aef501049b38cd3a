package domain

// DayAggregate holds capacity consumption for a single calendar date
type DayAggregate struct {
	AtHomePets        int      // Сумма petCount по активным athome бронированиям
	HouseVisits       int      // Дневные визиты housesit
	Overnights        int      // Ночёвки housesit
	Visits            int      // Drop-in визиты (без лимита)
	BookingIDs        []string // Бронирования, затрагивающие дату
	IsOvernightBuffer bool     // Переходный день вокруг ночёвки
}

// ScheduleMap maps a date (YYYY-MM-DD) to its aggregate.
// It is derived from bookings on every evaluation and never persisted.
type ScheduleMap map[string]*DayAggregate

// Availability is the evaluator's decision for one date and service track
type Availability struct {
	Available bool
	SpotsLeft int
	Reason    string // Пустая строка, если дата доступна
}

// IsFull returns true if no spots are left
func (a Availability) IsFull() bool {
	return a.SpotsLeft <= 0
}
