package get_availability

import "github.com/m04kA/PetCare-BookingService/internal/domain"

// Request модель запроса календаря доступности
type Request struct {
	ServiceID    string              // ID услуги
	HouseSitType domain.HouseSitType // day / overnight, только для house sitting
	From         string              // Первая дата диапазона, YYYY-MM-DD
	To           string              // Последняя дата диапазона включительно
	Selected     []string            // Уже выбранные даты, для расчёта maxPetsAllowed
}

// Response модель ответа с доступностью по дням
type Response struct {
	ServiceID      string
	ServiceType    domain.ServiceType
	HouseSitType   domain.HouseSitType
	Days           []Day
	MaxPetsAllowed int // Сколько питомцев влезает на все выбранные даты
}

// Day доступность одного дня календаря
type Day struct {
	Date       string
	Available  bool
	SpotsLeft  int
	Reason     string
	Blocked    bool // Дата закрыта владельцем
	Past       bool // Дата раньше сегодняшней
	Buffer     bool // Переходный день вокруг ночёвки
	AlmostFull bool // Осталось не больше 30% мест at-home
}
