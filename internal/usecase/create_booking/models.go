package create_booking

import (
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID    string              // ID услуги из настроек
	HouseSitType domain.HouseSitType // day / overnight, только для house sitting
	Dates        []string            // Даты YYYY-MM-DD, не обязательно подряд
	PetCount     int

	PetName    string
	PetBreed   string
	OwnerName  string
	OwnerPhone string
	OwnerEmail string // Опционально, нужен для письма клиенту
	Notes      string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string
	ServiceID    string
	HouseSitType domain.HouseSitType
	Dates        []string
	PetCount     int
	Status       string

	PetName    string
	PetBreed   string
	OwnerName  string
	OwnerPhone string
	OwnerEmail string
	Notes      string

	// Денормализованные данные
	ServiceName   string
	PricePerDay   float64
	TotalEstimate float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
