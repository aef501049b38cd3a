package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDeclined  BookingStatus = "declined"
)

// HouseSitType distinguishes day visits from overnight stays for house-sitting services
type HouseSitType string

const (
	HouseSitDay       HouseSitType = "day"
	HouseSitOvernight HouseSitType = "overnight"
)

// Booking represents a pet-care booking request in the system
type Booking struct {
	ID           string
	ServiceID    string
	HouseSitType HouseSitType // Имеет смысл только для услуг типа housesit
	Dates        []string     // Календарные дни YYYY-MM-DD, не обязательно подряд
	PetCount     int
	Status       BookingStatus

	PetName    string
	PetBreed   string
	OwnerName  string
	OwnerPhone string
	OwnerEmail string
	Notes      string

	// Denormalized data for history
	ServiceName   string
	PricePerDay   float64
	TotalEstimate float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds capacity (pending or confirmed)
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsOvernight returns true if the booking is an overnight house-sit stay
func (b *Booking) IsOvernight() bool {
	return b.HouseSitType == HouseSitOvernight
}

// CanTransitionTo reports whether the admin may move the booking into the given status.
// Same-status transitions are allowed and treated as no-ops.
func (b *Booking) CanTransitionTo(status BookingStatus) bool {
	if b.Status == status {
		return true
	}

	switch status {
	case StatusConfirmed:
		return b.Status == StatusPending
	case StatusDeclined:
		return b.Status == StatusPending || b.Status == StatusConfirmed
	default:
		return false
	}
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	Status     *BookingStatus // Фильтр по статусу (опционально)
	ActiveOnly bool           // Только pending и confirmed
}
