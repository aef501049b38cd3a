package models

import (
	"errors"
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BookedPetsRequest запрос на загрузку at-home по дням
type BookedPetsRequest struct {
	From *string `json:"from,omitempty"` // Начало периода YYYY-MM-DD (опционально)
	To   *string `json:"to,omitempty"`   // Конец периода включительно (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string   `json:"id"`
	ServiceID    string   `json:"service"`
	HouseSitType string   `json:"houseSitType,omitempty"`
	Dates        []string `json:"dates"`
	PetCount     int      `json:"petCount"`
	Status       string   `json:"status"`

	PetName    string `json:"petName"`
	PetBreed   string `json:"petBreed,omitempty"`
	OwnerName  string `json:"ownerName"`
	OwnerPhone string `json:"ownerPhone"`
	OwnerEmail string `json:"ownerEmail,omitempty"`
	Notes      string `json:"notes,omitempty"`

	// Денормализованные данные
	ServiceName   string  `json:"serviceName"`
	PricePerDay   float64 `json:"pricePerDay"`
	TotalEstimate float64 `json:"totalEstimate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings     []BookingResponse `json:"bookings"`
	Total        int               `json:"total"`
	PendingCount int               `json:"pendingCount"` // Заявки, ожидающие решения владельца
}

// BookedPetsResponse загрузка at-home по дням для админского календаря
type BookedPetsResponse struct {
	Days          map[string]int `json:"days"`
	MaxPetsAtHome int            `json:"maxPetsAtHome"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	dates := b.Dates
	if dates == nil {
		dates = []string{}
	}

	return &BookingResponse{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		HouseSitType:  string(b.HouseSitType),
		Dates:         dates,
		PetCount:      b.PetCount,
		Status:        string(b.Status),
		PetName:       b.PetName,
		PetBreed:      b.PetBreed,
		OwnerName:     b.OwnerName,
		OwnerPhone:    b.OwnerPhone,
		OwnerEmail:    b.OwnerEmail,
		Notes:         b.Notes,
		ServiceName:   b.ServiceName,
		PricePerDay:   b.PricePerDay,
		TotalEstimate: b.TotalEstimate,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
			if booking.Status == domain.StatusPending {
				resp.PendingCount++
			}
		}
	}
	resp.Total = len(resp.Bookings)

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.AllStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
