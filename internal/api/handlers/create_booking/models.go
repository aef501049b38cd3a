package create_booking

import (
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	createBooking "github.com/m04kA/PetCare-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID    string   `json:"service" validate:"required"`
	HouseSitType string   `json:"houseSitType,omitempty" validate:"omitempty,oneof=day overnight"`
	Dates        []string `json:"dates" validate:"required,min=1,dive,date"`
	PetCount     int      `json:"petCount" validate:"omitempty,min=1"`
	PetName      string   `json:"petName" validate:"required,max=100"`
	PetBreed     string   `json:"petBreed,omitempty" validate:"max=100"`
	OwnerName    string   `json:"ownerName" validate:"required,max=100"`
	OwnerPhone   string   `json:"ownerPhone" validate:"required,max=30"`
	OwnerEmail   string   `json:"ownerEmail,omitempty" validate:"omitempty,email"`
	Notes        string   `json:"notes,omitempty" validate:"max=1000"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string   `json:"id"`
	ServiceID     string   `json:"service"`
	HouseSitType  string   `json:"houseSitType,omitempty"`
	Dates         []string `json:"dates"`
	PetCount      int      `json:"petCount"`
	Status        string   `json:"status"`
	PetName       string   `json:"petName"`
	PetBreed      string   `json:"petBreed,omitempty"`
	OwnerName     string   `json:"ownerName"`
	OwnerPhone    string   `json:"ownerPhone"`
	OwnerEmail    string   `json:"ownerEmail,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	ServiceName   string   `json:"serviceName"`
	PricePerDay   float64  `json:"pricePerDay"`
	TotalEstimate float64  `json:"totalEstimate"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	petCount := r.PetCount
	if petCount == 0 {
		petCount = 1
	}

	return &createBooking.Request{
		ServiceID:    r.ServiceID,
		HouseSitType: domain.HouseSitType(r.HouseSitType),
		Dates:        r.Dates,
		PetCount:     petCount,
		PetName:      r.PetName,
		PetBreed:     r.PetBreed,
		OwnerName:    r.OwnerName,
		OwnerPhone:   r.OwnerPhone,
		OwnerEmail:   r.OwnerEmail,
		Notes:        r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ServiceID:     resp.ServiceID,
		HouseSitType:  string(resp.HouseSitType),
		Dates:         resp.Dates,
		PetCount:      resp.PetCount,
		Status:        resp.Status,
		PetName:       resp.PetName,
		PetBreed:      resp.PetBreed,
		OwnerName:     resp.OwnerName,
		OwnerPhone:    resp.OwnerPhone,
		OwnerEmail:    resp.OwnerEmail,
		Notes:         resp.Notes,
		ServiceName:   resp.ServiceName,
		PricePerDay:   resp.PricePerDay,
		TotalEstimate: resp.TotalEstimate,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
