package models

import "github.com/m04kA/PetCare-BookingService/internal/domain"

// PublicInfoResponse публичные данные бизнеса для формы бронирования.
// PIN и ключи EmailJS сюда не попадают.
type PublicInfoResponse struct {
	Services      []domain.Service     `json:"services"`
	BusinessHours domain.BusinessHours `json:"businessHours"`
	OwnerName     string               `json:"ownerName"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email"`
	Venmo         string               `json:"venmo"`
	Zelle         string               `json:"zelle"`
	About         string               `json:"about"`
	MaxPetsAtHome int                  `json:"maxPetsAtHome"`
}

// FromDomainSettings собирает публичный ответ из настроек
func FromDomainSettings(s *domain.Settings) *PublicInfoResponse {
	return &PublicInfoResponse{
		Services:      s.EnabledServices(),
		BusinessHours: s.BusinessHours,
		OwnerName:     s.OwnerName,
		Phone:         s.Phone,
		Email:         s.Email,
		Venmo:         s.Venmo,
		Zelle:         s.Zelle,
		About:         s.About,
		MaxPetsAtHome: s.PetsAtHomeLimit(),
	}
}
