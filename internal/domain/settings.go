package domain

// ServiceType determines which capacity pool a booking draws from
type ServiceType string

const (
	ServiceTypeAtHome   ServiceType = "athome"   // Boarding + day care, общий лимит питомцев
	ServiceTypeHouseSit ServiceType = "housesit" // Day visits and overnights at the client's home
	ServiceTypeVisit    ServiceType = "visit"    // Drop-in visits, без лимитов
)

// IsValid returns true if the service type is one of the known tracks
func (t ServiceType) IsValid() bool {
	return t == ServiceTypeAtHome || t == ServiceTypeHouseSit || t == ServiceTypeVisit
}

// Service represents a bookable service offered by the business
type Service struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Price          float64     `json:"price"`
	PriceOvernight *float64    `json:"priceOvernight,omitempty"`
	Enabled        bool        `json:"enabled"`
	Description    string      `json:"description"`
	Type           ServiceType `json:"type"`
}

// PriceFor returns the per-day price for the given house-sit subtype.
// Overnight stays use PriceOvernight when it is set and positive.
func (s *Service) PriceFor(subType HouseSitType) float64 {
	if s.Type == ServiceTypeHouseSit && subType == HouseSitOvernight &&
		s.PriceOvernight != nil && *s.PriceOvernight > 0 {
		return *s.PriceOvernight
	}
	return s.Price
}

// BusinessHours describes the working day shown to clients
type BusinessHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EmailConfig holds EmailJS template configuration
type EmailConfig struct {
	Enabled           bool   `json:"enabled"`
	ServiceID         string `json:"serviceId"`
	PublicKey         string `json:"publicKey"`
	OwnerTemplateID   string `json:"ownerTemplateId"`
	ClientTemplateID  string `json:"clientTemplateId"`
	ConfirmTemplateID string `json:"confirmTemplateId"`
	DeclineTemplateID string `json:"declineTemplateId"`
}

// IsConfigured returns true if e-mails can be sent at all
func (c *EmailConfig) IsConfigured() bool {
	return c.Enabled && c.ServiceID != "" && c.PublicKey != ""
}

// Settings is the global capacity and business configuration.
// Stored as a single document; the admin API is its only writer.
type Settings struct {
	MaxPetsAtHome         int       `json:"maxPetsAtHome"`
	MaxHouseVisitsPerDay  int       `json:"maxHouseVisitsPerDay"`
	MaxOvernightsPerNight int       `json:"maxOvernightsPerNight"`
	BufferDays            int       `json:"bufferDays"`
	BlockedDates          []string  `json:"blockedDates"`
	Services              []Service `json:"services"`

	BusinessHours        BusinessHours `json:"businessHours"`
	OwnerName            string        `json:"ownerName"`
	Phone                string        `json:"phone"`
	Email                string        `json:"email"`
	Venmo                string        `json:"venmo"`
	Zelle                string        `json:"zelle"`
	About                string        `json:"about"`
	NotificationsEnabled bool          `json:"notificationsEnabled"`
	AdminPIN             string        `json:"adminPin"`
	EmailJS              EmailConfig   `json:"emailjs"`
}

// FindService returns the service with the given id or nil
func (s *Settings) FindService(id string) *Service {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i]
		}
	}
	return nil
}

// ServiceTypeOf resolves the capacity track of a service id.
// Bookings that reference a deleted service fall back to the at-home track
// so they stay counted.
func (s *Settings) ServiceTypeOf(serviceID string) ServiceType {
	if svc := s.FindService(serviceID); svc != nil && svc.Type.IsValid() {
		return svc.Type
	}
	return ServiceTypeAtHome
}

// EnabledServices returns services that clients can book
func (s *Settings) EnabledServices() []Service {
	result := make([]Service, 0, len(s.Services))
	for _, svc := range s.Services {
		if svc.Enabled {
			result = append(result, svc)
		}
	}
	return result
}

// IsBlocked returns true if the owner blocked the given date
func (s *Settings) IsBlocked(date string) bool {
	for _, d := range s.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}

// PetsAtHomeLimit returns the at-home capacity, falling back to the default when unset
func (s *Settings) PetsAtHomeLimit() int {
	if s.MaxPetsAtHome <= 0 {
		return DefaultMaxPetsAtHome
	}
	return s.MaxPetsAtHome
}

// HouseVisitsLimit returns the daily house-visit capacity, falling back to the default when unset
func (s *Settings) HouseVisitsLimit() int {
	if s.MaxHouseVisitsPerDay <= 0 {
		return DefaultMaxHouseVisitsPerDay
	}
	return s.MaxHouseVisitsPerDay
}

// OvernightsLimit returns the nightly overnight capacity, falling back to the default when unset
func (s *Settings) OvernightsLimit() int {
	if s.MaxOvernightsPerNight <= 0 {
		return DefaultMaxOvernightsPerNight
	}
	return s.MaxOvernightsPerNight
}

// DefaultSettings returns the settings used until the owner saves their own
func DefaultSettings() *Settings {
	overnight := 75.0
	return &Settings{
		MaxPetsAtHome:         DefaultMaxPetsAtHome,
		MaxHouseVisitsPerDay:  DefaultMaxHouseVisitsPerDay,
		MaxOvernightsPerNight: DefaultMaxOvernightsPerNight,
		BufferDays:            DefaultBufferDays,
		BlockedDates:          []string{},
		Services: []Service{
			{
				ID:          "boarding",
				Name:        "Boarding (at my home)",
				Price:       45,
				Enabled:     true,
				Description: "Your pup stays at my place with 24/7 care, walks, and lots of love.",
				Type:        ServiceTypeAtHome,
			},
			{
				ID:             "housesitting",
				Name:           "House Sitting (at your home)",
				Price:          55,
				PriceOvernight: &overnight,
				Enabled:        true,
				Description:    "I come to your home so your pet stays in their comfort zone. Day visits or overnight stays available!",
				Type:           ServiceTypeHouseSit,
			},
			{
				ID:          "daycare",
				Name:        "Doggy Day Care",
				Price:       30,
				Enabled:     true,
				Description: "Drop off in the morning, pick up in the evening. Fun guaranteed!",
				Type:        ServiceTypeAtHome,
			},
			{
				ID:          "walkvisit",
				Name:        "Drop-In Visit / Walk",
				Price:       20,
				Enabled:     true,
				Description: "A 30-minute check-in, walk, and potty break.",
				Type:        ServiceTypeVisit,
			},
		},
		BusinessHours: BusinessHours{Start: "08:00", End: "20:00"},
		OwnerName:     "Ruff Lyfe Pet Services",
		About:         "We treat your fur babies like family! Whether your pup is hanging at our place or we're coming to yours, every pet gets personalized attention, belly rubs, and the best care around.",
		AdminPIN:      DefaultAdminPIN,
	}
}
