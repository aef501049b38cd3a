package get_availability

import (
	"net/url"
	"strings"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	getAvailability "github.com/m04kA/PetCare-BookingService/internal/usecase/get_availability"
)

// AvailabilityQuery query параметры календаря
type AvailabilityQuery struct {
	ServiceID    string   `json:"serviceId" validate:"required"`
	HouseSitType string   `json:"houseSitType" validate:"omitempty,oneof=day overnight"`
	From         string   `json:"from" validate:"required,date"`
	To           string   `json:"to" validate:"required,date"`
	Selected     []string `json:"selected" validate:"dive,date"`
}

// DayResponse доступность одного дня
type DayResponse struct {
	Date       string `json:"date"`
	Available  bool   `json:"available"`
	SpotsLeft  int    `json:"spotsLeft"`
	Reason     string `json:"reason,omitempty"`
	Blocked    bool   `json:"blocked"`
	Past       bool   `json:"past"`
	Buffer     bool   `json:"buffer"`
	AlmostFull bool   `json:"almostFull"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ServiceID      string        `json:"serviceId"`
	ServiceType    string        `json:"serviceType"`
	HouseSitType   string        `json:"houseSitType,omitempty"`
	Days           []DayResponse `json:"days"`
	MaxPetsAllowed int           `json:"maxPetsAllowed"`
}

// FromQuery собирает запрос из query строки, selected передаётся через запятую
func FromQuery(values url.Values) *AvailabilityQuery {
	q := &AvailabilityQuery{
		ServiceID:    values.Get("serviceId"),
		HouseSitType: values.Get("houseSitType"),
		From:         values.Get("from"),
		To:           values.Get("to"),
	}

	if selected := values.Get("selected"); selected != "" {
		for _, date := range strings.Split(selected, ",") {
			if date = strings.TrimSpace(date); date != "" {
				q.Selected = append(q.Selected, date)
			}
		}
	}

	return q
}

// ToUseCaseRequest конвертирует запрос в модель use case
func (q *AvailabilityQuery) ToUseCaseRequest() *getAvailability.Request {
	return &getAvailability.Request{
		ServiceID:    q.ServiceID,
		HouseSitType: domain.HouseSitType(q.HouseSitType),
		From:         q.From,
		To:           q.To,
		Selected:     q.Selected,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Date:       d.Date,
			Available:  d.Available,
			SpotsLeft:  d.SpotsLeft,
			Reason:     d.Reason,
			Blocked:    d.Blocked,
			Past:       d.Past,
			Buffer:     d.Buffer,
			AlmostFull: d.AlmostFull,
		})
	}

	return &AvailabilityResponse{
		ServiceID:      resp.ServiceID,
		ServiceType:    string(resp.ServiceType),
		HouseSitType:   string(resp.HouseSitType),
		Days:           days,
		MaxPetsAllowed: resp.MaxPetsAllowed,
	}
}
