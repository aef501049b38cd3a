package get_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	getAvailability "github.com/m04kA/PetCare-BookingService/internal/usecase/get_availability"
)

type useCaseMock struct {
	req  *getAvailability.Request
	resp *getAvailability.Response
	err  error
}

func (m *useCaseMock) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	m.req = req
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(uc *useCaseMock, target string) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_OK(t *testing.T) {
	uc := &useCaseMock{resp: &getAvailability.Response{
		ServiceID:   "housesitting",
		ServiceType: domain.ServiceTypeHouseSit,
		Days: []getAvailability.Day{
			{Date: "2024-03-09", Available: false, Reason: "Buffer day", Buffer: true},
			{Date: "2024-03-10", Available: true, SpotsLeft: 1},
		},
		MaxPetsAllowed: 1,
	}}

	w := doRequest(uc, "/api/v1/availability?serviceId=housesitting&houseSitType=overnight&from=2024-03-09&to=2024-03-10&selected=2024-03-10,%202024-03-11")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.req)
	assert.Equal(t, domain.HouseSitOvernight, uc.req.HouseSitType)
	assert.Equal(t, []string{"2024-03-10", "2024-03-11"}, uc.req.Selected)

	var body AvailabilityResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body.Days, 2)
	assert.True(t, body.Days[0].Buffer)
	assert.Equal(t, "Buffer day", body.Days[0].Reason)
	assert.Equal(t, 1, body.MaxPetsAllowed)
}

func TestHandle_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"missing service", "/api/v1/availability?from=2024-03-01&to=2024-03-31"},
		{"bad from", "/api/v1/availability?serviceId=boarding&from=03-01&to=2024-03-31"},
		{"bad subtype", "/api/v1/availability?serviceId=housesitting&houseSitType=week&from=2024-03-01&to=2024-03-31"},
		{"bad selected", "/api/v1/availability?serviceId=boarding&from=2024-03-01&to=2024-03-31&selected=tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{}
			w := doRequest(uc, tt.target)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, uc.req)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{getAvailability.ErrServiceNotFound, http.StatusNotFound},
		{getAvailability.ErrInvalidRange, http.StatusBadRequest},
		{getAvailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &useCaseMock{err: fmt.Errorf("%w: details", tt.err)}
			w := doRequest(uc, "/api/v1/availability?serviceId=boarding&from=2024-03-01&to=2024-03-31")
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
