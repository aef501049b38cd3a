package get_booked_pets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/service/bookings"
	"github.com/m04kA/PetCare-BookingService/internal/service/bookings/models"
)

type serviceMock struct {
	req *models.BookedPetsRequest
	err error
}

func (m *serviceMock) BookedPetsPerDay(_ context.Context, req *models.BookedPetsRequest) (*models.BookedPetsResponse, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.BookedPetsResponse{Days: map[string]int{"2024-03-10": 3}, MaxPetsAtHome: 10}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &serviceMock{}
	w := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/admin/booked-pets?from=2024-03-01", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.req.From)
	assert.Equal(t, "2024-03-01", *svc.req.From)
	assert.Nil(t, svc.req.To)

	var body models.BookedPetsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 3, body.Days["2024-03-10"])
	assert.Equal(t, 10, body.MaxPetsAtHome)
}

func TestHandle_InvalidRange(t *testing.T) {
	svc := &serviceMock{err: fmt.Errorf("%w: to is before from", bookings.ErrInvalidInput)}
	w := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/admin/booked-pets?from=2024-03-10&to=2024-03-01", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
