package list_bookings

import (
	"context"
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
	req *models.ListBookingsRequest
	err error
}

func (m *serviceMock) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_StatusFilter(t *testing.T) {
	svc := &serviceMock{}
	w := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/admin/bookings?status=pending", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.req.Status)
	assert.Equal(t, "pending", *svc.req.Status)
}

func TestHandle_NoFilter(t *testing.T) {
	svc := &serviceMock{}
	w := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/admin/bookings", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.req.Status)
}

func TestHandle_InvalidStatus(t *testing.T) {
	svc := &serviceMock{err: fmt.Errorf("%w: invalid status", bookings.ErrInvalidInput)}
	w := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/admin/bookings?status=lost", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
