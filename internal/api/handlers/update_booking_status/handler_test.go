package update_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/service/bookings"
	"github.com/m04kA/PetCare-BookingService/internal/service/bookings/models"
)

type serviceMock struct {
	id  string
	req *models.UpdateStatusRequest
	err error
}

func (m *serviceMock) UpdateStatus(_ context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	m.id = id
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.BookingResponse{ID: id, Status: req.Status}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(svc *serviceMock, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/admin/bookings/{bookingId}/status", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/admin/bookings/b-1/status", strings.NewReader(body)))
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &serviceMock{}

	w := doRequest(svc, `{"status":"confirmed"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "b-1", svc.id)
	assert.Equal(t, "confirmed", svc.req.Status)
}

func TestHandle_RejectsPending(t *testing.T) {
	svc := &serviceMock{}

	w := doRequest(svc, `{"status":"pending"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.req)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{bookings.ErrBookingNotFound, http.StatusNotFound},
		{bookings.ErrInvalidStatus, http.StatusBadRequest},
		{bookings.ErrInvalidTransition, http.StatusConflict},
		{bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := doRequest(&serviceMock{err: fmt.Errorf("%w: details", tt.err)}, `{"status":"declined"}`)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
