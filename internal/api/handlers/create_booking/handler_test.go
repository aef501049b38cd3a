package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
	"github.com/m04kA/PetCare-BookingService/internal/engine"
	createBooking "github.com/m04kA/PetCare-BookingService/internal/usecase/create_booking"
)

type useCaseMock struct {
	req  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (m *useCaseMock) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	m.req = req
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"service":"boarding","dates":["2024-03-10","2024-03-11"],"petName":"Rex","ownerName":"Ann","ownerPhone":"555-0100"}`

func doRequest(t *testing.T, uc *useCaseMock, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestHandle_Created(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := &useCaseMock{resp: &createBooking.Response{
		ID:        "b-1",
		ServiceID: "boarding",
		Dates:     []string{"2024-03-10", "2024-03-11"},
		PetCount:  1,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}}

	w := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.req)
	assert.Equal(t, 1, uc.req.PetCount, "petCount defaults to one")
	assert.Equal(t, []string{"2024-03-10", "2024-03-11"}, uc.req.Dates)

	var body BookingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "b-1", body.ID)
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, "2024-03-01T12:00:00Z", body.CreatedAt)
}

func TestHandle_RejectionReasonVerbatim(t *testing.T) {
	rejection := &engine.Rejection{Date: "2024-03-11", Reason: "At max pet capacity"}
	uc := &useCaseMock{err: fmt.Errorf("%w: %w", createBooking.ErrDateUnavailable, rejection)}

	w := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusConflict, w.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "At max pet capacity", body.Message)
	assert.Equal(t, "2024-03-11", body.Date)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"service not found", createBooking.ErrServiceNotFound, http.StatusNotFound},
		{"date in past", createBooking.ErrDateInPast, http.StatusBadRequest},
		{"date blocked", createBooking.ErrDateBlocked, http.StatusBadRequest},
		{"invalid date", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, &useCaseMock{err: fmt.Errorf("%w: details", tt.err)}, validBody)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandle_ValidationFailed(t *testing.T) {
	uc := &useCaseMock{}

	w := doRequest(t, uc, `{"service":"boarding","dates":["03/10/2024"],"petName":"Rex","ownerName":"Ann","ownerPhone":"1"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.req, "use case must not be called")

	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "dates[0]", body.Errors[0].Field)
}

func TestHandle_InvalidBody(t *testing.T) {
	w := doRequest(t, &useCaseMock{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
