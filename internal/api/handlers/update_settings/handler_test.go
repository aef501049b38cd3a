package update_settings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	settingsService "github.com/m04kA/PetCare-BookingService/internal/service/settings"
)

type serviceMock struct {
	got *domain.Settings
	err error
}

func (m *serviceMock) Update(_ context.Context, s *domain.Settings) (*domain.Settings, error) {
	m.got = s
	return s, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(svc *serviceMock, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(body)))
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &serviceMock{}

	w := doRequest(svc, `{"maxPetsAtHome":4,"bufferDays":2,"blockedDates":["2024-12-25"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, 4, svc.got.MaxPetsAtHome)
	assert.Equal(t, 2, svc.got.BufferDays)
	assert.Equal(t, []string{"2024-12-25"}, svc.got.BlockedDates)
}

func TestHandle_InvalidSettings(t *testing.T) {
	svc := &serviceMock{err: fmt.Errorf("%w: bufferDays must be in 0..14", settingsService.ErrInvalidSettings)}

	w := doRequest(svc, `{"bufferDays":30}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bufferDays must be in 0..14")
}

func TestHandle_UnknownField(t *testing.T) {
	w := doRequest(&serviceMock{}, `{"maxPets":4}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
