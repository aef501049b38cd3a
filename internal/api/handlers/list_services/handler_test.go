package list_services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/internal/service/settings/models"
)

type serviceMock struct {
	info *models.PublicInfoResponse
	err  error
}

func (m *serviceMock) PublicInfo(context.Context) (*models.PublicInfoResponse, error) {
	return m.info, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	info := models.FromDomainSettings(domain.DefaultSettings())
	w := httptest.NewRecorder()

	NewHandler(&serviceMock{info: info}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/services", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "adminPin")

	var body models.PublicInfoResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body.Services, len(info.Services))
}

func TestHandle_Error(t *testing.T) {
	w := httptest.NewRecorder()

	NewHandler(&serviceMock{err: errors.New("db down")}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/services", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
