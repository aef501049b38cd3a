package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PetCare-BookingService/pkg/metrics"
)

type pinCheckerMock struct {
	pin string
	err error
}

func (m *pinCheckerMock) CheckPIN(_ context.Context, pin string) (bool, error) {
	return pin == m.pin, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		checker *pinCheckerMock
		code    int
	}{
		{"valid pin", "4321", &pinCheckerMock{pin: "4321"}, http.StatusOK},
		{"wrong pin", "0000", &pinCheckerMock{pin: "4321"}, http.StatusForbidden},
		{"missing pin", "", &pinCheckerMock{pin: "4321"}, http.StatusForbidden},
		{"checker error", "4321", &pinCheckerMock{pin: "4321", err: errors.New("db down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
			if tt.pin != "" {
				req.Header.Set(AdminPINHeader, tt.pin)
			}
			w := httptest.NewRecorder()

			AdminAuth(tt.checker, nopLogger{})(okHandler).ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.New("test", prometheus.NewRegistry())

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.Handle("/admin/bookings/{bookingId}", okHandler)

	for _, id := range []string{"a", "b"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/bookings/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/admin/bookings/{bookingId}", "200")))
}

func TestRecovery(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	w := httptest.NewRecorder()

	Recovery(nopLogger{})(panicking).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
