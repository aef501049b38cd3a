// Package metrics Prometheus-метрики сервиса
package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreated  *prometheus.CounterVec
	BookingsRejected *prometheus.CounterVec
	StatusChanges    *prometheus.CounterVec
	Notifications    *prometheus.CounterVec

	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge
	DBWaitCount       prometheus.Gauge
}

// New создает и регистрирует коллекторы в reg
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Booking requests accepted as pending",
			ConstLabels: constLabels,
		}, []string{"service_type"}),
		BookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Booking requests rejected by availability checks",
			ConstLabels: constLabels,
		}, []string{"service_type", "reason"}),
		StatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_changes_total",
			Help:        "Admin booking status transitions",
			ConstLabels: constLabels,
		}, []string{"status"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Outbound notifications by channel and result",
			ConstLabels: constLabels,
		}, []string{"channel", "result"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		DBInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreated,
		m.BookingsRejected,
		m.StatusChanges,
		m.Notifications,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
	)

	return m
}

// BookingCreated увеличивает счётчик созданных бронирований
func (m *Metrics) BookingCreated(serviceType string) {
	m.BookingsCreated.WithLabelValues(serviceType).Inc()
}

// BookingRejected увеличивает счётчик отклонённых бронирований
func (m *Metrics) BookingRejected(serviceType, reason string) {
	m.BookingsRejected.WithLabelValues(serviceType, reason).Inc()
}

// StatusChanged увеличивает счётчик смен статуса
func (m *Metrics) StatusChanged(status string) {
	m.StatusChanges.WithLabelValues(status).Inc()
}

// NotificationSent учитывает результат отправки уведомления
func (m *Metrics) NotificationSent(channel string, ok bool) {
	result := "success"
	if !ok {
		result = "failure"
	}
	m.Notifications.WithLabelValues(channel, result).Inc()
}

// ObserveDBStats записывает статистику пула соединений
func (m *Metrics) ObserveDBStats(stats sql.DBStats) {
	m.DBOpenConnections.Set(float64(stats.OpenConnections))
	m.DBInUse.Set(float64(stats.InUse))
	m.DBIdle.Set(float64(stats.Idle))
	m.DBWaitCount.Set(float64(stats.WaitCount))
}

// CollectDBStats периодически снимает статистику пула, пока не закрыт stop
func (m *Metrics) CollectDBStats(db *sql.DB, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.ObserveDBStats(db.Stats())
		case <-stop:
			return
		}
	}
}
