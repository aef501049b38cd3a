package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/get_availability"
	getBookedPetsHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/get_booked_pets"
	getBookingHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/get_booking"
	getSettingsHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/list_services"
	updateBookingStatusHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/update_booking_status"
	updateSettingsHandler "github.com/m04kA/PetCare-BookingService/internal/api/handlers/update_settings"
	"github.com/m04kA/PetCare-BookingService/internal/api/middleware"
	"github.com/m04kA/PetCare-BookingService/internal/config"
	bookingRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/booking"
	settingsRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/PetCare-BookingService/internal/integrations/notifier"
	bookingsService "github.com/m04kA/PetCare-BookingService/internal/service/bookings"
	settingsService "github.com/m04kA/PetCare-BookingService/internal/service/settings"
	createBookingUC "github.com/m04kA/PetCare-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/PetCare-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/PetCare-BookingService/pkg/logger"
	"github.com/m04kA/PetCare-BookingService/pkg/metrics"
	"github.com/m04kA/PetCare-BookingService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PetCare-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики собираются всегда, наружу отдаются только при metrics.enabled
	var registry prometheus.Registerer = prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		registry = prometheus.DefaultRegisterer
	}
	metricsCollector := metrics.New(cfg.Metrics.ServiceName, registry)
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, time.Duration(cfg.Metrics.DBStatsInterval)*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started (interval=%ds)", cfg.Metrics.DBStatsInterval)
	}

	// Инициализируем клиент уведомлений
	notifyClient := notifier.NewClient(
		cfg.Notifications.PushURL,
		cfg.Notifications.EmailJSURL,
		time.Duration(cfg.Notifications.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Notifier initialized (push=%t, timeout=%ds)",
		cfg.Notifications.PushURL != "", cfg.Notifications.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		settingsRepository,
		txMgr,
		notifyClient,
		metricsCollector,
		log,
	)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		txMgr,
		notifyClient,
		metricsCollector,
		cfg.Booking.MaxRangeDays,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		cfg.Booking.MaxRangeDays,
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(settingsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getBookedPets := getBookedPetsHandler.NewHandler(bookingSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Каталог услуг и профиль бизнеса
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Календарь доступности
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Заявка на бронирование
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-PIN header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(settingsSvc, log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Загрузка at-home по дням
	admin.HandleFunc("/booked-pets", getBookedPets.Handle).Methods(http.MethodGet)

	// --- Настройки ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся уведомлений, отправленных до остановки сервера
	if err := notifyClient.Wait(shutdownCtx); err != nil {
		log.Error("Pending notifications dropped: %v", err)
	}

	log.Info("Server stopped gracefully")
}
