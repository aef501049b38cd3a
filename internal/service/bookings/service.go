package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/internal/engine"
	bookingRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/booking"
	settingsRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/PetCare-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями из админки
type Service struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	notifier     Notifier
	metrics      MetricsRecorder
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований. metrics может быть nil
func NewService(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования, опционально фильтрует по статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, status=%v", req.Status)

	var filter domain.BookingsFilter
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBookingList(bookings)
	s.logger.Info("List: fetched %d bookings, %d pending", resp.Total, resp.PendingCount)
	return resp, nil
}

// UpdateStatus подтверждает или отклоняет бронирование.
// Повторная установка того же статуса ничего не меняет и не шлёт писем.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s, status=%s", id, req.Status)

	// 1. Разрешены только решения владельца
	status := domain.BookingStatus(req.Status)
	if status != domain.StatusConfirmed && status != domain.StatusDeclined {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	var (
		result  *domain.Booking
		changed bool
	)

	// 2. Читаем и обновляем в одной транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get booking: %v", ErrInternal, err)
		}

		if !booking.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
		}

		if booking.Status == status {
			result = booking
			return nil
		}

		updated, err := s.bookingRepo.UpdateStatus(txCtx, id, status)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
		}

		result = updated
		changed = true
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("UpdateStatus: booking id=%s: %v", id, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			s.logger.Error("UpdateStatus: booking id=%s: %v", id, err)
			return nil, err
		default:
			s.logger.Error("UpdateStatus: booking id=%s: transaction error: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - transaction: %v", ErrInternal, err)
		}
	}

	if !changed {
		s.logger.Info("UpdateStatus: booking id=%s already %s", id, status)
		return models.FromDomainBooking(result), nil
	}

	s.logger.Info("UpdateStatus: booking id=%s is now %s", id, status)

	// 3. Метрики и письмо клиенту после коммита
	if s.metrics != nil {
		s.metrics.StatusChanged(string(status))
	}
	s.notifyStatus(ctx, result)

	return models.FromDomainBooking(result), nil
}

// BookedPetsPerDay считает питомцев at-home по дням, опционально в диапазоне дат
func (s *Service) BookedPetsPerDay(ctx context.Context, req *models.BookedPetsRequest) (*models.BookedPetsResponse, error) {
	if req.From != nil {
		if _, err := engine.ParseDate(*req.From); err != nil {
			return nil, fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
		}
	}
	if req.To != nil {
		if _, err := engine.ParseDate(*req.To); err != nil {
			return nil, fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
		}
	}
	if req.From != nil && req.To != nil && engine.IsBefore(*req.To, *req.From) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		s.logger.Error("BookedPetsPerDay: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{ActiveOnly: true})
	if err != nil {
		s.logger.Error("BookedPetsPerDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: BookedPetsPerDay - repository error: %v", ErrInternal, err)
	}

	days := engine.BookedPetsPerDay(bookings, settings)
	for date := range days {
		if req.From != nil && engine.IsBefore(date, *req.From) {
			delete(days, date)
		} else if req.To != nil && engine.IsBefore(*req.To, date) {
			delete(days, date)
		}
	}

	return &models.BookedPetsResponse{
		Days:          days,
		MaxPetsAtHome: settings.PetsAtHomeLimit(),
	}, nil
}

func (s *Service) notifyStatus(ctx context.Context, booking *domain.Booking) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		s.logger.Error("UpdateStatus: skip notification for booking id=%s: %v", booking.ID, err)
		return
	}
	s.notifier.StatusChanged(booking, settings)
}

func (s *Service) loadSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	return settings, nil
}
