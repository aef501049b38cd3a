package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/internal/engine"
	settingsRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/settings"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	notifier     Notifier
	metrics      MetricsRecorder
	maxDates     int
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil,
// maxDates ограничивает число дат в одном бронировании
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsRecorder,
	maxDates int,
	logger Logger,
) *UseCase {
	if maxDates <= 0 {
		maxDates = domain.MaxDatesPerBooking
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		maxDates:     maxDates,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Чтение настроек, активных бронирований и вставка идут в одной сериализуемой транзакции,
// поэтому два параллельных запроса не могут занять одно и то же место.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, type=%s, dates=%v, pets=%d",
		req.ServiceID, req.HouseSitType, req.Dates, req.PetCount)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxDates); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущую дату
	today := engine.FormatDate(uc.timeProvider.Now())

	var (
		result      *domain.Booking
		settings    *domain.Settings
		serviceType domain.ServiceType
	)

	// 3. Выполняем проверку и вставку в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем настройки, если их нет используем дефолтные
		current, err := uc.settingsRepo.Get(txCtx)
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			current = domain.DefaultSettings()
		} else if err != nil {
			uc.logger.Error("CreateBooking: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %w", ErrInternal, err)
		}
		settings = current

		// 3.2. Проверяем услугу
		service, err := resolveService(settings, req.ServiceID)
		if err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}
		serviceType = settings.ServiceTypeOf(service.ID)
		subType := normalizeSubType(serviceType, req.HouseSitType)
		if err := validatePetCount(serviceType, req.PetCount); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}

		// 3.3. Проверяем даты
		if err := validateDates(req.Dates, today, settings); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 3.4. Получаем все активные бронирования и строим карту расписания
		bookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{ActiveOnly: true})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}
		schedule := engine.BuildScheduleMap(bookings, settings)

		// 3.5. Перепроверяем каждую дату, бронирование принимается целиком
		if rejection := engine.ValidateSubmission(req.Dates, serviceType, subType, req.PetCount, schedule, settings); rejection != nil {
			uc.logger.Warn("CreateBooking: date %s unavailable: %s", rejection.Date, rejection.Reason)
			return fmt.Errorf("%w: %w", ErrDateUnavailable, rejection)
		}

		// 3.6. Создаем бронирование с денормализацией данных услуги
		pricePerDay := service.PriceFor(subType)
		booking := &domain.Booking{
			ID:            uc.newID(),
			ServiceID:     service.ID,
			HouseSitType:  subType,
			Dates:         req.Dates,
			PetCount:      req.PetCount,
			Status:        domain.StatusPending,
			PetName:       req.PetName,
			PetBreed:      req.PetBreed,
			OwnerName:     req.OwnerName,
			OwnerPhone:    req.OwnerPhone,
			OwnerEmail:    req.OwnerEmail,
			Notes:         req.Notes,
			ServiceName:   serviceDisplayName(service, subType),
			PricePerDay:   pricePerDay,
			TotalEstimate: pricePerDay * float64(len(req.Dates)) * float64(req.PetCount),
		}

		// 3.7. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		var rejection *engine.Rejection
		if uc.metrics != nil && errors.As(err, &rejection) {
			uc.metrics.BookingRejected(string(serviceType), rejectionKind(rejection.Reason))
		}
		if !isBusinessError(err) && !errors.Is(err, ErrInternal) {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	// 4. Метрики и уведомления после коммита
	if uc.metrics != nil {
		uc.metrics.BookingCreated(string(serviceType))
	}
	uc.notifier.BookingCreated(result, settings)

	return toResponse(result), nil
}

// normalizeSubType оставляет тип визита только для house sitting, по умолчанию day
func normalizeSubType(serviceType domain.ServiceType, subType domain.HouseSitType) domain.HouseSitType {
	if serviceType != domain.ServiceTypeHouseSit {
		return ""
	}
	if subType == domain.HouseSitOvernight {
		return domain.HouseSitOvernight
	}
	return domain.HouseSitDay
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrServiceNotFound) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrDateInPast) ||
		errors.Is(err, ErrDateBlocked) ||
		errors.Is(err, ErrDateUnavailable) ||
		errors.Is(err, ErrInvalidInput)
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		HouseSitType:  b.HouseSitType,
		Dates:         b.Dates,
		PetCount:      b.PetCount,
		Status:        string(b.Status),
		PetName:       b.PetName,
		PetBreed:      b.PetBreed,
		OwnerName:     b.OwnerName,
		OwnerPhone:    b.OwnerPhone,
		OwnerEmail:    b.OwnerEmail,
		Notes:         b.Notes,
		ServiceName:   b.ServiceName,
		PricePerDay:   b.PricePerDay,
		TotalEstimate: b.TotalEstimate,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
