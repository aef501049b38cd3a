package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/internal/engine"
	settingsRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/settings"
)

// UseCase use case для получения календаря доступности услуги
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	maxRangeDays int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	if maxRangeDays <= 0 {
		maxRangeDays = domain.MaxDatesPerBooking
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		maxRangeDays: maxRangeDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности по дням
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: service=%s, type=%s, from=%s, to=%s",
		req.ServiceID, req.HouseSitType, req.From, req.To)

	// 1. Валидация входных данных
	dates, err := validateRequest(req, uc.maxRangeDays)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущую дату
	today := engine.FormatDate(uc.timeProvider.Now())

	// 3. Загружаем настройки
	settings, err := uc.settingsRepo.Get(ctx)
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		settings = domain.DefaultSettings()
	} else if err != nil {
		uc.logger.Error("GetAvailability: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Проверяем услугу
	service := settings.FindService(req.ServiceID)
	if service == nil || !service.Enabled {
		uc.logger.Warn("GetAvailability: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	serviceType := settings.ServiceTypeOf(service.ID)
	subType := req.HouseSitType
	if serviceType != domain.ServiceTypeHouseSit {
		subType = ""
	} else if subType == "" {
		subType = domain.HouseSitDay
	}

	// 5. Получаем активные бронирования и строим карту расписания
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{ActiveOnly: true})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}
	schedule := engine.BuildScheduleMap(bookings, settings)

	// 6. Считаем доступность по каждому дню
	days := make([]Day, 0, len(dates))
	for _, date := range dates {
		days = append(days, evaluateDay(date, today, serviceType, subType, schedule, settings))
	}

	// 7. Максимум питомцев для уже выбранных дат
	maxPets := engine.MaxPetsForDates(req.Selected, serviceType, subType, schedule, settings)

	uc.logger.Info("GetAvailability: evaluated %d days for service=%s", len(days), service.ID)

	return &Response{
		ServiceID:      service.ID,
		ServiceType:    serviceType,
		HouseSitType:   subType,
		Days:           days,
		MaxPetsAllowed: maxPets,
	}, nil
}

// evaluateDay прошедшие и заблокированные даты недоступны без обращения к движку
func evaluateDay(
	date, today string,
	serviceType domain.ServiceType,
	subType domain.HouseSitType,
	schedule domain.ScheduleMap,
	settings *domain.Settings,
) Day {
	if engine.IsBefore(date, today) {
		return Day{Date: date, Past: true, Reason: domain.ReasonDateInPast}
	}
	if settings.IsBlocked(date) {
		return Day{Date: date, Blocked: true, Reason: domain.ReasonDateBlocked}
	}

	avail := engine.GetAvailability(date, serviceType, subType, schedule, settings)

	day := Day{
		Date:      date,
		Available: avail.Available,
		SpotsLeft: avail.SpotsLeft,
		Reason:    avail.Reason,
		Buffer:    !avail.Available && avail.Reason == domain.ReasonBufferDay,
	}

	if avail.Available && serviceType == domain.ServiceTypeAtHome {
		day.AlmostFull = float64(avail.SpotsLeft) <= float64(settings.PetsAtHomeLimit())*domain.AlmostFullRatio
	}

	return day
}
