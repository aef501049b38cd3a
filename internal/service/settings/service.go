package settings

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/internal/engine"
	settingsRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/PetCare-BookingService/internal/service/settings/models"
)

// Service сервис для работы с настройками бизнеса
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает сохранённые настройки или дефолтные, если владелец ещё ничего не сохранял
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Info("Get: settings not saved yet, using defaults")
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return settings, nil
}

// PublicInfo возвращает включённые услуги и профиль бизнеса
func (s *Service) PublicInfo(ctx context.Context) (*models.PublicInfoResponse, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(settings), nil
}

// CheckPIN сравнивает PIN из запроса с PIN владельца
func (s *Service) CheckPIN(ctx context.Context, pin string) (bool, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return false, err
	}

	expected := settings.AdminPIN
	if expected == "" {
		expected = domain.DefaultAdminPIN
	}

	return subtle.ConstantTimeCompare([]byte(pin), []byte(expected)) == 1, nil
}

// Update целиком заменяет настройки (last-write-wins).
// Пустой adminPin сохраняет текущий PIN.
func (s *Service) Update(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	s.logger.Info("Update: saving settings, services=%d, blockedDates=%d",
		len(settings.Services), len(settings.BlockedDates))

	// 1. Валидация
	if err := validateSettings(settings); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем PIN, если он не передан
	if settings.AdminPIN == "" {
		current, err := s.Get(ctx)
		if err != nil {
			return nil, err
		}
		settings.AdminPIN = current.AdminPIN
	}

	if settings.BlockedDates == nil {
		settings.BlockedDates = []string{}
	}

	// 3. Сохраняем
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved")
	return settings, nil
}

// validateSettings проверяет лимиты, даты и каталог услуг
func validateSettings(s *domain.Settings) error {
	limits := []struct {
		name  string
		value int
	}{
		{"maxPetsAtHome", s.MaxPetsAtHome},
		{"maxHouseVisitsPerDay", s.MaxHouseVisitsPerDay},
		{"maxOvernightsPerNight", s.MaxOvernightsPerNight},
	}
	for _, l := range limits {
		// 0 означает значение по умолчанию
		if l.value < 0 || l.value > domain.MaxCapacity {
			return fmt.Errorf("%w: %s must be in 0..%d", ErrInvalidSettings, l.name, domain.MaxCapacity)
		}
	}

	if s.BufferDays < domain.MinBufferDays || s.BufferDays > domain.MaxBufferDays {
		return fmt.Errorf("%w: bufferDays must be in %d..%d", ErrInvalidSettings, domain.MinBufferDays, domain.MaxBufferDays)
	}

	for _, date := range s.BlockedDates {
		if _, err := engine.ParseDate(date); err != nil {
			return fmt.Errorf("%w: blockedDates: %v", ErrInvalidSettings, err)
		}
	}

	seen := make(map[string]struct{}, len(s.Services))
	for _, svc := range s.Services {
		if svc.ID == "" {
			return fmt.Errorf("%w: service id is required", ErrInvalidSettings)
		}
		if _, ok := seen[svc.ID]; ok {
			return fmt.Errorf("%w: duplicate service id %q", ErrInvalidSettings, svc.ID)
		}
		seen[svc.ID] = struct{}{}

		if !svc.Type.IsValid() {
			return fmt.Errorf("%w: service %q has unknown type %q", ErrInvalidSettings, svc.ID, svc.Type)
		}
		if svc.Price < 0 || (svc.PriceOvernight != nil && *svc.PriceOvernight < 0) {
			return fmt.Errorf("%w: service %q has negative price", ErrInvalidSettings, svc.ID)
		}
	}

	return nil
}
