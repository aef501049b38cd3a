package get_settings

import (
	"context"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
