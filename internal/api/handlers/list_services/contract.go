package list_services

import (
	"context"

	"github.com/m04kA/PetCare-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	PublicInfo(ctx context.Context) (*models.PublicInfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
