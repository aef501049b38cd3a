package txmanager_test

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	bookingRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/booking"
	createBooking "github.com/m04kA/PetCare-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PetCare-BookingService/pkg/txmanager"
)

// Конфликт сериализации должен оставаться видимым через обёртки репозитория и use case,
// иначе DoSerializable не повторит транзакцию
func TestIsSerializationFailure_ThroughLayerWrapping(t *testing.T) {
	pqErr := &pq.Error{Code: "40001"}

	repoErr := fmt.Errorf("%w: List - execute query: %w", bookingRepo.ErrExecQuery, pqErr)
	useCaseErr := fmt.Errorf("%w: failed to list bookings: %w", createBooking.ErrInternal, repoErr)

	assert.True(t, txmanager.IsSerializationFailure(repoErr))
	assert.True(t, txmanager.IsSerializationFailure(useCaseErr))
	assert.ErrorIs(t, useCaseErr, createBooking.ErrInternal)
	assert.ErrorIs(t, useCaseErr, bookingRepo.ErrExecQuery)
}
