package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/PetCare-BookingService/internal/infra/storage/settings"
)

type bookingRepoMock struct {
	bookings []*domain.Booking
	err      error
}

func (m *bookingRepoMock) List(context.Context, domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.bookings, m.err
}

type settingsRepoMock struct {
	settings *domain.Settings
	err      error
}

func (m *settingsRepoMock) Get(context.Context) (*domain.Settings, error) {
	return m.settings, m.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(settings *domain.Settings, bookings ...*domain.Booking) *UseCase {
	uc := NewUseCase(&bookingRepoMock{bookings: bookings}, &settingsRepoMock{settings: settings}, 62, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)}
	return uc
}

func dayByDate(t *testing.T, resp *Response, date string) Day {
	t.Helper()
	for _, d := range resp.Days {
		if d.Date == date {
			return d
		}
	}
	require.Failf(t, "day not found", "date %s", date)
	return Day{}
}

func TestExecute_AtHomeCalendar(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.BlockedDates = []string{"2024-03-08"}
	uc := newUseCase(settings,
		&domain.Booking{ID: "b1", ServiceID: "boarding", PetCount: 7, Status: domain.StatusConfirmed, Dates: []string{"2024-03-06"}},
		&domain.Booking{ID: "b2", ServiceID: "daycare", PetCount: 10, Status: domain.StatusPending, Dates: []string{"2024-03-07"}},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "boarding", From: "2024-03-04", To: "2024-03-09"})
	require.NoError(t, err)

	assert.Equal(t, domain.ServiceTypeAtHome, resp.ServiceType)
	assert.Equal(t, domain.HouseSitType(""), resp.HouseSitType)
	require.Len(t, resp.Days, 6)

	past := dayByDate(t, resp, "2024-03-04")
	assert.True(t, past.Past)
	assert.False(t, past.Available)
	assert.Equal(t, "Date is in the past", past.Reason)

	today := dayByDate(t, resp, "2024-03-05")
	assert.True(t, today.Available)
	assert.Equal(t, 10, today.SpotsLeft)
	assert.False(t, today.AlmostFull)

	almost := dayByDate(t, resp, "2024-03-06")
	assert.True(t, almost.Available)
	assert.Equal(t, 3, almost.SpotsLeft)
	assert.True(t, almost.AlmostFull)

	full := dayByDate(t, resp, "2024-03-07")
	assert.False(t, full.Available)
	assert.Equal(t, "At max pet capacity", full.Reason)
	assert.False(t, full.AlmostFull)

	blocked := dayByDate(t, resp, "2024-03-08")
	assert.True(t, blocked.Blocked)
	assert.False(t, blocked.Available)
	assert.Equal(t, "Date is blocked", blocked.Reason)

	assert.Equal(t, 10, resp.MaxPetsAllowed)
}

func TestExecute_MaxPetsForSelection(t *testing.T) {
	uc := newUseCase(domain.DefaultSettings(),
		&domain.Booking{ID: "b1", ServiceID: "boarding", PetCount: 6, Status: domain.StatusConfirmed, Dates: []string{"2024-03-06"}},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: "boarding",
		From:      "2024-03-05",
		To:        "2024-03-10",
		Selected:  []string{"2024-03-06", "2024-03-07"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.MaxPetsAllowed)
}

func TestExecute_OvernightBufferFlag(t *testing.T) {
	uc := newUseCase(domain.DefaultSettings(),
		&domain.Booking{ID: "o1", ServiceID: "housesitting", HouseSitType: domain.HouseSitOvernight, PetCount: 1, Status: domain.StatusConfirmed,
			Dates: []string{"2024-03-10", "2024-03-11", "2024-03-12"}},
	)

	overnight, err := uc.Execute(context.Background(), &Request{
		ServiceID: "housesitting", HouseSitType: domain.HouseSitOvernight, From: "2024-03-09", To: "2024-03-13",
	})
	require.NoError(t, err)

	assert.True(t, dayByDate(t, overnight, "2024-03-09").Buffer)
	assert.True(t, dayByDate(t, overnight, "2024-03-13").Buffer)
	booked := dayByDate(t, overnight, "2024-03-11")
	assert.False(t, booked.Buffer)
	assert.Equal(t, "Overnight stay already booked", booked.Reason)
	assert.Equal(t, 1, overnight.MaxPetsAllowed)

	dayVisit, err := uc.Execute(context.Background(), &Request{
		ServiceID: "housesitting", From: "2024-03-09", To: "2024-03-13",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.HouseSitDay, dayVisit.HouseSitType)
	for _, d := range dayVisit.Days {
		assert.True(t, d.Available, d.Date)
		assert.False(t, d.Buffer, d.Date)
	}
}

func TestExecute_DefaultSettingsWhenMissing(t *testing.T) {
	uc := NewUseCase(&bookingRepoMock{}, &settingsRepoMock{err: settingsRepo.ErrSettingsNotFound}, 62, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)}

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "walkvisit", From: "2024-03-05", To: "2024-03-05"})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, domain.UnboundedSpots, resp.Days[0].SpotsLeft)
}

func TestExecute_Errors(t *testing.T) {
	disabled := domain.DefaultSettings()
	disabled.Services[0].Enabled = false

	tests := []struct {
		name     string
		settings *domain.Settings
		req      *Request
		wantErr  error
	}{
		{name: "missing service", settings: domain.DefaultSettings(), req: &Request{From: "2024-03-05", To: "2024-03-06"}, wantErr: ErrInvalidInput},
		{name: "bad date", settings: domain.DefaultSettings(), req: &Request{ServiceID: "boarding", From: "2024-3-5", To: "2024-03-06"}, wantErr: ErrInvalidInput},
		{name: "reversed range", settings: domain.DefaultSettings(), req: &Request{ServiceID: "boarding", From: "2024-03-06", To: "2024-03-05"}, wantErr: ErrInvalidRange},
		{name: "range too long", settings: domain.DefaultSettings(), req: &Request{ServiceID: "boarding", From: "2024-03-01", To: "2024-06-01"}, wantErr: ErrInvalidRange},
		{name: "whole calendar range", settings: domain.DefaultSettings(), req: &Request{ServiceID: "boarding", From: "0001-01-01", To: "9999-12-31"}, wantErr: ErrInvalidRange},
		{name: "bad subtype", settings: domain.DefaultSettings(), req: &Request{ServiceID: "housesitting", HouseSitType: "week", From: "2024-03-05", To: "2024-03-06"}, wantErr: ErrInvalidInput},
		{name: "bad selected", settings: domain.DefaultSettings(), req: &Request{ServiceID: "boarding", From: "2024-03-05", To: "2024-03-06", Selected: []string{"x"}}, wantErr: ErrInvalidInput},
		{name: "unknown service", settings: domain.DefaultSettings(), req: &Request{ServiceID: "grooming", From: "2024-03-05", To: "2024-03-06"}, wantErr: ErrServiceNotFound},
		{name: "disabled service", settings: disabled, req: &Request{ServiceID: "boarding", From: "2024-03-05", To: "2024-03-06"}, wantErr: ErrServiceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(tt.settings).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&bookingRepoMock{err: errors.New("boom")}, &settingsRepoMock{settings: domain.DefaultSettings()}, 62, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "boarding", From: "2024-03-05", To: "2024-03-06"})
	assert.ErrorIs(t, err, ErrInternal)
}
