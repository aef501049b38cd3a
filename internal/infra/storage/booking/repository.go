package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/PetCare-BookingService/pkg/txmanager"
)

const tableName = "bookings"

var columns = []string{
	"id",
	"service_id",
	"house_sit_type",
	"dates",
	"pet_count",
	"status",
	"pet_name",
	"pet_breed",
	"owner_name",
	"owner_phone",
	"owner_email",
	"notes",
	"service_name",
	"price_per_day",
	"total_estimate",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
// Ошибки драйвера оборачиваются через %w, чтобы менеджер транзакций распознал конфликт сериализации.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"service_id",
			"house_sit_type",
			"dates",
			"pet_count",
			"status",
			"pet_name",
			"pet_breed",
			"owner_name",
			"owner_phone",
			"owner_email",
			"notes",
			"service_name",
			"price_per_day",
			"total_estimate",
		).
		Values(
			booking.ID,
			booking.ServiceID,
			booking.HouseSitType,
			pq.Array(booking.Dates),
			booking.PetCount,
			booking.Status,
			booking.PetName,
			booking.PetBreed,
			booking.OwnerName,
			booking.OwnerPhone,
			booking.OwnerEmail,
			booking.Notes,
			booking.ServiceName,
			booking.PricePerDay,
			booking.TotalEstimate,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру, новые сверху
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования и возвращает обновлённую запись
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	return booking, nil
}

func listQuery(filter domain.BookingsFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	} else if filter.ActiveOnly {
		statuses := make([]string, 0, len(domain.ActiveStatuses))
		for _, s := range domain.ActiveStatuses {
			statuses = append(statuses, string(s))
		}
		builder = builder.Where(squirrel.Eq{"status": statuses})
	}

	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking      domain.Booking
		houseSitType sql.NullString
		dates        pq.StringArray
	)

	err := row.Scan(
		&booking.ID,
		&booking.ServiceID,
		&houseSitType,
		&dates,
		&booking.PetCount,
		&booking.Status,
		&booking.PetName,
		&booking.PetBreed,
		&booking.OwnerName,
		&booking.OwnerPhone,
		&booking.OwnerEmail,
		&booking.Notes,
		&booking.ServiceName,
		&booking.PricePerDay,
		&booking.TotalEstimate,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.HouseSitType = domain.HouseSitType(houseSitType.String)
	booking.Dates = []string(dates)

	return &booking, nil
}
