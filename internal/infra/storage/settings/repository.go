package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/PetCare-BookingService/pkg/txmanager"
)

const (
	tableName = "kv_store"

	// SettingsKey ключ записи с настройками бизнеса
	SettingsKey = "settings"
)

// Repository хранит настройки как JSON документ в key-value таблице
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает настройки. Если запись отсутствует, возвращает ErrSettingsNotFound
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From(tableName).
		Where(squirrel.Eq{"key": SettingsKey}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan value: %w", ErrScanRow, err)
	}

	var settings domain.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal settings: %v", ErrEncode, err)
	}

	return &settings, nil
}

// Save сохраняет настройки целиком (last-write-wins)
func (r *Repository) Save(ctx context.Context, settings *domain.Settings) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal settings: %v", ErrEncode, err)
	}

	query, args, err := upsertQuery(raw).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %w", ErrExecQuery, err)
	}

	return nil
}

func upsertQuery(raw []byte) squirrel.InsertBuilder {
	return psqlbuilder.Insert(tableName).
		Columns("key", "value", "updated_at").
		Values(SettingsKey, raw, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()")
}
