package config

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Repository репозиторий для работы с конфигурацией ресторана
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает конфигурацию вместе с расписанием по дням недели
func (r *Repository) Get(ctx context.Context, id string) (*domain.RestaurantConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"time_slot_duration",
		"reservation_duration",
		"advance_booking_days",
		"created_at",
		"updated_at",
	).
		From("restaurant_config").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.RestaurantConfig
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.Name,
		&cfg.TimeSlotDuration,
		&cfg.ReservationDuration,
		&cfg.AdvanceBookingDays,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	hours, err := r.getWorkingHours(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	cfg.WorkingHours = hours

	return &cfg, nil
}

func (r *Repository) getWorkingHours(ctx context.Context, executor DBExecutor, configID string) (map[time.Weekday]domain.WorkingHours, error) {
	query, args, err := psqlbuilder.Select("weekday", "is_open", "open_time", "close_time").
		From("restaurant_working_hours").
		Where(squirrel.Eq{"config_id": configID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make(map[time.Weekday]domain.WorkingHours, 7)
	for rows.Next() {
		var weekday int
		var wh domain.WorkingHours
		var openTime, closeTime types.TimeString
		if err := rows.Scan(&weekday, &wh.IsOpen, &openTime, &closeTime); err != nil {
			return nil, fmt.Errorf("%w: getWorkingHours - scan hours: %v", ErrScanRow, err)
		}
		wh.OpenTime = openTime
		wh.CloseTime = closeTime
		hours[time.Weekday(weekday)] = wh
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getWorkingHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// Replace целиком заменяет конфигурацию и расписание
// Вызывать в транзакции, иначе возможно частичное обновление расписания
func (r *Repository) Replace(ctx context.Context, cfg *domain.RestaurantConfig) (*domain.RestaurantConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("restaurant_config").
		Columns(
			"id",
			"name",
			"time_slot_duration",
			"reservation_duration",
			"advance_booking_days",
		).
		Values(
			cfg.ID,
			cfg.Name,
			cfg.TimeSlotDuration,
			cfg.ReservationDuration,
			cfg.AdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			time_slot_duration = EXCLUDED.time_slot_duration,
			reservation_duration = EXCLUDED.reservation_duration,
			advance_booking_days = EXCLUDED.advance_booking_days,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Replace - execute upsert: %v", ErrExecQuery, err)
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("restaurant_working_hours").
		Where(squirrel.Eq{"config_id": cfg.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build delete hours query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Replace - delete hours: %v", ErrExecQuery, err)
	}

	if err := r.insertWorkingHours(ctx, executor, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// InsertDefaultIfMissing записывает конфигурацию, только если записи с таким ID еще нет
// Возвращает true, если конфигурация была создана
func (r *Repository) InsertDefaultIfMissing(ctx context.Context, cfg *domain.RestaurantConfig) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("restaurant_config").
		Columns(
			"id",
			"name",
			"time_slot_duration",
			"reservation_duration",
			"advance_booking_days",
		).
		Values(
			cfg.ID,
			cfg.Name,
			cfg.TimeSlotDuration,
			cfg.ReservationDuration,
			cfg.AdvanceBookingDays,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: InsertDefaultIfMissing - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: InsertDefaultIfMissing - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: InsertDefaultIfMissing - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return false, nil
	}

	if err := r.insertWorkingHours(ctx, executor, cfg); err != nil {
		return false, err
	}

	return true, nil
}

func (r *Repository) insertWorkingHours(ctx context.Context, executor DBExecutor, cfg *domain.RestaurantConfig) error {
	if len(cfg.WorkingHours) == 0 {
		return nil
	}

	weekdays := make([]int, 0, len(cfg.WorkingHours))
	for day := range cfg.WorkingHours {
		weekdays = append(weekdays, int(day))
	}
	sort.Ints(weekdays)

	insertBuilder := psqlbuilder.Insert("restaurant_working_hours").
		Columns("config_id", "weekday", "is_open", "open_time", "close_time")

	for _, day := range weekdays {
		wh := cfg.WorkingHours[time.Weekday(day)]
		insertBuilder = insertBuilder.Values(cfg.ID, day, wh.IsOpen, wh.OpenTime, wh.CloseTime)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertWorkingHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertWorkingHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
