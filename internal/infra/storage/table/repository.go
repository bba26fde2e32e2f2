package table

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// pgSerializationFail код конфликта сериализации Postgres
const pgSerializationFail = "40001"

var tableColumns = []string{
	"id",
	"name",
	"area",
	"min_capacity",
	"max_capacity",
	"is_adjustable",
	"position_x",
	"position_y",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со столами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает столы по фильтру
// По умолчанию возвращаются только активные столы
func (r *Repository) List(ctx context.Context, filter domain.TablesFilter) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(tableColumns...).
		From("restaurant_tables").
		OrderBy("created_at ASC, id ASC")

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}
	if filter.Area != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"area": string(*filter.Area)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapPgError("List - execute query", err, ErrExecQuery)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		var t domain.Table
		var area string
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&area,
			&t.Capacity.Min,
			&t.Capacity.Max,
			&t.IsAdjustable,
			&t.Position.X,
			&t.Position.Y,
			&t.IsActive,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, mapPgError("List - scan table", err, ErrScanRow)
		}
		t.Area = domain.TableArea(area)
		tables = append(tables, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, mapPgError("List - rows error", err, ErrScanRow)
	}

	return tables, nil
}

// Upsert создает стол или обновляет существующий с тем же ID
func (r *Repository) Upsert(ctx context.Context, t *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("restaurant_tables").
		Columns(
			"id",
			"name",
			"area",
			"min_capacity",
			"max_capacity",
			"is_adjustable",
			"position_x",
			"position_y",
			"is_active",
		).
		Values(
			t.ID,
			t.Name,
			string(t.Area),
			t.Capacity.Min,
			t.Capacity.Max,
			t.IsAdjustable,
			t.Position.X,
			t.Position.Y,
			t.IsActive,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			area = EXCLUDED.area,
			min_capacity = EXCLUDED.min_capacity,
			max_capacity = EXCLUDED.max_capacity,
			is_adjustable = EXCLUDED.is_adjustable,
			position_x = EXCLUDED.position_x,
			position_y = EXCLUDED.position_y,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, mapPgError("Upsert - execute insert", err, ErrExecQuery)
	}

	return t, nil
}

// DeactivateExcept помечает неактивными все активные столы, кроме keepIDs
// Возвращает количество деактивированных столов
func (r *Repository) DeactivateExcept(ctx context.Context, keepIDs []string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("restaurant_tables").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"is_active": true})

	if len(keepIDs) > 0 {
		updateBuilder = updateBuilder.Where(squirrel.NotEq{"id": keepIDs})
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeactivateExcept - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapPgError("DeactivateExcept - execute update", err, ErrExecQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeactivateExcept - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// DeleteInactive удаляет неактивные столы, на которые не ссылается ни одно бронирование
// Возвращает количество удаленных столов
func (r *Repository) DeleteInactive(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("restaurant_tables").
		Where(squirrel.Eq{"is_active": false}).
		Where("NOT EXISTS (SELECT 1 FROM reservation_tables rt WHERE rt.table_id = restaurant_tables.id)").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteInactive - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapPgError("DeleteInactive - execute delete", err, ErrExecQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteInactive - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// mapPgError сохраняет признак конфликта сериализации, чтобы txmanager повторил транзакцию
func mapPgError(op string, err error, fallback error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgSerializationFail {
		return fmt.Errorf("%w: %s: %v", txmanager.ErrSerializationFailure, op, err)
	}
	return fmt.Errorf("%w: %s: %v", fallback, op, err)
}
