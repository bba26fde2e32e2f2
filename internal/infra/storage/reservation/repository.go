package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// Коды ошибок Postgres
const (
	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
	pgSerializationFail   = "40001"
	// некорректный UUID в условии по id
	pgInvalidTextRepresentation = "22P02"
)

var reservationColumns = []string{
	"r.id",
	"r.customer_id",
	"r.customer_name",
	"r.customer_phone",
	"r.customer_email",
	"r.customer_notes",
	"r.customer_vip",
	"r.party_size",
	"r.reservation_date",
	"r.start_time",
	"r.end_time",
	"r.status",
	"r.special_requests",
	"r.created_at",
	"r.updated_at",
	"ARRAY(SELECT rt.table_id FROM reservation_tables rt WHERE rt.reservation_id = r.id ORDER BY rt.ordinal) AS table_ids",
}

// TableBookedError стол уже занят пересекающимся бронированием (нарушение ограничения исключения)
type TableBookedError struct {
	TableID string
}

func (e *TableBookedError) Error() string {
	if e.TableID == "" {
		return ErrTableAlreadyBooked.Error()
	}
	return fmt.Sprintf("%s: %s", ErrTableAlreadyBooked, e.TableID)
}

func (e *TableBookedError) Unwrap() error {
	return ErrTableAlreadyBooked
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе со связями на столы
// Вызывать в транзакции: строка бронирования и его столы пишутся атомарно
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"customer_id",
			"customer_name",
			"customer_phone",
			"customer_email",
			"customer_notes",
			"customer_vip",
			"party_size",
			"reservation_date",
			"start_time",
			"end_time",
			"status",
			"special_requests",
		).
		Values(
			res.ID,
			res.Customer.ID,
			res.Customer.Name,
			res.Customer.Phone,
			res.Customer.Email,
			res.Customer.Notes,
			res.Customer.VIPStatus,
			res.PartySize,
			res.Date.Format(domain.DateFormat),
			res.StartTime,
			res.EndTime,
			string(res.Status),
			res.SpecialRequests,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, mapWriteError("Create - execute insert", err)
	}

	if err := r.insertTables(ctx, executor, res); err != nil {
		return nil, err
	}

	return res, nil
}

// Update заменяет данные бронирования и набор его столов
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("customer_id", res.Customer.ID).
		Set("customer_name", res.Customer.Name).
		Set("customer_phone", res.Customer.Phone).
		Set("customer_email", res.Customer.Email).
		Set("customer_notes", res.Customer.Notes).
		Set("customer_vip", res.Customer.VIPStatus).
		Set("party_size", res.PartySize).
		Set("reservation_date", res.Date.Format(domain.DateFormat)).
		Set("start_time", res.StartTime).
		Set("end_time", res.EndTime).
		Set("status", string(res.Status)).
		Set("special_requests", res.SpecialRequests).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.CreatedAt, &res.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, mapWriteError("Update - execute update", err)
	}

	// Пересоздаем связи со столами
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("reservation_tables").
		Where(squirrel.Eq{"reservation_id": res.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build delete tables query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, mapWriteError("Update - delete tables", err)
	}

	if err := r.insertTables(ctx, executor, res); err != nil {
		return nil, err
	}

	return res, nil
}

// insertTables записывает связи бронирования со столами одним запросом
func (r *Repository) insertTables(ctx context.Context, executor DBExecutor, res *domain.Reservation) error {
	insertBuilder := psqlbuilder.Insert("reservation_tables").
		Columns(
			"reservation_id",
			"table_id",
			"ordinal",
			"reservation_date",
			"start_time",
			"end_time",
			"is_cancelled",
		)

	date := res.Date.Format(domain.DateFormat)
	for i, tableID := range res.TableIDs {
		insertBuilder = insertBuilder.Values(
			res.ID,
			tableID,
			i,
			date,
			res.StartTime,
			res.EndTime,
			res.IsCancelled(),
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertTables - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return mapWriteError("insertTables - execute insert", err)
	}

	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Where(squirrel.Eq{"r.id": id})

	// В транзакции блокируем строку до конца записи
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, mapScanError("GetByID - scan reservation", err)
	}

	return res, nil
}

// List получает бронирования с фильтрацией
// Поддерживает фильтрацию по:
// - Дате (Date) - опционально
// - Статусу (Status) - опционально
// - Включению отмененных бронирований (IncludeCancelled)
// - Поиску (Query) по имени гостя без учета регистра, подстроке телефона или точному ID
//
// Если используется транзакция и указана дата, строки блокируются (FOR UPDATE)
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations r")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.reservation_date": filter.Date.Format(domain.DateFormat)})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.status": string(*filter.Status)})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"r.status": string(domain.StatusCancelled)})
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"r.customer_name": pattern},
			squirrel.Like{"r.customer_phone": pattern},
			squirrel.Eq{"r.id::text": q},
		})
	}

	selectBuilder = selectBuilder.OrderBy("r.reservation_date ASC", "r.start_time ASC", "r.created_at ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapWriteError("List - execute query", err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, mapScanError("List - scan reservation", err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, mapScanError("List - rows error", err)
	}

	return reservations, nil
}

// UpdateStatus обновляет статус бронирования и флаг отмены его столов
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("UpdateStatus - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	tablesQuery, tablesArgs, err := psqlbuilder.Update("reservation_tables").
		Set("is_cancelled", status == domain.StatusCancelled).
		Where(squirrel.Eq{"reservation_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build tables update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, tablesQuery, tablesArgs...); err != nil {
		return mapWriteError("UpdateStatus - update tables", err)
	}

	return nil
}

// Delete удаляет бронирование (связи со столами удаляются каскадно)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("Delete - execute delete", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var status string
	var tableIDs pq.StringArray

	err := row.Scan(
		&res.ID,
		&res.Customer.ID,
		&res.Customer.Name,
		&res.Customer.Phone,
		&res.Customer.Email,
		&res.Customer.Notes,
		&res.Customer.VIPStatus,
		&res.PartySize,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&status,
		&res.SpecialRequests,
		&res.CreatedAt,
		&res.UpdatedAt,
		&tableIDs,
	)
	if err != nil {
		return nil, err
	}

	res.Status = domain.ReservationStatus(status)
	res.TableIDs = []string(tableIDs)
	return &res, nil
}

// mapWriteError переводит ошибки Postgres при выполнении запроса в ошибки репозитория
func mapWriteError(op string, err error) error {
	return mapPgError(op, err, ErrExecQuery)
}

// mapScanError то же для ошибок чтения строк: Postgres может вернуть ошибку только на Scan
func mapScanError(op string, err error) error {
	return mapPgError(op, err, ErrScanRow)
}

func mapPgError(op string, err error, fallback error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return fmt.Errorf("%w: %s: %v", fallback, op, err)
	}

	switch string(pqErr.Code) {
	case pgExclusionViolation:
		return &TableBookedError{TableID: tableFromDetail(pqErr.Detail)}
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s: %s", ErrTableNotFound, op, pqErr.Detail)
	case pgSerializationFail:
		return fmt.Errorf("%w: %s: %v", txmanager.ErrSerializationFailure, op, err)
	case pgInvalidTextRepresentation:
		// бронирования с таким id не может существовать
		return fmt.Errorf("%w: %s: %s", ErrReservationNotFound, op, pqErr.Message)
	default:
		return fmt.Errorf("%w: %s: %v", fallback, op, err)
	}
}

// tableFromDetail извлекает table_id из DETAIL нарушения ограничения исключения:
// Key (table_id, tsrange(...))=(in-1, [...)) conflicts with existing key (...)
func tableFromDetail(detail string) string {
	start := strings.Index(detail, ")=(")
	if start < 0 {
		return ""
	}
	rest := detail[start+3:]
	end := strings.Index(rest, ",")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
