package get_table_statuses

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UseCase use case для получения состояния столов на момент времени
type UseCase struct {
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{Location: location},
		logger:          logger,
	}
}

// Execute выполняет use case получения состояния столов
// 1. Определяет дату и момент времени (по умолчанию текущие)
// 2. Загружает активные столы и бронирования на дату
// 3. Для каждого стола вычисляет available / reserved / occupied
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}

	now := uc.timeProvider.Now()

	date := availability.CivilDay(now)
	if req.Date != nil {
		date = availability.CivilDay(*req.Date)
	}

	instant := types.NewTimeString(now)
	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			uc.logger.Warn("GetTableStatuses: invalid time: %v", err)
			return nil, fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
		}
		instant = *req.Time
	}

	uc.logger.Info("GetTableStatuses: date=%s, time=%s", date.Format(domain.DateFormat), instant)

	tables, err := uc.tableRepo.List(ctx, domain.TablesFilter{})
	if err != nil {
		uc.logger.Error("GetTableStatuses: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{Date: &date})
	if err != nil {
		uc.logger.Error("GetTableStatuses: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	statuses := make([]TableStatus, 0, len(tables))
	for _, table := range tables {
		current, err := availability.CurrentReservation(table.ID, date, instant, reservations)
		if err != nil {
			uc.logger.Error("GetTableStatuses: failed to resolve table %s: %v", table.ID, err)
			return nil, fmt.Errorf("%w: table %s: %v", ErrInternal, table.ID, err)
		}

		statuses = append(statuses, TableStatus{
			Table:       table,
			Status:      availability.StatusFor(current),
			Reservation: current,
		})
	}

	return &Response{
		Date:   date,
		Time:   instant,
		Tables: statuses,
	}, nil
}
