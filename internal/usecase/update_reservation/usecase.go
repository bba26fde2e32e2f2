package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	configService "github.com/m04kA/SMC-ReservationService/internal/service/config"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	configProvider  ConfigProvider
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configProvider ConfigProvider,
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		configProvider:  configProvider,
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{Location: location},
		logger:          logger,
	}
}

// Execute выполняет use case изменения бронирования
// 1. Бронирование блокируется и проверяется, что оно еще открыто
// 2. Если дата или время начала изменились, они проверяются как при создании
// 3. Столы проверяются на конфликты без учета самого бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		uc.metrics.IncReservationWrite("update", "invalid")
		return nil, err
	}

	date := availability.CivilDay(req.Date)
	uc.logger.Info("UpdateReservation: id=%s, date=%s, time=%s, party=%d, tables=%v",
		req.ID, date.Format(domain.DateFormat), req.StartTime, req.PartySize, req.TableIDs)

	now := uc.timeProvider.Now()

	config, err := uc.configProvider.Current(ctx)
	if err != nil {
		if errors.Is(err, configService.ErrConfigNotFound) {
			uc.logger.Warn("UpdateReservation: restaurant config not found")
			return nil, ErrRestaurantNotConfigured
		}
		uc.logger.Error("UpdateReservation: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	var updated *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Текущее состояние бронирования
		existing, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return passRetryable(err, "failed to get reservation")
		}
		if existing.Status.IsTerminal() {
			return fmt.Errorf("%w: status is %s", ErrReservationClosed, existing.Status)
		}

		// 2. Окно бронирования
		endTime := existing.EndTime
		if !unchangedWindow(existing, date, req.StartTime) {
			endTime, err = validateSchedule(config, date, req.StartTime, now)
			if err != nil {
				return err
			}
		}

		candidate := &domain.Reservation{
			ID: existing.ID,
			Customer: domain.Customer{
				ID:        existing.Customer.ID,
				Name:      strings.TrimSpace(req.Customer.Name),
				Phone:     strings.TrimSpace(req.Customer.Phone),
				Email:     req.Customer.Email,
				Notes:     req.Customer.Notes,
				VIPStatus: req.Customer.VIPStatus,
			},
			PartySize:       req.PartySize,
			Date:            date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			TableIDs:        req.TableIDs,
			Status:          existing.Status,
			SpecialRequests: req.SpecialRequests,
			CreatedAt:       existing.CreatedAt,
		}

		// 3. Конфликты с другими бронированиями на новую дату
		tables, err := uc.tableRepo.List(txCtx, domain.TablesFilter{IncludeInactive: true})
		if err != nil {
			return passRetryable(err, "failed to get tables")
		}

		reservations, err := uc.reservationRepo.List(txCtx, domain.ReservationsFilter{Date: &date})
		if err != nil {
			return passRetryable(err, "failed to get reservations")
		}

		if err := availability.ValidateAssignment(candidate, tables, reservations, existing.ID); err != nil {
			return err
		}

		// 4. Сохраняем
		updated, err = uc.reservationRepo.Update(txCtx, candidate)
		if err != nil {
			return mapUpdateError(err, candidate.TableIDs)
		}
		return nil
	})
	if err != nil {
		return nil, uc.handleTxError(req.ID, err)
	}

	uc.metrics.IncReservationWrite("update", "ok")
	uc.logger.Info("UpdateReservation: successfully updated reservation id=%s", updated.ID)

	return &Response{Reservation: updated}, nil
}

// passRetryable пропускает конфликт сериализации без обертки, чтобы транзакция повторилась
func passRetryable(err error, msg string) error {
	if txmanager.IsSerializationFailure(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}

// mapUpdateError переводит ошибки записи в доменные ошибки
func mapUpdateError(err error, tableIDs []string) error {
	var booked *reservationRepo.TableBookedError
	if errors.As(err, &booked) {
		ids := tableIDs
		if booked.TableID != "" {
			ids = []string{booked.TableID}
		}
		return &availability.ConflictError{TableIDs: ids}
	}
	if errors.Is(err, reservationRepo.ErrTableNotFound) {
		return &availability.ConflictError{TableIDs: tableIDs}
	}
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		return ErrReservationNotFound
	}
	return passRetryable(err, "failed to update reservation")
}

// businessErrors ошибки, которые возвращаются из транзакции без изменений
var businessErrors = []error{
	ErrReservationNotFound,
	ErrReservationClosed,
	ErrRestaurantNotConfigured,
	ErrDateNotAvailable,
	ErrInvalidTimeSlot,
	ErrTooLateToBook,
}

func (uc *UseCase) handleTxError(id string, err error) error {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			uc.logger.Warn("UpdateReservation: reservation id=%s: %v", id, err)
			uc.metrics.IncReservationWrite("update", "rejected")
			return err
		}
	}

	switch {
	case errors.Is(err, availability.ErrConflictDetected):
		tables, _ := availability.ConflictingTables(err)
		uc.logger.Warn("UpdateReservation: tables not available for id=%s: %v", id, tables)
		uc.metrics.IncConflict()
		uc.metrics.IncReservationWrite("update", "conflict")
		return fmt.Errorf("%w: %w", ErrTablesNotAvailable, err)
	case errors.Is(err, availability.ErrInvalidInput):
		uc.logger.Warn("UpdateReservation: invalid reservation id=%s: %v", id, err)
		uc.metrics.IncReservationWrite("update", "invalid")
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case txmanager.IsSerializationFailure(err):
		uc.logger.Warn("UpdateReservation: serialization retries exhausted for id=%s: %v", id, err)
		uc.metrics.IncReservationWrite("update", "retry_exhausted")
		return ErrConcurrentUpdate
	default:
		uc.logger.Error("UpdateReservation: failed to update reservation id=%s: %v", id, err)
		uc.metrics.IncReservationWrite("update", "error")
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// unchangedWindow сообщает, совпадает ли окно бронирования с текущим
func unchangedWindow(existing *domain.Reservation, date time.Time, start types.TimeString) bool {
	return availability.SameDay(existing.Date, date) && existing.StartTime == start
}
