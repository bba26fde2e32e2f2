package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	configService "github.com/m04kA/SMC-ReservationService/internal/service/config"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UUIDGenerator генерирует случайные UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// UseCase use case для создания бронирования
type UseCase struct {
	configProvider  ConfigProvider
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	idGenerator     IDGenerator
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
		idGenerator:     UUIDGenerator{},
		timeProvider:    &RealTimeProvider{Location: location},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка столов и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.IncReservationWrite("create", "invalid")
		return nil, err
	}

	date := availability.CivilDay(req.Date)
	uc.logger.Info("CreateReservation: date=%s, time=%s, party=%d, tables=%v",
		date.Format(domain.DateFormat), req.StartTime, req.PartySize, req.TableIDs)

	// 2. Получаем текущее время и конфигурацию
	now := uc.timeProvider.Now()

	config, err := uc.configProvider.Current(ctx)
	if err != nil {
		if errors.Is(err, configService.ErrConfigNotFound) {
			uc.logger.Warn("CreateReservation: restaurant config not found")
			return nil, ErrRestaurantNotConfigured
		}
		uc.logger.Error("CreateReservation: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 3. Проверяем дату и время начала
	endTime, err := validateSchedule(config, date, req.StartTime, now)
	if err != nil {
		uc.logger.Warn("CreateReservation: schedule check failed: %v", err)
		uc.metrics.IncReservationWrite("create", "invalid")
		return nil, err
	}

	// 4. Собираем бронирование
	customerID := req.Customer.ID
	if customerID == "" {
		customerID = uc.idGenerator.NewID()
	}

	candidate := &domain.Reservation{
		ID: uc.idGenerator.NewID(),
		Customer: domain.Customer{
			ID:        customerID,
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
		Status:          domain.StatusConfirmed,
		SpecialRequests: req.SpecialRequests,
	}

	if err := availability.ValidateReservation(candidate); err != nil {
		uc.logger.Warn("CreateReservation: invalid reservation: %v", err)
		uc.metrics.IncReservationWrite("create", "invalid")
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Проверяем столы и сохраняем в сериализуемой транзакции
	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Все столы, включая неактивные, чтобы различать "нет стола" и "стол выведен"
		tables, err := uc.tableRepo.List(txCtx, domain.TablesFilter{IncludeInactive: true})
		if err != nil {
			return passRetryable(err, "failed to get tables")
		}

		// 5.2. Неотмененные бронирования на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.List(txCtx, domain.ReservationsFilter{Date: &date})
		if err != nil {
			return passRetryable(err, "failed to get reservations")
		}

		// 5.3. Проверяем конфликты
		if err := availability.ValidateAssignment(candidate, tables, reservations, ""); err != nil {
			return err
		}

		// 5.4. Сохраняем
		created, err = uc.reservationRepo.Create(txCtx, candidate)
		if err != nil {
			return mapCreateError(err, candidate.TableIDs)
		}
		return nil
	})
	if err != nil {
		return nil, uc.handleTxError(err)
	}

	uc.metrics.IncReservationWrite("create", "ok")
	uc.logger.Info("CreateReservation: successfully created reservation id=%s", created.ID)

	return &Response{Reservation: created}, nil
}

// validateSchedule проверяет, что дата бронируема, время - один из слотов даты
// и сегодняшний слот еще не начался. Возвращает время окончания
func validateSchedule(config *domain.RestaurantConfig, date time.Time, start types.TimeString, now time.Time) (types.TimeString, error) {
	bookable, err := availability.IsDateAvailable(config, date, now)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRestaurantNotConfigured, err)
	}
	if !bookable {
		return "", fmt.Errorf("%w: %s", ErrDateNotAvailable, date.Format(domain.DateFormat))
	}

	isSlot, err := availability.IsSlot(config, date, start)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if !isSlot {
		return "", fmt.Errorf("%w: %s is not a slot on %s", ErrInvalidTimeSlot, start, date.Format(domain.DateFormat))
	}

	if availability.SameDay(date, now) && start.IsBefore(types.NewTimeString(now)) {
		return "", fmt.Errorf("%w: %s already started", ErrTooLateToBook, start)
	}

	endTime, err := availability.EndTime(config, start)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	return endTime, nil
}

// passRetryable пропускает конфликт сериализации без обертки, чтобы транзакция повторилась
func passRetryable(err error, msg string) error {
	if txmanager.IsSerializationFailure(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}

// mapCreateError переводит ошибки записи в конфликты столов
func mapCreateError(err error, tableIDs []string) error {
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
	return passRetryable(err, "failed to create reservation")
}

func (uc *UseCase) handleTxError(err error) error {
	switch {
	case errors.Is(err, availability.ErrConflictDetected):
		tables, _ := availability.ConflictingTables(err)
		uc.logger.Warn("CreateReservation: tables not available: %v", tables)
		uc.metrics.IncConflict()
		uc.metrics.IncReservationWrite("create", "conflict")
		return fmt.Errorf("%w: %w", ErrTablesNotAvailable, err)
	case errors.Is(err, availability.ErrInvalidInput):
		uc.logger.Warn("CreateReservation: invalid reservation: %v", err)
		uc.metrics.IncReservationWrite("create", "invalid")
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case txmanager.IsSerializationFailure(err):
		uc.logger.Warn("CreateReservation: serialization retries exhausted: %v", err)
		uc.metrics.IncReservationWrite("create", "retry_exhausted")
		return ErrConcurrentUpdate
	default:
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		uc.metrics.IncReservationWrite("create", "error")
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
