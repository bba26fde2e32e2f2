package get_available_tables

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configService "github.com/m04kA/SMC-ReservationService/internal/service/config"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UseCase use case для поиска свободных столов на дату, время и размер компании
type UseCase struct {
	configProvider  ConfigProvider
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configProvider ConfigProvider,
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		configProvider:  configProvider,
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{Location: location},
		logger:          logger,
	}
}

// Execute выполняет use case поиска свободных столов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTables: validation failed: %v", err)
		return nil, err
	}

	date := availability.CivilDay(req.Date)
	uc.logger.Info("GetAvailableTables: date=%s, time=%s, party=%d",
		date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 2. Получаем текущее время и конфигурацию
	now := uc.timeProvider.Now()

	config, err := uc.configProvider.Current(ctx)
	if err != nil {
		if errors.Is(err, configService.ErrConfigNotFound) {
			uc.logger.Warn("GetAvailableTables: restaurant config not found")
			return nil, ErrRestaurantNotConfigured
		}
		uc.logger.Error("GetAvailableTables: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 3. Окно бронирования
	endTime, err := availability.EndTime(config, req.StartTime)
	if err != nil {
		uc.logger.Warn("GetAvailableTables: failed to compute end time: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp := &Response{
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   endTime,
		Tables:    []*domain.Table{},
	}

	// Время начала вне сетки слотов (или выходной день): бронирование там невозможно
	isSlot, err := availability.IsSlot(config, date, req.StartTime)
	if err != nil {
		if errors.Is(err, availability.ErrConfigurationIncomplete) {
			uc.logger.Error("GetAvailableTables: incomplete config: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRestaurantNotConfigured, err)
		}
		uc.logger.Warn("GetAvailableTables: failed to resolve slots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !isSlot {
		uc.logger.Info("GetAvailableTables: %s is not a slot on %s", req.StartTime, date.Format(domain.DateFormat))
		return resp, nil
	}

	// Сегодняшний слот, который уже начался, недоступен
	if availability.SameDay(date, now) && req.StartTime.IsBefore(types.NewTimeString(now)) {
		uc.logger.Info("GetAvailableTables: start time %s already passed", req.StartTime)
		return resp, nil
	}

	// 4. Загружаем активные столы и бронирования на дату
	tables, err := uc.tableRepo.List(ctx, domain.TablesFilter{})
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{Date: &date})
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Считаем свободные столы
	free, err := availability.AvailableTables(config, availability.Query{
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   endTime,
		PartySize: req.PartySize,
		Today:     now,
	}, tables, reservations)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrConfigurationIncomplete):
			uc.logger.Error("GetAvailableTables: incomplete config: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRestaurantNotConfigured, err)
		case errors.Is(err, availability.ErrInvalidInput):
			uc.logger.Warn("GetAvailableTables: invalid input: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("GetAvailableTables: failed to compute availability: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	resp.Tables = free
	uc.metrics.ObserveAvailability("tables", len(free))
	uc.logger.Info("GetAvailableTables: %d of %d tables available", len(free), len(tables))

	return resp, nil
}
