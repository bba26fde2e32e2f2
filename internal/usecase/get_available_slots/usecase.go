package get_available_slots

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

// UseCase use case для получения допустимых времен начала бронирования на дату
type UseCase struct {
	configProvider ConfigProvider
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс ресторана, определяет "сегодня"
func NewUseCase(
	configProvider ConfigProvider,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		configProvider: configProvider,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{Location: location},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := availability.CivilDay(req.Date)
	uc.logger.Info("GetAvailableSlots: date=%s", date.Format(domain.DateFormat))

	// 2. Получаем текущее время ресторана
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию ресторана
	config, err := uc.configProvider.Current(ctx)
	if err != nil {
		if errors.Is(err, configService.ErrConfigNotFound) {
			uc.logger.Warn("GetAvailableSlots: restaurant config not found")
			return nil, ErrRestaurantNotConfigured
		}
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	empty := &Response{Date: date, Slots: []types.TimeString{}}

	// 4. Проверяем, что на дату можно бронировать
	available, err := availability.IsDateAvailable(config, date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: incomplete config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRestaurantNotConfigured, err)
	}
	if !available {
		uc.logger.Info("GetAvailableSlots: date %s is not bookable", date.Format(domain.DateFormat))
		return empty, nil
	}

	// 5. Генерируем слоты и убираем прошедшие
	slots, err := availability.GenerateSlots(config, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRestaurantNotConfigured, err)
	}
	slots = dropPastSlots(slots, date, now)

	uc.metrics.ObserveAvailability("slots", len(slots))
	uc.logger.Info("GetAvailableSlots: generated %d slots for %s", len(slots), date.Format(domain.DateFormat))

	return &Response{
		Date:     date,
		Bookable: true,
		Slots:    slots,
	}, nil
}
