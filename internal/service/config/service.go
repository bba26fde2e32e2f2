package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configCache "github.com/m04kA/SMC-ReservationService/internal/infra/cache/config"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/config"
	"github.com/m04kA/SMC-ReservationService/internal/service/config/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Service сервис для работы с конфигурацией ресторана
type Service struct {
	configRepo ConfigRepository
	cache      ConfigCache
	txManager  TxManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
// cache может быть nil
func NewService(
	configRepo ConfigRepository,
	cache ConfigCache,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		cache:      cache,
		txManager:  txManager,
		logger:     logger,
	}
}

// Current возвращает текущую конфигурацию в виде domain модели
// Сначала читает кэш, при промахе читает базу и прогревает кэш
func (s *Service) Current(ctx context.Context) (*domain.RestaurantConfig, error) {
	if s.cache != nil {
		cfg, err := s.cache.Get(ctx, domain.ConfigID)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, configCache.ErrCacheMiss) {
			s.logger.Warn("Current: cache read failed, falling back to database: %v", err)
		}
	}

	cfg, err := s.configRepo.Get(ctx, domain.ConfigID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return nil, ErrConfigNotFound
		}
		s.logger.Error("Current: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cfg); err != nil {
			s.logger.Warn("Current: failed to cache config: %v", err)
		}
	}

	return cfg, nil
}

// Get возвращает конфигурацию ресторана
func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	cfg, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainConfig(cfg), nil
}

// Replace целиком заменяет конфигурацию ресторана
// 1. Конвертирует и валидирует запрос (все 7 дней, интервалы, длительности)
// 2. Записывает конфигурацию и расписание в одной транзакции
// 3. Сбрасывает кэш
func (s *Service) Replace(ctx context.Context, req *models.ReplaceConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Replace: replacing restaurant config")

	cfg, err := toDomainConfig(req)
	if err != nil {
		s.logger.Warn("Replace: invalid request: %v", err)
		return nil, err
	}

	if err := availability.ValidateConfig(cfg); err != nil {
		s.logger.Warn("Replace: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var saved *domain.RestaurantConfig
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.configRepo.Replace(ctx, cfg)
		return err
	})
	if err != nil {
		s.logger.Error("Replace: failed to save config: %v", err)
		return nil, fmt.Errorf("%w: failed to save config: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, domain.ConfigID); err != nil {
			s.logger.Warn("Replace: failed to invalidate cache: %v", err)
		}
	}

	s.logger.Info("Replace: restaurant config replaced, slot=%d, duration=%d",
		saved.TimeSlotDuration, saved.ReservationDuration)

	return models.FromDomainConfig(saved), nil
}

// EnsureDefault создает конфигурацию по умолчанию, если ее еще нет
// Возвращает true, если конфигурация была создана
func (s *Service) EnsureDefault(ctx context.Context) (bool, error) {
	var created bool
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.configRepo.InsertDefaultIfMissing(ctx, domain.DefaultRestaurantConfig())
		return err
	})
	if err != nil {
		s.logger.Error("EnsureDefault: failed to insert default config: %v", err)
		return false, fmt.Errorf("%w: failed to insert default config: %v", ErrInternal, err)
	}

	if created {
		s.logger.Info("EnsureDefault: default restaurant config created")
	}
	return created, nil
}

func toDomainConfig(req *models.ReplaceConfigRequest) (*domain.RestaurantConfig, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	name := req.Name
	if name == "" {
		name = domain.DefaultRestaurantName
	}
	if len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	hours := make(map[time.Weekday]domain.WorkingHours, len(req.WorkingHours))
	for key, wh := range req.WorkingHours {
		day, ok := models.ParseWeekdayKey(key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, key)
		}

		parsed := domain.WorkingHours{IsOpen: wh.IsOpen}
		if wh.IsOpen {
			openTime, err := types.NewTimeStringFromString(wh.OpenTime)
			if err != nil {
				return nil, fmt.Errorf("%w: %s openTime: %v", ErrInvalidInput, key, err)
			}
			closeTime, err := types.NewTimeStringFromString(wh.CloseTime)
			if err != nil {
				return nil, fmt.Errorf("%w: %s closeTime: %v", ErrInvalidInput, key, err)
			}
			parsed.OpenTime = openTime
			parsed.CloseTime = closeTime
		}
		hours[day] = parsed
	}

	return &domain.RestaurantConfig{
		ID:                  domain.ConfigID,
		Name:                name,
		WorkingHours:        hours,
		TimeSlotDuration:    req.TimeSlotDuration,
		ReservationDuration: req.ReservationDuration,
		AdvanceBookingDays:  ptr.Deref(req.AdvanceBookingDays, domain.DefaultAdvanceBookingDays),
	}, nil
}
