package config

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации ресторана
type ConfigRepository interface {
	Get(ctx context.Context, id string) (*domain.RestaurantConfig, error)
	Replace(ctx context.Context, cfg *domain.RestaurantConfig) (*domain.RestaurantConfig, error)
	InsertDefaultIfMissing(ctx context.Context, cfg *domain.RestaurantConfig) (bool, error)
}

// ConfigCache интерфейс кэша конфигурации
// Может отсутствовать (nil), тогда конфигурация всегда читается из базы
type ConfigCache interface {
	Get(ctx context.Context, id string) (*domain.RestaurantConfig, error)
	Set(ctx context.Context, cfg *domain.RestaurantConfig) error
	Invalidate(ctx context.Context, id string) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
