package tables

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	List(ctx context.Context, filter domain.TablesFilter) ([]*domain.Table, error)
	Upsert(ctx context.Context, t *domain.Table) (*domain.Table, error)
	DeactivateExcept(ctx context.Context, keepIDs []string) (int64, error)
	DeleteInactive(ctx context.Context) (int64, error)
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
