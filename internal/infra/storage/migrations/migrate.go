package migrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

// ErrMigrate возвращается, если не удалось применить схему
var ErrMigrate = errors.New("migrations: failed to apply schema")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrate применяет схему базы данных
// Если в контексте есть транзакция, выполняется в ней
func Migrate(ctx context.Context, db dbmetrics.DBExecutor, logger Logger) error {
	executor := dbmetrics.GetExecutor(ctx, db)

	for i, stmt := range statements {
		if _, err := executor.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: statement %d: %v", ErrMigrate, i+1, err)
		}
	}

	logger.Info("Migrate: applied %d statements", len(statements))
	return nil
}
