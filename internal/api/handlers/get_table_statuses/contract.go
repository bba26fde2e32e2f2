package get_table_statuses

import (
	"context"

	getTableStatuses "github.com/m04kA/SMC-ReservationService/internal/usecase/get_table_statuses"
)

type GetTableStatusesUseCase interface {
	Execute(ctx context.Context, req *getTableStatuses.Request) (*getTableStatuses.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
