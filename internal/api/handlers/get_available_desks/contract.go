package get_available_desks

import (
	"context"

	getAvailableDesks "github.com/m04kA/SMC-DeskBooker/internal/usecase/get_available_desks"
)

type GetAvailableDesksUseCase interface {
	Execute(ctx context.Context, req *getAvailableDesks.Request) (*getAvailableDesks.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
