package get_available_desks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
)

// DeskRepository интерфейс источника свободных столов
type DeskRepository interface {
	GetAvailableDesks(ctx context.Context, date time.Time) ([]*domain.Desk, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
