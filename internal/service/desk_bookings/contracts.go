package desk_bookings

import (
	"context"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
)

// DeskBookingRepository интерфейс репозитория бронирований столов
type DeskBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.DeskBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
