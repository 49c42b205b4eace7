package book_desk

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
)

// DeskRepository интерфейс источника свободных столов.
// Порядок возвращаемых столов определяет, какой стол будет выбран
type DeskRepository interface {
	GetAvailableDesks(ctx context.Context, date time.Time) ([]*domain.Desk, error)
}

// DeskBookingRepository интерфейс хранилища бронирований.
// После успешного Save поле booking.ID содержит присвоенный идентификатор
type DeskBookingRepository interface {
	Save(ctx context.Context, booking *domain.DeskBooking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
