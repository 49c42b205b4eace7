package deskinventory

import (
	"context"
	"time"
)

// DeskBookingRepository локальное хранилище бронирований.
// Сервис инвентаря не знает о наших бронированиях, поэтому занятые столы отсекаются по нему
type DeskBookingRepository interface {
	GetBookedDeskIDs(ctx context.Context, date time.Time) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
