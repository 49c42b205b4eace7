package get_desk_booking

import (
	"context"

	"github.com/m04kA/SMC-DeskBooker/internal/service/desk_bookings/models"
)

type DeskBookingService interface {
	GetByID(ctx context.Context, id int64) (*models.DeskBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
