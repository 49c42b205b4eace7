package desk_bookings

import (
	"context"
	"errors"
	"fmt"

	deskBookingRepo "github.com/m04kA/SMC-DeskBooker/internal/infra/storage/desk_booking"
	"github.com/m04kA/SMC-DeskBooker/internal/service/desk_bookings/models"
)

// Service сервис чтения бронирований столов
type Service struct {
	bookingRepo DeskBookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo DeskBookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование стола по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.DeskBookingResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	s.logger.Info("GetByID: fetching desk booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, deskBookingRepo.ErrDeskBookingNotFound) {
			s.logger.Warn("GetByID: desk booking id=%d not found", id)
			return nil, ErrDeskBookingNotFound
		}
		s.logger.Error("GetByID: repository error for desk booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched desk booking id=%d", id)
	return models.FromDomainDeskBooking(booking), nil
}
