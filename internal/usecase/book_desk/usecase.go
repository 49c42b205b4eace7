package book_desk

import (
	"context"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
	"github.com/m04kA/SMC-DeskBooker/pkg/ptr"
)

// UseCase бронирование стола на дату
type UseCase struct {
	deskRepo    DeskRepository
	bookingRepo DeskBookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	deskRepo DeskRepository,
	bookingRepo DeskBookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		deskRepo:    deskRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute бронирует первый свободный стол на дату запроса.
// Ошибки хранилищ возвращаются без изменений, повторных попыток нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		uc.logger.Warn("BookDesk: request is nil")
		return nil, &ArgumentError{Param: "request"}
	}

	uc.logger.Info("BookDesk: email=%s, date=%s", req.Email, req.Date.Format(domain.DateFormat))

	desks, err := uc.deskRepo.GetAvailableDesks(ctx, req.Date)
	if err != nil {
		uc.logger.Error("BookDesk: failed to get available desks for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	if len(desks) == 0 {
		uc.logger.Info("BookDesk: no desk available on %s", req.Date.Format(domain.DateFormat))
		return newResponse(req, domain.ResultNoDeskAvailable), nil
	}

	booking := &domain.DeskBooking{
		DeskID:      desks[0].ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		BookingDate: req.Date,
	}

	if err := uc.bookingRepo.Save(ctx, booking); err != nil {
		uc.logger.Error("BookDesk: failed to save booking for desk id=%d: %v", booking.DeskID, err)
		return nil, err
	}

	uc.logger.Info("BookDesk: successfully booked desk id=%d, booking id=%d", booking.DeskID, booking.ID)

	resp := newResponse(req, domain.ResultSuccess)
	resp.DeskBookingID = ptr.Ptr(booking.ID)
	return resp, nil
}
