package models

import (
	"time"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
)

// DeskBookingResponse ответ с данными бронирования стола
type DeskBookingResponse struct {
	ID          int64  `json:"id"`
	DeskID      int64  `json:"deskId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	BookingDate string `json:"bookingDate"` // "2021-07-25"
	CreatedAt   string `json:"createdAt"`
}

// FromDomainDeskBooking конвертирует domain модель в response
func FromDomainDeskBooking(b *domain.DeskBooking) *DeskBookingResponse {
	return &DeskBookingResponse{
		ID:          b.ID,
		DeskID:      b.DeskID,
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}
