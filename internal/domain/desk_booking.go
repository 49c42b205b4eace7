package domain

import "time"

// ResultCode represents the outcome of a desk booking attempt
type ResultCode string

const (
	ResultSuccess         ResultCode = "Success"
	ResultNoDeskAvailable ResultCode = "NoDeskAvailable"
)

// DeskBooking represents a confirmed reservation of one desk for one person on one date
type DeskBooking struct {
	ID          int64 // Assigned by the booking store on Save
	DeskID      int64
	FirstName   string
	LastName    string
	Email       string
	BookingDate time.Time

	CreatedAt time.Time
}

