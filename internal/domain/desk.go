package domain

// Desk represents a bookable desk
type Desk struct {
	ID int64
}
