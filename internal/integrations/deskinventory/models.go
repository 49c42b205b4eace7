package deskinventory

// Desk модель стола из сервиса инвентаря
type Desk struct {
	ID int64 `json:"id"`
}
