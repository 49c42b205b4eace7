package get_available_desks

import "time"

// Request модель запроса на получение свободных столов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются столы
}

// Response модель ответа со списком свободных столов
type Response struct {
	Date  time.Time
	Desks []Desk // В порядке, заданном источником
}

// Desk модель свободного стола
type Desk struct {
	ID int64
}
