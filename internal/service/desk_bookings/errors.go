package desk_bookings

import "errors"

var (
	// ErrDeskBookingNotFound возвращается, когда бронирование не найдено
	ErrDeskBookingNotFound = errors.New("desk booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
