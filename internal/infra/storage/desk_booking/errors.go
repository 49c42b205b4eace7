package desk_booking

import "errors"

var (
	// ErrDeskBookingNotFound возвращается, когда бронирование не найдено
	ErrDeskBookingNotFound = errors.New("desk_booking.repository: desk booking not found")

	// ErrDeskAlreadyBooked возвращается, когда стол уже забронирован на эту дату
	ErrDeskAlreadyBooked = errors.New("desk_booking.repository: desk already booked on this date")

	// ErrDeskNotFound возвращается, когда стола нет в таблице desks
	ErrDeskNotFound = errors.New("desk_booking.repository: desk not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("desk_booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("desk_booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("desk_booking.repository: failed to scan row")
)
