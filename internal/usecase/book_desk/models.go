package book_desk

import (
	"time"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
)

// Request модель запроса на бронирование стола
type Request struct {
	FirstName string
	LastName  string
	Email     string
	Date      time.Time // Дата бронирования (сравнивается точно, без нормализации)
}

// Response результат попытки бронирования
type Response struct {
	FirstName     string
	LastName      string
	Email         string
	Date          time.Time
	Code          domain.ResultCode
	DeskBookingID *int64 // Заполнен только при Code == domain.ResultSuccess
}

// newResponse копирует данные запроса в результат
func newResponse(req *Request, code domain.ResultCode) *Response {
	return &Response{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Date:      req.Date,
		Code:      code,
	}
}
