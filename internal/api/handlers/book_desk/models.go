package book_desk

import (
	"time"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
	bookDesk "github.com/m04kA/SMC-DeskBooker/internal/usecase/book_desk"
)

// BookDeskRequest HTTP request model
type BookDeskRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Date      string `json:"date"` // "2021-07-25"
}

// BookDeskResponse HTTP response model
type BookDeskResponse struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Date          string `json:"date"`
	Code          string `json:"code"`
	DeskBookingID *int64 `json:"deskBookingId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookDeskRequest) ToUseCaseRequest() (*bookDesk.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &bookDesk.Request{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookDesk.Response) *BookDeskResponse {
	return &BookDeskResponse{
		FirstName:     resp.FirstName,
		LastName:      resp.LastName,
		Email:         resp.Email,
		Date:          resp.Date.Format(domain.DateFormat),
		Code:          string(resp.Code),
		DeskBookingID: resp.DeskBookingID,
	}
}
