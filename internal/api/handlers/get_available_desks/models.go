package get_available_desks

import (
	"time"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
	getAvailableDesks "github.com/m04kA/SMC-DeskBooker/internal/usecase/get_available_desks"
)

// AvailableDesksResponse HTTP response model
type AvailableDesksResponse struct {
	Date  string         `json:"date"`
	Desks []DeskResponse `json:"desks"`
}

// DeskResponse HTTP модель стола
type DeskResponse struct {
	ID int64 `json:"id"`
}

// ToUseCaseRequest формирует запрос к use case из query параметра date
func ToUseCaseRequest(dateStr string) (*getAvailableDesks.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableDesks.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDesks.Response) *AvailableDesksResponse {
	desks := make([]DeskResponse, 0, len(resp.Desks))
	for _, d := range resp.Desks {
		desks = append(desks, DeskResponse{ID: d.ID})
	}

	return &AvailableDesksResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Desks: desks,
	}
}
