package get_available_desks

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
)

// UseCase use case для получения свободных столов на дату
type UseCase struct {
	deskRepo DeskRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(deskRepo DeskRepository, logger Logger) *UseCase {
	return &UseCase{
		deskRepo: deskRepo,
		logger:   logger,
	}
}

// Execute возвращает свободные на дату столы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Date.IsZero() {
		uc.logger.Warn("GetAvailableDesks: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableDesks: date=%s", date)

	desks, err := uc.deskRepo.GetAvailableDesks(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableDesks: failed to get desks for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: failed to get available desks: %v", ErrInternal, err)
	}

	result := make([]Desk, 0, len(desks))
	for _, d := range desks {
		result = append(result, Desk{ID: d.ID})
	}

	uc.logger.Info("GetAvailableDesks: date=%s, desks_count=%d", date, len(result))

	return &Response{
		Date:  req.Date,
		Desks: result,
	}, nil
}
