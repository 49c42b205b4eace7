package get_available_desks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBooker/internal/api/handlers"
	getAvailableDesks "github.com/m04kA/SMC-DeskBooker/internal/usecase/get_available_desks"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableDesksUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDesksUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/desks/available
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /desks/available - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /desks/available - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDesks.ErrInvalidInput):
			h.logger.Warn("GET /desks/available - Invalid input: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /desks/available - Failed to get desks: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /desks/available - Desks retrieved successfully: date=%s, desks_count=%d",
		dateStr, len(result.Desks))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
