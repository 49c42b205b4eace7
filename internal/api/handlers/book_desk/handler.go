package book_desk

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBooker/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooker/internal/domain"
	deskBookingRepo "github.com/m04kA/SMC-DeskBooker/internal/infra/storage/desk_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgDeskAlreadyBooked  = "стол уже забронирован на выбранную дату"
	msgDeskNotFound       = "выбранный стол отсутствует в списке столов"
)

type Handler struct {
	useCase  BookDeskUseCase
	recorder ResultRecorder
	logger   Logger
}

func NewHandler(useCase BookDeskUseCase, recorder ResultRecorder, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		recorder: recorder,
		logger:   logger,
	}
}

// Handle POST /api/v1/desk-bookings
// 201 - стол забронирован, 409 - свободных столов нет (тело ответа то же),
// 422 - источник свободных столов вернул стол, которого нет в хранилище
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookDeskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /desk-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /desk-bookings - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, deskBookingRepo.ErrDeskAlreadyBooked):
			h.logger.Warn("POST /desk-bookings - Desk already booked: email=%s, date=%s", req.Email, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDeskAlreadyBooked)

		case errors.Is(err, deskBookingRepo.ErrDeskNotFound):
			h.logger.Error("POST /desk-bookings - Desk from availability source is unknown to storage: email=%s, date=%s, error=%v",
				req.Email, req.Date, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDeskNotFound)

		default:
			h.logger.Error("POST /desk-bookings - Failed to book desk: email=%s, date=%s, error=%v",
				req.Email, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.recorder.RecordBookingResult(string(result.Code))
	response := FromUseCaseResponse(result)

	if result.Code == domain.ResultNoDeskAvailable {
		h.logger.Info("POST /desk-bookings - No desk available: email=%s, date=%s", req.Email, req.Date)
		handlers.RespondJSON(w, http.StatusConflict, response)
		return
	}

	if result.DeskBookingID == nil {
		h.logger.Error("POST /desk-bookings - Booking succeeded without id: email=%s, date=%s", req.Email, req.Date)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /desk-bookings - Desk booked successfully: booking_id=%d, email=%s, date=%s",
		*result.DeskBookingID, req.Email, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
