package book_desk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
	deskBookingRepo "github.com/m04kA/SMC-DeskBooker/internal/infra/storage/desk_booking"
	bookDesk "github.com/m04kA/SMC-DeskBooker/internal/usecase/book_desk"
	"github.com/m04kA/SMC-DeskBooker/pkg/logger"
	"github.com/m04kA/SMC-DeskBooker/pkg/ptr"
)

type MockBookDeskUseCase struct {
	mock.Mock
}

func (m *MockBookDeskUseCase) Execute(ctx context.Context, req *bookDesk.Request) (*bookDesk.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookDesk.Response), args.Error(1)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordBookingResult(code string) {
	m.Called(code)
}

const validBody = `{"firstName":"James","lastName":"Paul","email":"thomasPaul@aol.com","date":"2021-07-25"}`

var bookingDate = time.Date(2021, 7, 25, 0, 0, 0, 0, time.UTC)

func expectedUseCaseRequest() *bookDesk.Request {
	return &bookDesk.Request{
		FirstName: "James",
		LastName:  "Paul",
		Email:     "thomasPaul@aol.com",
		Date:      bookingDate,
	}
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/desk-bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	uc := new(MockBookDeskUseCase)
	recorder := new(MockRecorder)

	uc.On("Execute", mock.Anything, expectedUseCaseRequest()).Return(&bookDesk.Response{
		FirstName:     "James",
		LastName:      "Paul",
		Email:         "thomasPaul@aol.com",
		Date:          bookingDate,
		Code:          domain.ResultSuccess,
		DeskBookingID: ptr.Ptr(int64(5)),
	}, nil)
	recorder.On("RecordBookingResult", "Success").Once()

	rec := serve(NewHandler(uc, recorder, logger.NewNop()), validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookDeskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, BookDeskResponse{
		FirstName:     "James",
		LastName:      "Paul",
		Email:         "thomasPaul@aol.com",
		Date:          "2021-07-25",
		Code:          "Success",
		DeskBookingID: ptr.Ptr(int64(5)),
	}, resp)
	recorder.AssertExpectations(t)
}

func TestHandler_Handle_NoDeskAvailable(t *testing.T) {
	uc := new(MockBookDeskUseCase)
	recorder := new(MockRecorder)

	uc.On("Execute", mock.Anything, mock.Anything).Return(&bookDesk.Response{
		FirstName: "James",
		LastName:  "Paul",
		Email:     "thomasPaul@aol.com",
		Date:      bookingDate,
		Code:      domain.ResultNoDeskAvailable,
	}, nil)
	recorder.On("RecordBookingResult", "NoDeskAvailable").Once()

	rec := serve(NewHandler(uc, recorder, logger.NewNop()), validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NotContains(t, rec.Body.String(), "deskBookingId")

	var resp BookDeskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NoDeskAvailable", resp.Code)
	assert.Equal(t, "2021-07-25", resp.Date)
	recorder.AssertExpectations(t)
}

func TestHandler_Handle_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"firstName":`},
		{"unknown field", `{"firstName":"James","desk":3}`},
		{"invalid date", `{"firstName":"James","date":"25.07.2021"}`},
		{"missing date", `{"firstName":"James"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockBookDeskUseCase)

			rec := serve(NewHandler(uc, NopRecorder{}, logger.NewNop()), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Handle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "desk taken concurrently",
			err:    fmt.Errorf("%w: desk_id=7, date=2021-07-25", deskBookingRepo.ErrDeskAlreadyBooked),
			status: http.StatusConflict,
		},
		{
			name:   "desk unknown to storage",
			err:    fmt.Errorf("%w: desk_id=99", deskBookingRepo.ErrDeskNotFound),
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "storage failure",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockBookDeskUseCase)
			recorder := new(MockRecorder)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, recorder, logger.NewNop()), validBody)

			assert.Equal(t, tt.status, rec.Code)
			recorder.AssertNotCalled(t, "RecordBookingResult", mock.Anything)
		})
	}
}

func TestHandler_Handle_SuccessWithoutID(t *testing.T) {
	uc := new(MockBookDeskUseCase)
	recorder := new(MockRecorder)

	uc.On("Execute", mock.Anything, mock.Anything).Return(&bookDesk.Response{
		Date: bookingDate,
		Code: domain.ResultSuccess,
	}, nil)
	recorder.On("RecordBookingResult", "Success").Once()

	var rec *httptest.ResponseRecorder
	require.NotPanics(t, func() {
		rec = serve(NewHandler(uc, recorder, logger.NewNop()), validBody)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
