package deskinventory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
	deskBookingRepo "github.com/m04kA/SMC-DeskBooker/internal/infra/storage/desk_booking"
	"github.com/m04kA/SMC-DeskBooker/pkg/logger"
)

type MockDeskBookingRepository struct {
	mock.Mock
}

func (m *MockDeskBookingRepository) GetBookedDeskIDs(ctx context.Context, date time.Time) ([]int64, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

var bookingDate = time.Date(2021, 7, 25, 0, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	bookings := new(MockDeskBookingRepository)
	bookings.On("GetBookedDeskIDs", mock.Anything, bookingDate).Return([]int64{}, nil).Maybe()

	return newTestClientWithBookings(t, handler, bookings)
}

func newTestClientWithBookings(t *testing.T, handler http.HandlerFunc, bookings DeskBookingRepository) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, time.Second, bookings, logger.NewNop())
}

func TestClient_GetAvailableDesks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/desks/available", r.URL.Path)
		assert.Equal(t, "2021-07-25", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 12}, {"id": 7}]`))
	})

	desks, err := client.GetAvailableDesks(context.Background(), bookingDate)

	require.NoError(t, err)
	assert.Equal(t, []*domain.Desk{{ID: 12}, {ID: 7}}, desks)
}

func TestClient_GetAvailableDesks_NullIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	desks, err := client.GetAvailableDesks(context.Background(), bookingDate)

	require.NoError(t, err)
	assert.NotNil(t, desks)
	assert.Empty(t, desks)
}

func TestClient_GetAvailableDesks_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"bad request", http.StatusBadRequest},
		{"server error", http.StatusInternalServerError},
		{"unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.GetAvailableDesks(context.Background(), bookingDate)

			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestClient_GetAvailableDesks_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	})

	_, err := client.GetAvailableDesks(context.Background(), bookingDate)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetAvailableDesks_Unreachable(t *testing.T) {
	bookings := new(MockDeskBookingRepository)
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, bookings, logger.NewNop())

	_, err := client.GetAvailableDesks(context.Background(), bookingDate)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestClient_GetAvailableDesks_SkipsLocallyBooked(t *testing.T) {
	bookings := new(MockDeskBookingRepository)
	bookings.On("GetBookedDeskIDs", mock.Anything, bookingDate).Return([]int64{12}, nil)

	client := newTestClientWithBookings(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 12}, {"id": 7}, {"id": 3}]`))
	}, bookings)

	desks, err := client.GetAvailableDesks(context.Background(), bookingDate)

	require.NoError(t, err)
	assert.Equal(t, []*domain.Desk{{ID: 7}, {ID: 3}}, desks)
	bookings.AssertExpectations(t)
}

func TestClient_GetAvailableDesks_BookingsError(t *testing.T) {
	repoErr := errors.New("connection reset")

	bookings := new(MockDeskBookingRepository)
	bookings.On("GetBookedDeskIDs", mock.Anything, bookingDate).Return(nil, repoErr)

	client := newTestClientWithBookings(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 12}]`))
	}, bookings)

	desks, err := client.GetAvailableDesks(context.Background(), bookingDate)

	assert.Nil(t, desks)
	assert.Same(t, repoErr, err)
}

// Инвентарь продолжает отдавать стол 12 после того, как он забронирован в postgres
func TestClient_GetAvailableDesks_WithPostgresBookings(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := deskBookingRepo.NewRepository(db)

	client := newTestClientWithBookings(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 12}, {"id": 7}]`))
	}, repo)

	bookedQuery := regexp.QuoteMeta("SELECT desk_id FROM desk_bookings WHERE booking_date = $1")

	sqlMock.ExpectQuery(bookedQuery).
		WithArgs("2021-07-25").
		WillReturnRows(sqlmock.NewRows([]string{"desk_id"}))
	sqlMock.ExpectQuery(regexp.QuoteMeta("INSERT INTO desk_bookings")).
		WithArgs(int64(12), "James", "Paul", "thomasPaul@aol.com", "2021-07-25").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
	sqlMock.ExpectQuery(bookedQuery).
		WithArgs("2021-07-25").
		WillReturnRows(sqlmock.NewRows([]string{"desk_id"}).AddRow(12))

	first, err := client.GetAvailableDesks(context.Background(), bookingDate)
	require.NoError(t, err)
	require.Equal(t, []*domain.Desk{{ID: 12}, {ID: 7}}, first)

	booking := &domain.DeskBooking{
		DeskID:      first[0].ID,
		FirstName:   "James",
		LastName:    "Paul",
		Email:       "thomasPaul@aol.com",
		BookingDate: bookingDate,
	}
	require.NoError(t, repo.Save(context.Background(), booking))
	assert.Equal(t, int64(1), booking.ID)

	second, err := client.GetAvailableDesks(context.Background(), bookingDate)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Desk{{ID: 7}}, second)

	require.NoError(t, sqlMock.ExpectationsWereMet())
}
