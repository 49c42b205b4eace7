package desk_bookings

import (
	"context"
	"errors"
	"testing"
	"time"

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

func (m *MockDeskBookingRepository) GetByID(ctx context.Context, id int64) (*domain.DeskBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeskBooking), args.Error(1)
}

func TestService_GetByID(t *testing.T) {
	repo := new(MockDeskBookingRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.DeskBooking{
		ID:          5,
		DeskID:      7,
		FirstName:   "James",
		LastName:    "Paul",
		Email:       "thomasPaul@aol.com",
		BookingDate: time.Date(2021, 7, 25, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2021, 7, 20, 9, 30, 0, 0, time.UTC),
	}, nil)

	resp, err := NewService(repo, logger.NewNop()).GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, int64(7), resp.DeskID)
	assert.Equal(t, "2021-07-25", resp.BookingDate)
	assert.Equal(t, "2021-07-20T09:30:00Z", resp.CreatedAt)
}

func TestService_GetByID_Errors(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		repoErr  error
		expected error
	}{
		{"not found", 42, deskBookingRepo.ErrDeskBookingNotFound, ErrDeskBookingNotFound},
		{"repository failure", 42, errors.New("connection reset"), ErrInternal},
		{"non-positive id", 0, nil, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDeskBookingRepository)
			if tt.repoErr != nil {
				repo.On("GetByID", mock.Anything, tt.id).Return(nil, tt.repoErr)
			}

			_, err := NewService(repo, logger.NewNop()).GetByID(context.Background(), tt.id)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
