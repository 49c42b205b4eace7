package desk_booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
	"github.com/m04kA/SMC-DeskBooker/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Repository репозиторий бронирований столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет бронирование и записывает присвоенные БД id и created_at в booking.
// Уникальный индекс (desk_id, booking_date) защищает от двойного бронирования стола
func (r *Repository) Save(ctx context.Context, booking *domain.DeskBooking) error {
	query, args, err := psqlbuilder.Insert("desk_bookings").
		Columns(
			"desk_id",
			"first_name",
			"last_name",
			"email",
			"booking_date",
		).
		Values(
			booking.DeskID,
			booking.FirstName,
			booking.LastName,
			booking.Email,
			booking.BookingDate.Format(domain.DateFormat),
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pgUniqueViolation:
				return fmt.Errorf("%w: desk_id=%d, date=%s",
					ErrDeskAlreadyBooked, booking.DeskID, booking.BookingDate.Format(domain.DateFormat))
			case pgForeignKeyViolation:
				return fmt.Errorf("%w: desk_id=%d", ErrDeskNotFound, booking.DeskID)
			}
		}
		return fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return nil
}

// GetBookedDeskIDs возвращает id столов, уже забронированных на дату
func (r *Repository) GetBookedDeskIDs(ctx context.Context, date time.Time) ([]int64, error) {
	query, args, err := psqlbuilder.Select("desk_id").
		From("desk_bookings").
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		OrderBy("desk_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedDeskIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedDeskIDs - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetBookedDeskIDs - scan desk_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedDeskIDs - iterate rows: %v", ErrScanRow, err)
	}

	return ids, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.DeskBooking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"desk_id",
		"first_name",
		"last_name",
		"email",
		"booking_date",
		"created_at",
	).
		From("desk_bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.DeskBooking
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.DeskID,
		&booking.FirstName,
		&booking.LastName,
		&booking.Email,
		&booking.BookingDate,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeskBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan desk booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}
