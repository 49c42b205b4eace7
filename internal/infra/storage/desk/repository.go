package desk

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooker/internal/domain"
	"github.com/m04kA/SMC-DeskBooker/pkg/psqlbuilder"
)

// noBookingOnDate условие "на стол нет бронирования на указанную дату"
const noBookingOnDate = "NOT EXISTS (SELECT 1 FROM desk_bookings b WHERE b.desk_id = d.id AND b.booking_date = ?)"

// Repository репозиторий столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAvailableDesks возвращает столы без бронирования на дату, отсортированные по id.
// Первым в списке идет стол с наименьшим id, его и получит бронирование.
// Если свободных столов нет, возвращается пустой (не nil) срез
func (r *Repository) GetAvailableDesks(ctx context.Context, date time.Time) ([]*domain.Desk, error) {
	query, args, err := psqlbuilder.Select("d.id").
		From("desks d").
		Where(noBookingOnDate, date.Format(domain.DateFormat)).
		OrderBy("d.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableDesks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableDesks - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	desks := make([]*domain.Desk, 0)
	for rows.Next() {
		var desk domain.Desk
		if err := rows.Scan(&desk.ID); err != nil {
			return nil, fmt.Errorf("%w: GetAvailableDesks - scan desk: %v", ErrScanRow, err)
		}
		desks = append(desks, &desk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAvailableDesks - iterate rows: %v", ErrScanRow, err)
	}

	return desks, nil
}
