package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/pkg/psqlbuilder"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// Repository персистентный слой бронирований.
// Авторитетное состояние живет в slotstore; репозиторий обеспечивает
// только долговечность: запись при успешном бронировании, удаление при
// отмене и загрузку окна при старте. Идентификаторы назначает slotstore,
// поэтому вставка выполняется с явным id.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет бронирование
func (r *Repository) Insert(ctx context.Context, b domain.Booking) error {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_id",
			"user_name",
			"shift_date",
			"shift_type",
			"created_at",
		).
		Values(
			b.ID,
			b.UserID,
			b.UserName,
			b.Date.Time(),
			b.ShiftType,
			b.CreatedAt,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет бронирование по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ListByDateRange возвращает бронирования в диапазоне дат (включительно),
// упорядоченные по дате, типу смены и порядку создания
func (r *Repository) ListByDateRange(ctx context.Context, from, to types.DateString) ([]domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"user_name",
		"shift_date",
		"shift_type",
		"created_at",
	).
		From("bookings").
		Where(squirrel.GtOrEq{"shift_date": from.Time()}).
		Where(squirrel.LtOrEq{"shift_date": to.Time()}).
		OrderBy("shift_date ASC", "shift_type ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)

	for rows.Next() {
		var (
			b         domain.Booking
			shiftDate time.Time
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.UserName,
			&shiftDate,
			&b.ShiftType,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.Date = types.NewDateString(shiftDate)
		b.CreatedAt = createdAt.Time

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
