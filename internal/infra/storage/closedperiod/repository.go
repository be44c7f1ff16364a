package closedperiod

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/pkg/dbmetrics"
	"github.com/gooffice/GoOffice-ShiftService/pkg/psqlbuilder"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository персистентный слой закрытых периодов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытых периодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll возвращает все закрытые периоды, упорядоченные по дате начала
func (r *Repository) ListAll(ctx context.Context) ([]domain.ClosedPeriod, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"start_date",
		"end_date",
		"reason",
	).
		From("closed_periods").
		OrderBy("start_date ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]domain.ClosedPeriod, 0)
	for rows.Next() {
		var (
			p          domain.ClosedPeriod
			start, end time.Time
		)
		if err := rows.Scan(&p.ID, &start, &end, &p.Reason); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		p.Start = types.NewDateString(start)
		p.End = types.NewDateString(end)
		periods = append(periods, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return periods, nil
}

// Insert сохраняет закрытый период и возвращает его с назначенным ID
func (r *Repository) Insert(ctx context.Context, p domain.ClosedPeriod) (domain.ClosedPeriod, error) {
	query, args, err := psqlbuilder.Insert("closed_periods").
		Columns("start_date", "end_date", "reason").
		Values(p.Start.Time(), p.End.Time(), p.Reason).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return domain.ClosedPeriod{}, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID)
	if err != nil && err != sql.ErrNoRows {
		return domain.ClosedPeriod{}, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}
