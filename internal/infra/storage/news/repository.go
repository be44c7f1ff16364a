package news

import (
	"context"
	"fmt"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/pkg/dbmetrics"
	"github.com/gooffice/GoOffice-ShiftService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository персистентный слой ленты новостей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория новостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll возвращает все новости, сначала свежие
func (r *Repository) ListAll(ctx context.Context) ([]domain.NewsItem, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"description",
		"time",
		"edited",
	).
		From("news").
		OrderBy("time DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.NewsItem, 0)
	for rows.Next() {
		var item domain.NewsItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Time, &item.Edited); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// Insert сохраняет новость и возвращает её с назначенными ID и временем публикации
func (r *Repository) Insert(ctx context.Context, item domain.NewsItem) (domain.NewsItem, error) {
	query, args, err := psqlbuilder.Insert("news").
		Columns("title", "description").
		Values(item.Title, item.Description).
		Suffix("RETURNING id, time").
		ToSql()

	if err != nil {
		return domain.NewsItem{}, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.Time); err != nil {
		return domain.NewsItem{}, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return item, nil
}
