package get_news

import (
	"context"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
)

type NewsService interface {
	List(ctx context.Context) ([]domain.NewsItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
