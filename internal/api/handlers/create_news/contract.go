package create_news

import (
	"context"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	newsService "github.com/gooffice/GoOffice-ShiftService/internal/service/news"
)

type NewsService interface {
	Create(ctx context.Context, req *newsService.CreateRequest) (*domain.NewsItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
