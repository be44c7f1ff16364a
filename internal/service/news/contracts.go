package news

import (
	"context"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
)

// Repository интерфейс персистентного слоя новостей
type Repository interface {
	ListAll(ctx context.Context) ([]domain.NewsItem, error)
	Insert(ctx context.Context, item domain.NewsItem) (domain.NewsItem, error)
}

// Notifier интерфейс публикации сигналов обновления
type Notifier interface {
	Publish(kind notifier.EventKind)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
