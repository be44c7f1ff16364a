package closeddays

import (
	"context"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
)

// Repository интерфейс персистентного слоя закрытых периодов
type Repository interface {
	ListAll(ctx context.Context) ([]domain.ClosedPeriod, error)
	Insert(ctx context.Context, p domain.ClosedPeriod) (domain.ClosedPeriod, error)
}

// Registry интерфейс реестра закрытых периодов
type Registry interface {
	Replace(periods []domain.ClosedPeriod)
	Periods() []domain.ClosedPeriod
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
