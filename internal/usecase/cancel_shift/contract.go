package cancel_shift

import (
	"context"
	"time"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
)

// SlotStore интерфейс авторитетного хранилища слотов
type SlotStore interface {
	FindBooking(bookingID int64) (domain.Booking, error)
	RemoveBooking(bookingID int64) (domain.Booking, error)
	Restore(b domain.Booking) error
}

// BookingRepository интерфейс персистентного слоя бронирований
type BookingRepository interface {
	Delete(ctx context.Context, id int64) error
}

// Notifier интерфейс публикации сигналов обновления
type Notifier interface {
	Publish(kind notifier.EventKind)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
