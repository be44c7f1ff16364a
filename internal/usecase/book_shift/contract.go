package book_shift

import (
	"context"
	"time"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// SlotStore интерфейс авторитетного хранилища слотов
type SlotStore interface {
	TryAddBooking(date types.DateString, shift domain.ShiftType, userID int64, userName string) (domain.Booking, error)
	RemoveBooking(bookingID int64) (domain.Booking, error)
}

// ClosedDays интерфейс реестра закрытых периодов
type ClosedDays interface {
	IsClosed(d types.DateString) bool
}

// BookingRepository интерфейс персистентного слоя бронирований
type BookingRepository interface {
	Insert(ctx context.Context, b domain.Booking) error
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
