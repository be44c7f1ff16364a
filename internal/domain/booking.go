package domain

import (
	"time"

	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// Booking бронирование смены пользователем.
// Идентификатор назначается хранилищем при создании и неизменяем.
// Для пары (UserID, Date, ShiftType) существует не более одного бронирования.
type Booking struct {
	ID        int64
	UserID    int64
	UserName  string
	Date      types.DateString
	ShiftType ShiftType
	CreatedAt time.Time
}

// BelongsTo возвращает true, если бронирование принадлежит пользователю
func (b *Booking) BelongsTo(userID int64) bool {
	return b.UserID == userID
}
