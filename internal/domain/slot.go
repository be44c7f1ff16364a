package domain

import "github.com/gooffice/GoOffice-ShiftService/pkg/types"

// ShiftSlot единица бронирования: (дата, тип смены) с фиксированной вместимостью.
// Bookings хранит бронирования в порядке добавления (порядок важен только для
// отображения, не для семантики).
type ShiftSlot struct {
	Date      types.DateString
	ShiftType ShiftType
	Capacity  int
	Bookings  []Booking
}

// SpotsLeft возвращает количество свободных мест, не меньше нуля
func (s *ShiftSlot) SpotsLeft() int {
	left := s.Capacity - len(s.Bookings)
	if left < 0 {
		return 0
	}
	return left
}

// IsFull возвращает true, если свободных мест не осталось
func (s *ShiftSlot) IsFull() bool {
	return len(s.Bookings) >= s.Capacity
}

// HasUser возвращает true, если пользователь уже держит бронирование в слоте
func (s *ShiftSlot) HasUser(userID int64) bool {
	return s.FindByUser(userID) != nil
}

// FindByUser возвращает бронирование пользователя в слоте или nil
func (s *ShiftSlot) FindByUser(userID int64) *Booking {
	for i := range s.Bookings {
		if s.Bookings[i].UserID == userID {
			return &s.Bookings[i]
		}
	}
	return nil
}
