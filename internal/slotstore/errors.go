package slotstore

import "errors"

var (
	// ErrCapacityExceeded возвращается, когда в слоте не осталось свободных мест
	ErrCapacityExceeded = errors.New("slotstore: slot capacity exceeded")

	// ErrAlreadyBooked возвращается, когда пользователь уже держит бронирование в слоте
	ErrAlreadyBooked = errors.New("slotstore: user already has a booking for this slot")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("slotstore: booking not found")
)
