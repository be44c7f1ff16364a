package book_shift

import "errors"

var (
	// ErrPastDate возвращается при попытке забронировать смену на прошедшую дату
	ErrPastDate = errors.New("book_shift: date is in the past")

	// ErrClosedDay возвращается, когда дата попадает в закрытый период
	ErrClosedDay = errors.New("book_shift: office is closed on this date")

	// ErrAlreadyBooked возвращается, когда пользователь уже держит эту смену
	ErrAlreadyBooked = errors.New("book_shift: user already booked this shift")

	// ErrCapacityExceeded возвращается, когда в слоте не осталось мест
	ErrCapacityExceeded = errors.New("book_shift: no spots left for this shift")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_shift: invalid input data")

	// ErrStoreUnavailable возвращается, когда персистентный слой временно недоступен.
	// Единственная ошибка, при которой вызывающему имеет смысл повторить запрос.
	ErrStoreUnavailable = errors.New("book_shift: storage temporarily unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_shift: internal error")
)
