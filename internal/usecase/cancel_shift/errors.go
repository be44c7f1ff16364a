package cancel_shift

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_shift: booking not found")

	// ErrForbidden возвращается, когда бронирование принадлежит другому пользователю
	ErrForbidden = errors.New("cancel_shift: booking belongs to another user")

	// ErrPastDate возвращается при попытке отменить уже прошедшую смену
	ErrPastDate = errors.New("cancel_shift: shift date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_shift: invalid input data")

	// ErrStoreUnavailable возвращается, когда персистентный слой временно недоступен
	ErrStoreUnavailable = errors.New("cancel_shift: storage temporarily unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_shift: internal error")
)
