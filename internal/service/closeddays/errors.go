package closeddays

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном периоде
	ErrInvalidPeriod = errors.New("closeddays: invalid closed period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("closeddays: internal error")
)
