package book_shift

import (
	"context"

	bookShift "github.com/gooffice/GoOffice-ShiftService/internal/usecase/book_shift"
)

type BookShiftUseCase interface {
	Execute(ctx context.Context, req *bookShift.Request) (*bookShift.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
