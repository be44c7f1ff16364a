package cancel_shift

import (
	"context"

	cancelShift "github.com/gooffice/GoOffice-ShiftService/internal/usecase/cancel_shift"
)

type CancelShiftUseCase interface {
	Execute(ctx context.Context, req *cancelShift.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
