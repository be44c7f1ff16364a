package add_closed_period

import (
	"context"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	closedDays "github.com/gooffice/GoOffice-ShiftService/internal/service/closeddays"
)

type ClosedDaysService interface {
	Add(ctx context.Context, req *closedDays.AddPeriodRequest) (*domain.ClosedPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
