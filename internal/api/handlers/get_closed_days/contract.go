package get_closed_days

import (
	"context"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
)

type ClosedDaysService interface {
	List(ctx context.Context) ([]domain.ClosedPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
