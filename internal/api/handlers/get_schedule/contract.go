package get_schedule

import (
	"context"

	"github.com/gooffice/GoOffice-ShiftService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetFourWeeks(ctx context.Context, userID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
