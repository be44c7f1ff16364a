package schedule

import (
	"context"

	"github.com/gooffice/GoOffice-ShiftService/internal/service/schedule/models"
)

// Service сервис чтения расписания. Отдает полный снимок календарного окна;
// протокол обновления клиентов устроен как "сигнал - полная перечитка",
// без инкрементальных дельт.
type Service struct {
	store      SlotStore
	calendar   Calendar
	closedDays ClosedDays
	logger     Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(store SlotStore, cal Calendar, closedDays ClosedDays, logger Logger) *Service {
	return &Service{
		store:      store,
		calendar:   cal,
		closedDays: closedDays,
		logger:     logger,
	}
}

// GetFourWeeks возвращает снимок календарного окна для пользователя
func (s *Service) GetFourWeeks(ctx context.Context, userID int64) (*models.ScheduleResponse, error) {
	dates := s.calendar.Dates()
	today := s.calendar.Today()
	snapshot := s.store.Snapshot(dates)

	resp := &models.ScheduleResponse{
		Days:  make(map[string]models.DayView, len(dates)),
		Dates: make([]string, len(dates)),
	}

	for i, date := range dates {
		resp.Dates[i] = date.String()
		resp.Days[date.String()] = BuildDayView(
			date,
			snapshot[date],
			userID,
			today,
			s.closedDays.IsClosed(date),
		)
	}

	s.logger.Info("GetFourWeeks: built snapshot of %d days for user=%d", len(dates), userID)
	return resp, nil
}
