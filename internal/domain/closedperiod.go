package domain

import (
	"fmt"

	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// ClosedPeriod период, в течение которого бронирования недоступны.
// Границы Start и End включительные. Периоды могут пересекаться:
// дата закрыта, если попадает хотя бы в один период.
type ClosedPeriod struct {
	ID     int64
	Start  types.DateString
	End    types.DateString
	Reason string
}

// Contains возвращает true, если дата попадает в период (включительно)
func (p *ClosedPeriod) Contains(d types.DateString) bool {
	t := d.Time()
	return !t.Before(p.Start.Time()) && !t.After(p.End.Time())
}

// Validate проверяет корректность периода
func (p *ClosedPeriod) Validate() error {
	if err := p.Start.Validate(); err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	if err := p.End.Validate(); err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}
	if p.End.Before(p.Start) {
		return fmt.Errorf("end date %s is before start date %s", p.End, p.Start)
	}
	if len(p.Reason) > MaxReasonLength {
		return fmt.Errorf("reason exceeds %d characters", MaxReasonLength)
	}
	return nil
}
