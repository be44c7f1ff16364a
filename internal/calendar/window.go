package calendar

import (
	"time"

	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Generator генерирует скользящее календарное окно.
// Окно не хранится: последовательность дат пересчитывается от текущей даты
// при каждом запросе, поэтому устареть оно не может.
type Generator struct {
	windowDays   int
	timeProvider TimeProvider
}

// NewGenerator создает генератор окна на windowDays дней вперед от сегодня
func NewGenerator(windowDays int, timeProvider TimeProvider) *Generator {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Generator{
		windowDays:   windowDays,
		timeProvider: timeProvider,
	}
}

// Today возвращает текущую дату
func (g *Generator) Today() types.DateString {
	return types.NewDateString(g.timeProvider.Now())
}

// Dates возвращает упорядоченную последовательность дат окна,
// начиная с сегодняшней, всего windowDays дат
func (g *Generator) Dates() []types.DateString {
	today := g.Today()

	dates := make([]types.DateString, g.windowDays)
	for i := 0; i < g.windowDays; i++ {
		dates[i] = today.AddDays(i)
	}
	return dates
}

// Contains возвращает true, если дата попадает в текущее окно
func (g *Generator) Contains(d types.DateString) bool {
	today := g.Today()
	last := today.AddDays(g.windowDays - 1)
	t := d.Time()
	return !t.Before(today.Time()) && !t.After(last.Time())
}
