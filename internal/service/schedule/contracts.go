package schedule

import (
	"github.com/gooffice/GoOffice-ShiftService/internal/slotstore"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// SlotStore интерфейс чтения снимка авторитетного состояния
type SlotStore interface {
	Snapshot(dates []types.DateString) map[types.DateString]slotstore.DaySlots
}

// Calendar интерфейс генератора календарного окна
type Calendar interface {
	Today() types.DateString
	Dates() []types.DateString
}

// ClosedDays интерфейс реестра закрытых периодов
type ClosedDays interface {
	IsClosed(d types.DateString) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
