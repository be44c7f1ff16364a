package domain

import "fmt"

// ShiftType тип смены в течение дня
type ShiftType string

const (
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
)

// AllShiftTypes все типы смен в порядке отображения
var AllShiftTypes = []ShiftType{ShiftMorning, ShiftAfternoon}

// Validate проверяет, что тип смены известен
func (s ShiftType) Validate() error {
	switch s {
	case ShiftMorning, ShiftAfternoon:
		return nil
	default:
		return fmt.Errorf("unknown shift type: %q", string(s))
	}
}

// Icon возвращает иконку смены для отображения
func (s ShiftType) Icon() string {
	if s == ShiftMorning {
		return "☀️"
	}
	return "🌚"
}
