package domain

// Default configuration values
const (
	DefaultWindowDays    = 28 // четыре недели вперед, включая сегодня
	DefaultShiftCapacity = 8
)

// Business validation constants
const (
	MinShiftCapacity = 1
	MaxShiftCapacity = 100
	MinWindowDays    = 1
	MaxWindowDays    = 365
	MaxReasonLength  = 200
	MaxTitleLength   = 200
	MaxUserNameLen   = 100
)
