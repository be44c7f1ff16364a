package models

// BookingView бронирование в составе слота
type BookingView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ShiftSlotView состояние одного слота для отображения
type ShiftSlotView struct {
	SpotsLeft int           `json:"spotsLeft"`
	Bookings  []BookingView `json:"bookings"`
}

// DisplayEntry строка списка бронирований дня. Утренняя и дневная смены
// одного пользователя объединяются в одну строку с комбинированной иконкой.
type DisplayEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DayView производное состояние одного дня для конкретного пользователя
type DayView struct {
	Morning   ShiftSlotView `json:"morning"`
	Afternoon ShiftSlotView `json:"afternoon"`

	IsClosed   bool `json:"isClosed"`
	IsPastDate bool `json:"isPastDate"`
	WeekNumber int  `json:"weekNumber"`

	UserHoldsMorning   bool   `json:"userHoldsMorning"`
	UserHoldsAfternoon bool   `json:"userHoldsAfternoon"`
	MorningBookingID   *int64 `json:"morningBookingId,omitempty"`
	AfternoonBookingID *int64 `json:"afternoonBookingId,omitempty"`

	Entries []DisplayEntry `json:"entries"`
}

// ScheduleResponse снимок календарного окна, ключ - дата в формате DD-MM-YYYY
type ScheduleResponse struct {
	Days  map[string]DayView `json:"days"`
	Dates []string           `json:"dates"` // порядок обхода окна
}
