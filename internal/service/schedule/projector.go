package schedule

import (
	"math"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/internal/service/schedule/models"
	"github.com/gooffice/GoOffice-ShiftService/internal/slotstore"
	"github.com/gooffice/GoOffice-ShiftService/pkg/ptr"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// Чистые функции проекции: из снимка слотов в состояние для отображения.
// Проекция пересчитывается при каждом запросе и нигде не кэшируется,
// чтобы не разъезжаться с авторитетным состоянием.

// WeekNumber возвращает номер недели для отображения:
// ceil(daysSinceJan1 / 7) + 1 в пределах календарного года даты.
// Это историческая формула выдачи, а не ISO-номер недели.
func WeekNumber(d types.DateString) int {
	t := d.Time()
	jan1 := t.AddDate(0, 0, -t.YearDay()+1)
	days := int(t.Sub(jan1).Hours() / 24)
	return int(math.Ceil(float64(days)/7)) + 1
}

// BuildDayView строит состояние одного дня для пользователя
func BuildDayView(
	date types.DateString,
	day slotstore.DaySlots,
	userID int64,
	today types.DateString,
	isClosed bool,
) models.DayView {
	view := models.DayView{
		Morning:    toSlotView(day.Morning),
		Afternoon:  toSlotView(day.Afternoon),
		IsClosed:   isClosed,
		IsPastDate: date.Before(today),
		WeekNumber: WeekNumber(date),
		Entries:    combineEntries(day.Morning.Bookings, day.Afternoon.Bookings),
	}

	if b := day.Morning.FindByUser(userID); b != nil {
		view.UserHoldsMorning = true
		view.MorningBookingID = ptr.Ptr(b.ID)
	}
	if b := day.Afternoon.FindByUser(userID); b != nil {
		view.UserHoldsAfternoon = true
		view.AfternoonBookingID = ptr.Ptr(b.ID)
	}

	return view
}

func toSlotView(slot domain.ShiftSlot) models.ShiftSlotView {
	bookings := make([]models.BookingView, len(slot.Bookings))
	for i, b := range slot.Bookings {
		bookings[i] = models.BookingView{ID: b.ID, Name: b.UserName}
	}
	return models.ShiftSlotView{
		SpotsLeft: slot.SpotsLeft(),
		Bookings:  bookings,
	}
}

// combineEntries объединяет утренние и дневные бронирования в список строк
// для отображения. Пользователь с обеими сменами получает одну строку с
// комбинированной иконкой. Объединение - забота проекции: хранилище всегда
// держит смены как два независимых бронирования.
func combineEntries(morning, afternoon []domain.Booking) []models.DisplayEntry {
	entries := make([]models.DisplayEntry, 0, len(morning)+len(afternoon))

	for _, b := range morning {
		entries = append(entries, models.DisplayEntry{
			ID:   b.ID,
			Name: b.UserName,
			Icon: domain.ShiftMorning.Icon(),
		})
	}

	for _, b := range afternoon {
		merged := false
		for i := range entries {
			if entries[i].Name == b.UserName {
				entries[i].Icon += domain.ShiftAfternoon.Icon()
				merged = true
				break
			}
		}
		if !merged {
			entries = append(entries, models.DisplayEntry{
				ID:   b.ID,
				Name: b.UserName,
				Icon: domain.ShiftAfternoon.Icon(),
			})
		}
	}

	return entries
}
