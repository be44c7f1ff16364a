package slotstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

const testDate = types.DateString("10-06-2024")

func newTestStore(capacity int) *Store {
	return New(map[domain.ShiftType]int{
		domain.ShiftMorning:   capacity,
		domain.ShiftAfternoon: capacity,
	})
}

func TestStore_TryAddBooking(t *testing.T) {
	s := newTestStore(3)

	b, err := s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
	assert.Equal(t, int64(1), b.UserID)
	assert.Equal(t, "Alice", b.UserName)
	assert.Equal(t, testDate, b.Date)
	assert.Equal(t, domain.ShiftMorning, b.ShiftType)
	assert.False(t, b.CreatedAt.IsZero())

	slot := s.GetSlot(testDate, domain.ShiftMorning)
	assert.Len(t, slot.Bookings, 1)
	assert.Equal(t, 2, slot.SpotsLeft())
}

func TestStore_TryAddBooking_AlreadyBooked(t *testing.T) {
	s := newTestStore(3)

	_, err := s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	require.NoError(t, err)

	// Повторная попытка того же пользователя отклоняется до проверки мест
	_, err = s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	assert.ErrorIs(t, err, ErrAlreadyBooked)

	slot := s.GetSlot(testDate, domain.ShiftMorning)
	assert.Len(t, slot.Bookings, 1)
}

func TestStore_TryAddBooking_CapacityExceeded(t *testing.T) {
	s := newTestStore(2)

	_, err := s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	require.NoError(t, err)
	_, err = s.TryAddBooking(testDate, domain.ShiftMorning, 2, "Bob")
	require.NoError(t, err)

	_, err = s.TryAddBooking(testDate, domain.ShiftMorning, 3, "Carol")
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// Пользователь из заполненного слота получает AlreadyBooked, не CapacityExceeded
	_, err = s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestStore_SlotsAreIndependent(t *testing.T) {
	s := newTestStore(1)

	_, err := s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	require.NoError(t, err)

	// Заполненная утренняя смена не мешает дневной и другим датам
	_, err = s.TryAddBooking(testDate, domain.ShiftAfternoon, 1, "Alice")
	assert.NoError(t, err)
	_, err = s.TryAddBooking(testDate.AddDays(1), domain.ShiftMorning, 2, "Bob")
	assert.NoError(t, err)
}

func TestStore_FindBooking(t *testing.T) {
	s := newTestStore(3)

	created, err := s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	require.NoError(t, err)

	found, err := s.FindBooking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = s.FindBooking(999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestStore_RemoveBooking(t *testing.T) {
	s := newTestStore(3)

	created, err := s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	require.NoError(t, err)

	removed, err := s.RemoveBooking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	_, err = s.FindBooking(created.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Повторное удаление того же бронирования
	_, err = s.RemoveBooking(created.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Место освободилось
	slot := s.GetSlot(testDate, domain.ShiftMorning)
	assert.Equal(t, 3, slot.SpotsLeft())
}

func TestStore_Restore(t *testing.T) {
	s := newTestStore(3)

	created, err := s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	require.NoError(t, err)

	removed, err := s.RemoveBooking(created.ID)
	require.NoError(t, err)

	// Restore возвращает бронирование с исходным ID
	require.NoError(t, s.Restore(removed))

	found, err := s.FindBooking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestStore_Restore_SlotRefilled(t *testing.T) {
	s := newTestStore(1)

	created, err := s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	require.NoError(t, err)
	removed, err := s.RemoveBooking(created.ID)
	require.NoError(t, err)

	// Место успел занять другой пользователь
	_, err = s.TryAddBooking(testDate, domain.ShiftMorning, 2, "Bob")
	require.NoError(t, err)

	assert.ErrorIs(t, s.Restore(removed), ErrCapacityExceeded)
}

func TestStore_Load(t *testing.T) {
	s := newTestStore(8)
	s.Load([]domain.Booking{
		{ID: 7, UserID: 2, UserName: "Bob", Date: testDate, ShiftType: domain.ShiftAfternoon},
		{ID: 3, UserID: 1, UserName: "Alice", Date: testDate, ShiftType: domain.ShiftMorning},
	})

	found, err := s.FindBooking(3)
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.UserName)

	found, err = s.FindBooking(7)
	require.NoError(t, err)
	assert.Equal(t, "Bob", found.UserName)

	// Счетчик идентификаторов продолжается с максимального загруженного
	created, err := s.TryAddBooking(testDate, domain.ShiftMorning, 3, "Carol")
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)
}

func TestStore_Snapshot(t *testing.T) {
	s := newTestStore(8)
	_, err := s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	require.NoError(t, err)

	snapshot := s.Snapshot([]types.DateString{testDate, testDate.AddDays(1)})

	require.Len(t, snapshot, 2)
	assert.Len(t, snapshot[testDate].Morning.Bookings, 1)
	assert.Empty(t, snapshot[testDate].Afternoon.Bookings)
	assert.Empty(t, snapshot[testDate.AddDays(1)].Morning.Bookings)
	assert.Equal(t, 8, snapshot[testDate.AddDays(1)].Morning.Capacity)
}

func TestStore_GetSlotReturnsCopy(t *testing.T) {
	s := newTestStore(8)
	_, err := s.TryAddBooking(testDate, domain.ShiftMorning, 1, "Alice")
	require.NoError(t, err)

	slot := s.GetSlot(testDate, domain.ShiftMorning)
	slot.Bookings[0].UserName = "Mallory"

	assert.Equal(t, "Alice", s.GetSlot(testDate, domain.ShiftMorning).Bookings[0].UserName)
}

func TestStore_ConcurrentBookingRespectsCapacity(t *testing.T) {
	const (
		capacity   = 3
		goroutines = 50
	)

	s := newTestStore(capacity)

	var wg sync.WaitGroup
	results := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := s.TryAddBooking(testDate, domain.ShiftMorning, userID, "user")
			results <- err
		}(int64(i + 1))
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrCapacityExceeded)
		}
	}

	// Ровно capacity заявок проходит, остальные получают отказ
	assert.Equal(t, capacity, succeeded)
	assert.Len(t, s.GetSlot(testDate, domain.ShiftMorning).Bookings, capacity)
}

func TestStore_ConcurrentAddAndRemove(t *testing.T) {
	const goroutines = 20

	s := newTestStore(goroutines)

	var wg sync.WaitGroup
	ids := make(chan int64, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			b, err := s.TryAddBooking(testDate, domain.ShiftMorning, userID, "user")
			if err == nil {
				ids <- b.ID
			}
		}(int64(i + 1))
	}
	wg.Wait()
	close(ids)

	var removeWg sync.WaitGroup
	for id := range ids {
		removeWg.Add(1)
		go func(bookingID int64) {
			defer removeWg.Done()
			_, err := s.RemoveBooking(bookingID)
			assert.NoError(t, err)
		}(id)
	}
	removeWg.Wait()

	assert.Empty(t, s.GetSlot(testDate, domain.ShiftMorning).Bookings)
}
