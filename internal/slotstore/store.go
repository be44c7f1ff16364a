package slotstore

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// slotKey составной идентификатор слота
type slotKey struct {
	date  types.DateString
	shift domain.ShiftType
}

// slotState состояние одного слота. Мьютекс сериализует read-modify-write
// только этого слота: конкурирующие операции над разными слотами друг друга
// не блокируют.
type slotState struct {
	mu       sync.Mutex
	bookings []domain.Booking
}

// DaySlots пара слотов одного дня
type DaySlots struct {
	Morning   domain.ShiftSlot
	Afternoon domain.ShiftSlot
}

// Store авторитетное состояние бронирований по слотам.
// Слоты материализуются лениво и никогда не удаляются - меняется только
// список бронирований. Единица конкурентного доступа - один слот;
// ни одна операция не держит блокировки двух слотов одновременно.
//
// Порядок взятия блокировок: slotsMu -> slot.mu -> indexMu.
// indexMu никогда не держится при взятии slot.mu или slotsMu.
type Store struct {
	capacity map[domain.ShiftType]int
	nextID   atomic.Int64

	slotsMu sync.RWMutex
	slots   map[slotKey]*slotState

	indexMu sync.RWMutex
	index   map[int64]slotKey // bookingID -> slot
}

// New создает пустое хранилище с заданной вместимостью по типам смен
func New(capacity map[domain.ShiftType]int) *Store {
	caps := make(map[domain.ShiftType]int, len(capacity))
	for shift, c := range capacity {
		caps[shift] = c
	}

	s := &Store{
		capacity: caps,
		slots:    make(map[slotKey]*slotState),
		index:    make(map[int64]slotKey),
	}
	s.nextID.Store(1)
	return s
}

// Load заполняет хранилище бронированиями, загруженными из персистентного
// слоя. Вызывается один раз при старте, до начала обслуживания запросов.
// Счетчик идентификаторов продолжается с максимального загруженного ID.
func (s *Store) Load(bookings []domain.Booking) {
	sorted := make([]domain.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	s.slotsMu.Lock()
	s.indexMu.Lock()
	defer s.indexMu.Unlock()
	defer s.slotsMu.Unlock()

	maxID := int64(0)
	for _, b := range sorted {
		key := slotKey{date: b.Date, shift: b.ShiftType}
		state, ok := s.slots[key]
		if !ok {
			state = &slotState{}
			s.slots[key] = state
		}
		state.bookings = append(state.bookings, b)
		s.index[b.ID] = key
		if b.ID > maxID {
			maxID = b.ID
		}
	}

	s.nextID.Store(maxID + 1)
}

// Capacity возвращает настроенную вместимость для типа смены
func (s *Store) Capacity(shift domain.ShiftType) int {
	return s.capacity[shift]
}

// GetSlot возвращает копию текущего состояния слота.
// Нетронутый слот материализуется пустым.
func (s *Store) GetSlot(date types.DateString, shift domain.ShiftType) domain.ShiftSlot {
	state := s.state(slotKey{date: date, shift: shift})

	state.mu.Lock()
	defer state.mu.Unlock()

	return s.snapshotLocked(date, shift, state)
}

// TryAddBooking атомарно проверяет слот и добавляет бронирование.
// Проверка и вставка выполняются под блокировкой слота, поэтому два
// конкурирующих вызова не могут оба занять последнее место.
func (s *Store) TryAddBooking(date types.DateString, shift domain.ShiftType, userID int64, userName string) (domain.Booking, error) {
	key := slotKey{date: date, shift: shift}
	state := s.state(key)

	state.mu.Lock()
	defer state.mu.Unlock()

	for i := range state.bookings {
		if state.bookings[i].UserID == userID {
			return domain.Booking{}, ErrAlreadyBooked
		}
	}

	if len(state.bookings) >= s.capacity[shift] {
		return domain.Booking{}, ErrCapacityExceeded
	}

	booking := domain.Booking{
		ID:        s.nextID.Add(1) - 1,
		UserID:    userID,
		UserName:  userName,
		Date:      date,
		ShiftType: shift,
		CreatedAt: time.Now().UTC(),
	}
	state.bookings = append(state.bookings, booking)

	s.indexMu.Lock()
	s.index[booking.ID] = key
	s.indexMu.Unlock()

	return booking, nil
}

// FindBooking возвращает бронирование по ID
func (s *Store) FindBooking(bookingID int64) (domain.Booking, error) {
	s.indexMu.RLock()
	key, ok := s.index[bookingID]
	s.indexMu.RUnlock()
	if !ok {
		return domain.Booking{}, ErrBookingNotFound
	}

	state := s.state(key)
	state.mu.Lock()
	defer state.mu.Unlock()

	for i := range state.bookings {
		if state.bookings[i].ID == bookingID {
			return state.bookings[i], nil
		}
	}
	return domain.Booking{}, ErrBookingNotFound
}

// RemoveBooking удаляет бронирование и возвращает удаленное значение
func (s *Store) RemoveBooking(bookingID int64) (domain.Booking, error) {
	s.indexMu.RLock()
	key, ok := s.index[bookingID]
	s.indexMu.RUnlock()
	if !ok {
		return domain.Booking{}, ErrBookingNotFound
	}

	state := s.state(key)
	state.mu.Lock()
	defer state.mu.Unlock()

	for i := range state.bookings {
		if state.bookings[i].ID != bookingID {
			continue
		}

		removed := state.bookings[i]
		state.bookings = append(state.bookings[:i], state.bookings[i+1:]...)

		s.indexMu.Lock()
		delete(s.index, bookingID)
		s.indexMu.Unlock()

		return removed, nil
	}

	// Запись индекса устарела: бронирование уже удалено конкурентно
	return domain.Booking{}, ErrBookingNotFound
}

// Restore возвращает ранее удаленное бронирование в слот, сохраняя его ID.
// Используется для компенсации, когда персистентный слой отклонил удаление.
func (s *Store) Restore(b domain.Booking) error {
	key := slotKey{date: b.Date, shift: b.ShiftType}
	state := s.state(key)

	state.mu.Lock()
	defer state.mu.Unlock()

	for i := range state.bookings {
		if state.bookings[i].UserID == b.UserID {
			return ErrAlreadyBooked
		}
	}
	if len(state.bookings) >= s.capacity[b.ShiftType] {
		return ErrCapacityExceeded
	}

	state.bookings = append(state.bookings, b)

	s.indexMu.Lock()
	s.index[b.ID] = key
	s.indexMu.Unlock()

	return nil
}

// Snapshot возвращает копию состояния слотов для набора дат.
// Согласованность гарантируется в пределах слота; протокол обновления
// клиентов не требует согласованности между слотами.
func (s *Store) Snapshot(dates []types.DateString) map[types.DateString]DaySlots {
	out := make(map[types.DateString]DaySlots, len(dates))
	for _, date := range dates {
		out[date] = DaySlots{
			Morning:   s.GetSlot(date, domain.ShiftMorning),
			Afternoon: s.GetSlot(date, domain.ShiftAfternoon),
		}
	}
	return out
}

// state возвращает состояние слота, лениво материализуя его
func (s *Store) state(key slotKey) *slotState {
	s.slotsMu.RLock()
	state, ok := s.slots[key]
	s.slotsMu.RUnlock()
	if ok {
		return state
	}

	s.slotsMu.Lock()
	defer s.slotsMu.Unlock()
	if state, ok = s.slots[key]; ok {
		return state
	}
	state = &slotState{}
	s.slots[key] = state
	return state
}

// snapshotLocked копирует слот; вызывается под state.mu
func (s *Store) snapshotLocked(date types.DateString, shift domain.ShiftType, state *slotState) domain.ShiftSlot {
	bookings := make([]domain.Booking, len(state.bookings))
	copy(bookings, state.bookings)

	return domain.ShiftSlot{
		Date:      date,
		ShiftType: shift,
		Capacity:  s.capacity[shift],
		Bookings:  bookings,
	}
}
