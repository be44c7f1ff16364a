package cancel_shift

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
	"github.com/gooffice/GoOffice-ShiftService/internal/slotstore"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

type fixedTime struct {
	now time.Time
}

func (p *fixedTime) Now() time.Time {
	return p.now
}

type fakeBookingRepo struct {
	deleteErr error
	deleted   []int64
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeNotifier struct {
	published []notifier.EventKind
}

func (f *fakeNotifier) Publish(kind notifier.EventKind) {
	f.published = append(f.published, kind)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	uc       *UseCase
	store    *slotstore.Store
	repo     *fakeBookingRepo
	notifier *fakeNotifier
}

// newFixture собирает use case с фиксированным "сегодня" 10-06-2024
func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := slotstore.New(map[domain.ShiftType]int{
		domain.ShiftMorning:   8,
		domain.ShiftAfternoon: 8,
	})
	repo := &fakeBookingRepo{}
	n := &fakeNotifier{}

	uc := NewUseCase(store, repo, n, noopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)}

	return &fixture{uc: uc, store: store, repo: repo, notifier: n}
}

func (f *fixture) book(t *testing.T, date types.DateString, userID int64, name string) domain.Booking {
	t.Helper()
	b, err := f.store.TryAddBooking(date, domain.ShiftMorning, userID, name)
	require.NoError(t, err)
	return b
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, "15-06-2024", 1, "Alice")

	err := f.uc.Execute(context.Background(), &Request{BookingID: b.ID, UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, f.repo.deleted)
	assert.Equal(t, []notifier.EventKind{notifier.KindBookingsChanged}, f.notifier.published)

	_, err = f.store.FindBooking(b.ID)
	assert.ErrorIs(t, err, slotstore.ErrBookingNotFound)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.uc.Execute(context.Background(), &Request{BookingID: 999, UserID: 1})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, f.notifier.published)
}

func TestUseCase_Execute_ForbiddenLeavesBookingIntact(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, "15-06-2024", 1, "Alice")

	err := f.uc.Execute(context.Background(), &Request{BookingID: b.ID, UserID: 2})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, f.repo.deleted)
	assert.Empty(t, f.notifier.published)

	// Бронирование осталось на месте
	found, findErr := f.store.FindBooking(b.ID)
	require.NoError(t, findErr)
	assert.Equal(t, b, found)
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, "09-06-2024", 1, "Alice")

	err := f.uc.Execute(context.Background(), &Request{BookingID: b.ID, UserID: 1})

	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, f.repo.deleted)
}

func TestUseCase_Execute_TodayIsCancellable(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, "10-06-2024", 1, "Alice")

	err := f.uc.Execute(context.Background(), &Request{BookingID: b.ID, UserID: 1})
	assert.NoError(t, err)
}

func TestUseCase_Execute_StorageFailureRestoresBooking(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, "15-06-2024", 1, "Alice")
	f.repo.deleteErr = errors.New("connection refused")

	err := f.uc.Execute(context.Background(), &Request{BookingID: b.ID, UserID: 1})

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Empty(t, f.notifier.published)

	// Компенсация: бронирование вернулось в память с исходным ID
	found, findErr := f.store.FindBooking(b.ID)
	require.NoError(t, findErr)
	assert.Equal(t, b, found)

	// После восстановления отмена может быть повторена
	f.repo.deleteErr = nil
	assert.NoError(t, f.uc.Execute(context.Background(), &Request{BookingID: b.ID, UserID: 1}))
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero booking id", req: &Request{BookingID: 0, UserID: 1}},
		{name: "negative booking id", req: &Request{BookingID: -1, UserID: 1}},
		{name: "zero user id", req: &Request{BookingID: 1, UserID: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			assert.ErrorIs(t, f.uc.Execute(context.Background(), tt.req), ErrInvalidInput)
		})
	}
}
