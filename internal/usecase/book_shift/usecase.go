package book_shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/gooffice/GoOffice-ShiftService/internal/calendar"
	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
	"github.com/gooffice/GoOffice-ShiftService/internal/slotstore"
)

// UseCase use case бронирования смены - транзакционное ядро сервиса.
// Правила вместимости и закрытых дней проверяются только здесь, на живом
// состоянии: клиент работает с устаревшим снимком, и его флагам доверять
// нельзя. Проверка и вставка выполняются в slotstore атомарно, под
// блокировкой слота.
type UseCase struct {
	store        SlotStore
	closedDays   ClosedDays
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store SlotStore,
	closedDays ClosedDays,
	bookingRepo BookingRepository,
	n Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		closedDays:   closedDays,
		bookingRepo:  bookingRepo,
		notifier:     n,
		timeProvider: &calendar.RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет бронирование смены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookShift: user=%d, date=%s, shift=%s", req.UserID, req.Date, req.ShiftType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookShift: validation failed: %v", err)
		return nil, err
	}

	// 2. Прошедшие даты бронировать нельзя
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("BookShift: date %s is in the past for user=%d", req.Date, req.UserID)
		return nil, ErrPastDate
	}

	// 3. Закрытые дни бронировать нельзя, независимо от вместимости
	if uc.closedDays.IsClosed(req.Date) {
		uc.logger.Warn("BookShift: date %s is closed for user=%d", req.Date, req.UserID)
		return nil, ErrClosedDay
	}

	// 4. Атомарная проверка и вставка под блокировкой слота
	booking, err := uc.store.TryAddBooking(req.Date, req.ShiftType, req.UserID, req.UserName)
	if err != nil {
		switch {
		case errors.Is(err, slotstore.ErrAlreadyBooked):
			uc.logger.Warn("BookShift: user=%d already booked %s %s", req.UserID, req.Date, req.ShiftType)
			return nil, ErrAlreadyBooked
		case errors.Is(err, slotstore.ErrCapacityExceeded):
			uc.logger.Warn("BookShift: no spots left for %s %s", req.Date, req.ShiftType)
			return nil, ErrCapacityExceeded
		default:
			uc.logger.Error("BookShift: store error: %v", err)
			return nil, fmt.Errorf("%w: store error: %v", ErrInternal, err)
		}
	}

	// 5. Сохраняем бронирование. Блокировка слота уже отпущена, запись в БД
	// не продлевает критическую секцию. При отказе БД откатываем изменение в
	// памяти: неуспешное бронирование не должно оставлять следов.
	if err := uc.bookingRepo.Insert(ctx, booking); err != nil {
		uc.logger.Error("BookShift: failed to persist booking id=%d: %v", booking.ID, err)
		if _, rollbackErr := uc.store.RemoveBooking(booking.ID); rollbackErr != nil {
			uc.logger.Error("BookShift: failed to roll back booking id=%d: %v", booking.ID, rollbackErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// 6. Сигнал подписчикам после завершения записи
	uc.notifier.Publish(notifier.KindBookingsChanged)

	uc.logger.Info("BookShift: successfully created booking id=%d for user=%d", booking.ID, req.UserID)

	return &Response{
		ID:        booking.ID,
		UserID:    booking.UserID,
		UserName:  booking.UserName,
		Date:      booking.Date,
		ShiftType: booking.ShiftType,
		CreatedAt: booking.CreatedAt,
	}, nil
}
