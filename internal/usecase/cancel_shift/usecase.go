package cancel_shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/gooffice/GoOffice-ShiftService/internal/calendar"
	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
	"github.com/gooffice/GoOffice-ShiftService/internal/slotstore"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64 // ID отменяемого бронирования
	UserID    int64 // ID аутентифицированного пользователя
}

// UseCase use case отмены бронирования.
// Отменить бронирование может только его владелец; уже отработанные смены
// задним числом не отменяются.
type UseCase struct {
	store        SlotStore
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store SlotStore,
	bookingRepo BookingRepository,
	n Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		bookingRepo:  bookingRepo,
		notifier:     n,
		timeProvider: &calendar.RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет отмену бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelShift: booking=%d, user=%d", req.BookingID, req.UserID)

	if req.BookingID <= 0 || req.UserID <= 0 {
		return fmt.Errorf("%w: bookingID and userID must be positive", ErrInvalidInput)
	}

	// 1. Ищем бронирование
	booking, err := uc.store.FindBooking(req.BookingID)
	if err != nil {
		if errors.Is(err, slotstore.ErrBookingNotFound) {
			uc.logger.Warn("CancelShift: booking id=%d not found", req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelShift: store error: %v", err)
		return fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}

	// 2. Отменять может только владелец
	if !booking.BelongsTo(req.UserID) {
		uc.logger.Warn("CancelShift: user=%d tried to cancel booking id=%d of user=%d",
			req.UserID, booking.ID, booking.UserID)
		return ErrForbidden
	}

	// 3. Прошедшие смены не отменяются
	now := uc.timeProvider.Now()
	if booking.Date.Before(types.NewDateString(now)) {
		uc.logger.Warn("CancelShift: booking id=%d date %s is in the past", booking.ID, booking.Date)
		return ErrPastDate
	}

	// 4. Удаляем из авторитетного состояния.
	// Конкурентная отмена того же бронирования обнаружится здесь как NotFound.
	removed, err := uc.store.RemoveBooking(req.BookingID)
	if err != nil {
		if errors.Is(err, slotstore.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelShift: store error: %v", err)
		return fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}

	// 5. Удаляем из персистентного слоя. При отказе возвращаем бронирование
	// в память: неуспешная отмена не должна оставлять наполовину удаленное
	// состояние.
	if err := uc.bookingRepo.Delete(ctx, removed.ID); err != nil {
		uc.logger.Error("CancelShift: failed to delete booking id=%d from storage: %v", removed.ID, err)
		if restoreErr := uc.store.Restore(removed); restoreErr != nil {
			uc.logger.Error("CancelShift: failed to restore booking id=%d: %v", removed.ID, restoreErr)
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// 6. Сигнал подписчикам после завершения удаления
	uc.notifier.Publish(notifier.KindBookingsChanged)

	uc.logger.Info("CancelShift: successfully cancelled booking id=%d for user=%d", removed.ID, req.UserID)
	return nil
}
