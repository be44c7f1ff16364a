package cancel_shift

import (
	"errors"
	"net/http"

	"github.com/gooffice/GoOffice-ShiftService/internal/api/handlers"
	"github.com/gooffice/GoOffice-ShiftService/internal/api/middleware"
	cancelShift "github.com/gooffice/GoOffice-ShiftService/internal/usecase/cancel_shift"
	"github.com/gooffice/GoOffice-ShiftService/pkg/metrics"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgForbidden          = "можно отменять только свои бронирования"
	msgPastDate           = "нельзя отменить уже прошедшую смену"
	msgStoreUnavailable   = "сервис временно недоступен, повторите попытку"
	msgUnauthorized       = "требуется аутентификация"
)

// CancelShiftRequest HTTP request model
type CancelShiftRequest struct {
	BookingID int64 `json:"booking_id"`
}

type Handler struct {
	useCase CancelShiftUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase CancelShiftUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

func (h *Handler) countCancellation(result string) {
	if h.metrics != nil {
		h.metrics.CancellationsTotal.WithLabelValues(result).Inc()
	}
}

// Handle DELETE /api/bookings/cancel-shift
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CancelShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /bookings/cancel-shift - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.useCase.Execute(r.Context(), &cancelShift.Request{
		BookingID: req.BookingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelShift.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/cancel-shift - Booking not found: booking_id=%d, user_id=%d",
				req.BookingID, userID)
			h.countCancellation("not_found")
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelShift.ErrForbidden):
			h.logger.Warn("DELETE /bookings/cancel-shift - Forbidden: booking_id=%d, user_id=%d",
				req.BookingID, userID)
			h.countCancellation("forbidden")
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelShift.ErrPastDate):
			h.logger.Warn("DELETE /bookings/cancel-shift - Past date: booking_id=%d, user_id=%d",
				req.BookingID, userID)
			h.countCancellation("past_date")
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, cancelShift.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/cancel-shift - Invalid input: user_id=%d, error=%v", userID, err)
			h.countCancellation("invalid_input")
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, cancelShift.ErrStoreUnavailable):
			h.logger.Error("DELETE /bookings/cancel-shift - Storage unavailable: booking_id=%d, error=%v",
				req.BookingID, err)
			h.countCancellation("store_unavailable")
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("DELETE /bookings/cancel-shift - Failed to cancel: booking_id=%d, user_id=%d, error=%v",
				req.BookingID, userID, err)
			h.countCancellation("internal_error")
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/cancel-shift - Booking cancelled: booking_id=%d, user_id=%d",
		req.BookingID, userID)
	h.countCancellation("success")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
