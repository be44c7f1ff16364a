package book_shift

import (
	"errors"
	"net/http"

	"github.com/gooffice/GoOffice-ShiftService/internal/api/handlers"
	"github.com/gooffice/GoOffice-ShiftService/internal/api/middleware"
	bookShift "github.com/gooffice/GoOffice-ShiftService/internal/usecase/book_shift"
	"github.com/gooffice/GoOffice-ShiftService/pkg/metrics"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается DD-MM-YYYY"
	msgPastDate           = "нельзя забронировать смену на прошедшую дату"
	msgClosedDay          = "офис закрыт в выбранную дату"
	msgAlreadyBooked      = "вы уже забронировали эту смену"
	msgCapacityExceeded   = "в этой смене не осталось мест"
	msgStoreUnavailable   = "сервис временно недоступен, повторите попытку"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	useCase BookShiftUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase BookShiftUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

func (h *Handler) countReservation(result string) {
	if h.metrics != nil {
		h.metrics.ReservationsTotal.WithLabelValues(result).Inc()
	}
}

// Handle POST /api/bookings/book-shift
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	userName, ok := middleware.UserName(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req BookShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/book-shift - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID, userName)
	if err != nil {
		h.logger.Warn("POST /bookings/book-shift - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookShift.ErrPastDate):
			h.logger.Warn("POST /bookings/book-shift - Past date: user_id=%d, date=%s", userID, req.ShiftDate)
			h.countReservation("past_date")
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, bookShift.ErrClosedDay):
			h.logger.Warn("POST /bookings/book-shift - Closed day: user_id=%d, date=%s", userID, req.ShiftDate)
			h.countReservation("closed_day")
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, bookShift.ErrAlreadyBooked):
			h.logger.Warn("POST /bookings/book-shift - Already booked: user_id=%d, date=%s, shift=%s",
				userID, req.ShiftDate, req.ShiftType)
			h.countReservation("already_booked")
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, bookShift.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings/book-shift - Capacity exceeded: user_id=%d, date=%s, shift=%s",
				userID, req.ShiftDate, req.ShiftType)
			h.countReservation("capacity_exceeded")
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, bookShift.ErrInvalidInput):
			h.logger.Warn("POST /bookings/book-shift - Invalid input: user_id=%d, error=%v", userID, err)
			h.countReservation("invalid_input")
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, bookShift.ErrStoreUnavailable):
			h.logger.Error("POST /bookings/book-shift - Storage unavailable: user_id=%d, error=%v", userID, err)
			h.countReservation("store_unavailable")
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings/book-shift - Failed to book shift: user_id=%d, error=%v", userID, err)
			h.countReservation("internal_error")
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/book-shift - Shift booked: booking_id=%d, user_id=%d, date=%s, shift=%s",
		result.ID, userID, req.ShiftDate, req.ShiftType)
	h.countReservation("success")
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
