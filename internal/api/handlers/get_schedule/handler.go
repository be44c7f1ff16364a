package get_schedule

import (
	"net/http"

	"github.com/gooffice/GoOffice-ShiftService/internal/api/handlers"
	"github.com/gooffice/GoOffice-ShiftService/internal/api/middleware"
)

const msgUnauthorized = "требуется аутентификация"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings/four-weeks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetFourWeeks(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /bookings/four-weeks - Failed to build schedule: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
