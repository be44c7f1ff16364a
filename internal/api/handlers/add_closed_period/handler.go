package add_closed_period

import (
	"errors"
	"net/http"

	"github.com/gooffice/GoOffice-ShiftService/internal/api/handlers"
	closedDays "github.com/gooffice/GoOffice-ShiftService/internal/service/closeddays"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается DD-MM-YYYY"
	msgInvalidPeriod      = "некорректный период закрытия"
)

// AddClosedPeriodRequest HTTP request model
type AddClosedPeriodRequest struct {
	StartDate string `json:"start_date"` // "24-12-2025"
	EndDate   string `json:"end_date"`   // "26-12-2025"
	Reason    string `json:"reason"`
}

// ClosedPeriodResponse HTTP response model
type ClosedPeriodResponse struct {
	ID        int64  `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

type Handler struct {
	service ClosedDaysService
	logger  Logger
}

func NewHandler(service ClosedDaysService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/closed-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddClosedPeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /closed-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, err := types.NewDateStringFromString(req.StartDate)
	if err != nil {
		h.logger.Warn("POST /closed-days - Invalid start date %q: %v", req.StartDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, err := types.NewDateStringFromString(req.EndDate)
	if err != nil {
		h.logger.Warn("POST /closed-days - Invalid end date %q: %v", req.EndDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	created, err := h.service.Add(r.Context(), &closedDays.AddPeriodRequest{
		Start:  start,
		End:    end,
		Reason: req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, closedDays.ErrInvalidPeriod):
			h.logger.Warn("POST /closed-days - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		default:
			h.logger.Error("POST /closed-days - Failed to add period: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /closed-days - Closed period created: id=%d, %s..%s",
		created.ID, created.Start, created.End)
	handlers.RespondJSON(w, http.StatusCreated, ClosedPeriodResponse{
		ID:        created.ID,
		StartDate: created.Start.String(),
		EndDate:   created.End.String(),
		Reason:    created.Reason,
	})
}
