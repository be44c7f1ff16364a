package get_closed_days

import (
	"net/http"

	"github.com/gooffice/GoOffice-ShiftService/internal/api/handlers"
	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
)

// ClosedPeriodResponse HTTP response model
type ClosedPeriodResponse struct {
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

// Handle GET /api/closed-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periods, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /closed-days - Failed to list closed periods: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(periods))
}

func fromDomain(periods []domain.ClosedPeriod) []ClosedPeriodResponse {
	result := make([]ClosedPeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, ClosedPeriodResponse{
			StartDate: p.Start.String(),
			EndDate:   p.End.String(),
			Reason:    p.Reason,
		})
	}
	return result
}
