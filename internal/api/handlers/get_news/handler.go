package get_news

import (
	"net/http"
	"time"

	"github.com/gooffice/GoOffice-ShiftService/internal/api/handlers"
	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/pkg/ptr"
)

// NewsItemResponse HTTP response model
type NewsItemResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Time        string  `json:"time"`
	Edited      *string `json:"edited,omitempty"`
}

// NewsListResponse HTTP response model
type NewsListResponse struct {
	News []NewsItemResponse `json:"news"`
}

type Handler struct {
	service NewsService
	logger  Logger
}

func NewHandler(service NewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/news/get-all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /news/get-all - Failed to list news: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NewsListResponse{News: fromDomain(items)})
}

func fromDomain(items []domain.NewsItem) []NewsItemResponse {
	result := make([]NewsItemResponse, 0, len(items))
	for _, item := range items {
		resp := NewsItemResponse{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Time:        item.Time.Format(time.RFC3339),
		}
		if item.Edited != nil {
			resp.Edited = ptr.Ptr(item.Edited.Format(time.RFC3339))
		}
		result = append(result, resp)
	}
	return result
}
