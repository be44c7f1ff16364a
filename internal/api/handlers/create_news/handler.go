package create_news

import (
	"errors"
	"net/http"
	"time"

	"github.com/gooffice/GoOffice-ShiftService/internal/api/handlers"
	newsService "github.com/gooffice/GoOffice-ShiftService/internal/service/news"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidNews        = "некорректные данные новости"
)

// CreateNewsRequest HTTP request model
type CreateNewsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewsItemResponse HTTP response model
type NewsItemResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
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

// Handle POST /api/news
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateNewsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /news - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), &newsService.CreateRequest{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, newsService.ErrInvalidInput):
			h.logger.Warn("POST /news - Invalid news item: %v", err)
			handlers.RespondBadRequest(w, msgInvalidNews)
		default:
			h.logger.Error("POST /news - Failed to create news item: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /news - News item created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, NewsItemResponse{
		ID:          created.ID,
		Title:       created.Title,
		Description: created.Description,
		Time:        created.Time.Format(time.RFC3339),
	})
}
