package news

import (
	"context"
	"fmt"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
)

// CreateRequest модель запроса администратора на публикацию новости
type CreateRequest struct {
	Title       string
	Description string
}

// Service лента новостей: чтение списка и публикация.
// Семантики бронирования здесь нет, сервис намеренно тонкий.
type Service struct {
	repo     Repository
	notifier Notifier
	logger   Logger
}

// NewService создает новый экземпляр сервиса новостей
func NewService(repo Repository, n Notifier, logger Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: n,
		logger:   logger,
	}
}

// List возвращает все новости, сначала свежие
func (s *Service) List(ctx context.Context) ([]domain.NewsItem, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: failed to list news: %v", err)
		return nil, fmt.Errorf("%w: list news: %v", ErrInternal, err)
	}
	return items, nil
}

// Create публикует новость и рассылает сигнал обновления
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.NewsItem, error) {
	if req.Title == "" || len(req.Title) > domain.MaxTitleLength {
		s.logger.Warn("Create: invalid title")
		return nil, fmt.Errorf("%w: title is required and must not exceed %d characters",
			ErrInvalidInput, domain.MaxTitleLength)
	}

	created, err := s.repo.Insert(ctx, domain.NewsItem{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		s.logger.Error("Create: failed to insert news item: %v", err)
		return nil, fmt.Errorf("%w: insert news item: %v", ErrInternal, err)
	}

	s.notifier.Publish(notifier.KindNewsChanged)

	s.logger.Info("Create: published news item id=%d", created.ID)
	return &created, nil
}
