package closeddays

import (
	"context"
	"fmt"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// AddPeriodRequest модель запроса администратора на добавление периода
type AddPeriodRequest struct {
	Start  types.DateString
	End    types.DateString
	Reason string
}

// Service сервис закрытых периодов. Чтение идет из реестра в памяти;
// запись (административная) сохраняет период, перечитывает реестр целиком
// и рассылает сигнал обновления.
type Service struct {
	repo     Repository
	registry Registry
	notifier Notifier
	logger   Logger
}

// NewService создает новый экземпляр сервиса закрытых периодов
func NewService(repo Repository, registry Registry, n Notifier, logger Logger) *Service {
	return &Service{
		repo:     repo,
		registry: registry,
		notifier: n,
		logger:   logger,
	}
}

// Load загружает периоды из персистентного слоя в реестр.
// Вызывается при старте сервиса.
func (s *Service) Load(ctx context.Context) error {
	periods, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Load: failed to load closed periods: %v", err)
		return fmt.Errorf("%w: load closed periods: %v", ErrInternal, err)
	}

	s.registry.Replace(periods)
	s.logger.Info("Load: loaded %d closed periods", len(periods))
	return nil
}

// List возвращает все закрытые периоды, упорядоченные по дате начала
func (s *Service) List(ctx context.Context) ([]domain.ClosedPeriod, error) {
	return s.registry.Periods(), nil
}

// Add добавляет закрытый период и рассылает сигнал обновления
func (s *Service) Add(ctx context.Context, req *AddPeriodRequest) (*domain.ClosedPeriod, error) {
	period := domain.ClosedPeriod{
		Start:  req.Start,
		End:    req.End,
		Reason: req.Reason,
	}

	if err := period.Validate(); err != nil {
		s.logger.Warn("Add: invalid period: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	created, err := s.repo.Insert(ctx, period)
	if err != nil {
		s.logger.Error("Add: failed to insert period: %v", err)
		return nil, fmt.Errorf("%w: insert period: %v", ErrInternal, err)
	}

	// Перечитываем реестр целиком, чтобы память не разъехалась с БД
	if err := s.Load(ctx); err != nil {
		return nil, err
	}

	s.notifier.Publish(notifier.KindClosedPeriodsChanged)

	s.logger.Info("Add: created closed period id=%d %s..%s", created.ID, created.Start, created.End)
	return &created, nil
}
