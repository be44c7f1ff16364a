package closedperiods

import (
	"sort"
	"sync"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	"github.com/gooffice/GoOffice-ShiftService/pkg/types"
)

// Registry реестр закрытых периодов. Дата считается закрытой, если попадает
// хотя бы в один период (границы включительно, периоды могут пересекаться).
// Реестр заполняется административным интерфейсом и перечитывается целиком;
// для сервиса бронирований он доступен только на чтение.
type Registry struct {
	mu      sync.RWMutex
	periods []domain.ClosedPeriod
}

// NewRegistry создает пустой реестр
func NewRegistry() *Registry {
	return &Registry{}
}

// Replace атомарно заменяет содержимое реестра.
// Периоды сортируются по дате начала для стабильного порядка выдачи.
func (r *Registry) Replace(periods []domain.ClosedPeriod) {
	sorted := make([]domain.ClosedPeriod, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	r.mu.Lock()
	r.periods = sorted
	r.mu.Unlock()
}

// IsClosed возвращает true, если дата попадает хотя бы в один закрытый период
func (r *Registry) IsClosed(d types.DateString) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.periods {
		if r.periods[i].Contains(d) {
			return true
		}
	}
	return false
}

// Periods возвращает копию списка периодов, упорядоченную по дате начала
func (r *Registry) Periods() []domain.ClosedPeriod {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ClosedPeriod, len(r.periods))
	copy(out, r.periods)
	return out
}
