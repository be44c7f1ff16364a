package notifier

import "sync"

// EventKind вид сигнала обновления. Имена совпадают с событиями,
// которые слушают клиенты.
type EventKind string

const (
	// KindBookingsChanged состояние бронирований могло измениться
	KindBookingsChanged EventKind = "bookingUpdate"

	// KindClosedPeriodsChanged список закрытых периодов могли изменить
	KindClosedPeriodsChanged EventKind = "closedDaysUpdate"

	// KindNewsChanged лента новостей могла измениться
	KindNewsChanged EventKind = "newsUpdate"
)

// subscriberBuffer размер буфера канала подписчика. Сигналы не несут
// данных, поэтому потеря сигнала при переполнении не критична:
// подписчик догонит состояние при следующем полном запросе.
const subscriberBuffer = 8

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// SignalCounter счетчик опубликованных сигналов
type SignalCounter interface {
	CountRefreshSignal(kind string)
}

// Subscriber подписчик на сигналы обновления
type Subscriber struct {
	ch chan EventKind
}

// Events канал входящих сигналов подписчика
func (s *Subscriber) Events() <-chan EventKind {
	return s.ch
}

// Hub рассылает сигналы "состояние изменилось, перечитай" всем подписчикам,
// включая инициатора изменения. Доставка best-effort: медленный подписчик
// теряет сигнал, а не блокирует публикацию.
type Hub struct {
	mu      sync.RWMutex
	subs    map[*Subscriber]struct{}
	closed  bool
	logger  Logger
	counter SignalCounter
}

// NewHub создает пустой hub. counter может быть nil.
func NewHub(logger Logger, counter SignalCounter) *Hub {
	return &Hub{
		subs:    make(map[*Subscriber]struct{}),
		logger:  logger,
		counter: counter,
	}
}

// Subscribe регистрирует нового подписчика
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{ch: make(chan EventKind, subscriberBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(sub.ch)
		return sub
	}
	h.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe снимает подписку и закрывает канал подписчика
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.ch)
}

// Publish рассылает сигнал всем текущим подписчикам.
// Отправка неблокирующая: переполненный канал пропускается.
func (h *Hub) Publish(kind EventKind) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	if h.counter != nil {
		h.counter.CountRefreshSignal(string(kind))
	}

	dropped := 0
	for sub := range h.subs {
		select {
		case sub.ch <- kind:
		default:
			dropped++
		}
	}

	if dropped > 0 && h.logger != nil {
		h.logger.Warn("notifier: dropped %q signal for %d slow subscribers", kind, dropped)
	}
	if h.logger != nil {
		h.logger.Debug("notifier: published %q to %d subscribers", kind, len(h.subs)-dropped)
	}
}

// Count возвращает число активных подписчиков
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close закрывает hub и каналы всех подписчиков
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		close(sub.ch)
		delete(h.subs, sub)
	}
}
