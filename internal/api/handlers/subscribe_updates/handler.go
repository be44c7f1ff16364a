package subscribe_updates

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
	"github.com/gooffice/GoOffice-ShiftService/pkg/metrics"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

// UpdateMessage сообщение-сигнал подписчику. Данных не несет,
// клиент в ответ перечитывает нужный ресурс целиком.
type UpdateMessage struct {
	Event string `json:"event"`
}

type Handler struct {
	hub      Hub
	metrics  *metrics.Metrics
	logger   Logger
	upgrader websocket.Upgrader
}

func NewHandler(hub Hub, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		hub:     hub,
		metrics: m,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Трафик ходит через доверенный шлюз
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle GET /api/updates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /updates - Failed to upgrade connection: %v", err)
		return
	}

	sub := h.hub.Subscribe()
	if h.metrics != nil {
		h.metrics.SubscribersConnected.Inc()
	}
	h.logger.Info("GET /updates - Subscriber connected: remote=%s", conn.RemoteAddr())

	done := make(chan struct{})
	go h.readPump(conn, done)
	h.writePump(conn, sub, done)

	h.hub.Unsubscribe(sub)
	if h.metrics != nil {
		h.metrics.SubscribersConnected.Dec()
	}
	_ = conn.Close()
	h.logger.Info("GET /updates - Subscriber disconnected: remote=%s", conn.RemoteAddr())
}

// readPump вычитывает входящие фреймы ради обработки close и pong.
// Содержимое сообщений клиента игнорируется.
func (h *Handler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump пишет сигналы подписчика и периодические ping'и
func (h *Handler) writePump(conn *websocket.Conn, sub *notifier.Subscriber, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case kind, ok := <-sub.Events():
			if !ok {
				// Hub закрыт, завершаем соединение штатно
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(UpdateMessage{Event: string(kind)}); err != nil {
				h.logger.Warn("GET /updates - Failed to write signal: %v", err)
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}
