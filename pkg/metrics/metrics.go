package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Бизнес-метрики бронирований
	ReservationsTotal   *prometheus.CounterVec
	CancellationsTotal  *prometheus.CounterVec
	RefreshSignalsTotal *prometheus.CounterVec

	// Подписчики канала обновлений
	SubscribersConnected prometheus.Gauge

	// База данных
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBConnsOpen     prometheus.Gauge
	DBConnsInUse    prometheus.Gauge
	DBConnsIdle     prometheus.Gauge
}

// CountRefreshSignal учитывает опубликованный сигнал обновления
func (m *Metrics) CountRefreshSignal(kind string) {
	m.RefreshSignalsTotal.WithLabelValues(kind).Inc()
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ReservationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "shift_reservations_total",
			Help:        "Total number of shift reservation attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		CancellationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "shift_cancellations_total",
			Help:        "Total number of shift cancellation attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		RefreshSignalsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "refresh_signals_published_total",
			Help:        "Total number of refresh signals published by event kind",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		SubscribersConnected: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "update_subscribers_connected",
			Help:        "Number of currently connected update subscribers",
			ConstLabels: constLabels,
		}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries by operation",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		DBConnsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}),

		DBConnsInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}),

		DBConnsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),
	}
}
