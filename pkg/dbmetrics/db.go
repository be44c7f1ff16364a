package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/gooffice/GoOffice-ShiftService/pkg/metrics"
)

// DBExecutor минимальный интерфейс выполнения запросов.
// Реализуется как *sql.DB, так и обёрткой *dbmetrics.DB.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB обёртка над *sql.DB, записывающая метрики выполнения запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает *sql.DB сбором метрик
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

// QueryContext выполняет запрос с множественным результатом
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

// QueryRowContext выполняет запрос с одной строкой результата
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *DB) observe(op string, start time.Time) {
	d.metrics.DBQueriesTotal.WithLabelValues(op).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// CollectPoolStats периодически снимает статистику connection pool.
// Блокируется до закрытия stopCh, запускать в отдельной горутине.
func CollectPoolStats(db *sql.DB, m *metrics.Metrics, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := db.Stats()
			m.DBConnsOpen.Set(float64(stats.OpenConnections))
			m.DBConnsInUse.Set(float64(stats.InUse))
			m.DBConnsIdle.Set(float64(stats.Idle))
		case <-stopCh:
			return
		}
	}
}
