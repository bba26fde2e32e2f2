package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus коллекторов сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках вызовы ничего не делают
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueries      *prometheus.CounterVec
	dbDuration     *prometheus.HistogramVec
	dbOpenConns    prometheus.Gauge
	dbInUseConns   prometheus.Gauge
	dbIdleConns    prometheus.Gauge
	dbWaitCount    prometheus.Gauge
	dbTxRetries    prometheus.Counter
	dbTxOutcomes   *prometheus.CounterVec
	reservations   *prometheus.CounterVec
	conflicts      prometheus.Counter
	availableQuery *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в реестре по умолчанию
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries.",
			ConstLabels: labels,
		}, []string{"operation", "result"}),
		dbDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections.",
			ConstLabels: labels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use.",
			ConstLabels: labels,
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections.",
			ConstLabels: labels,
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: labels,
		}),
		dbTxRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "db_tx_serialization_retries_total",
			Help:        "Transactions retried after a serialization failure.",
			ConstLabels: labels,
		}),
		dbTxOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_tx_total",
			Help:        "Finished transactions by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_written_total",
			Help:        "Reservation writes by operation and result.",
			ConstLabels: labels,
		}, []string{"operation", "result"}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_conflicts_total",
			Help:        "Reservation writes rejected because of table conflicts.",
			ConstLabels: labels,
		}),
		availableQuery: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "availability_result_size",
			Help:        "Number of items returned by availability queries.",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 2, 5, 10, 20, 40},
		}, []string{"kind"}),
	}

	reg.MustRegister(
		m.httpRequests, m.httpDuration,
		m.dbQueries, m.dbDuration,
		m.dbOpenConns, m.dbInUseConns, m.dbIdleConns, m.dbWaitCount,
		m.dbTxRetries, m.dbTxOutcomes,
		m.reservations, m.conflicts, m.availableQuery,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.dbQueries.WithLabelValues(operation, result).Inc()
	m.dbDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetPoolStats обновляет показатели пула соединений
func (m *Metrics) SetPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(open))
	m.dbInUseConns.Set(float64(inUse))
	m.dbIdleConns.Set(float64(idle))
	m.dbWaitCount.Set(float64(waitCount))
}

// IncTxRetry фиксирует повтор транзакции
func (m *Metrics) IncTxRetry() {
	if m == nil {
		return
	}
	m.dbTxRetries.Inc()
}

// IncTxOutcome фиксирует завершение транзакции (commit, rollback)
func (m *Metrics) IncTxOutcome(outcome string) {
	if m == nil {
		return
	}
	m.dbTxOutcomes.WithLabelValues(outcome).Inc()
}

// IncReservationWrite фиксирует запись бронирования (create, update) с результатом
func (m *Metrics) IncReservationWrite(operation, result string) {
	if m == nil {
		return
	}
	m.reservations.WithLabelValues(operation, result).Inc()
}

// IncConflict фиксирует отклоненную из-за конфликта запись
func (m *Metrics) IncConflict() {
	if m == nil {
		return
	}
	m.conflicts.Inc()
}

// ObserveAvailability фиксирует размер ответа (slots, tables)
func (m *Metrics) ObserveAvailability(kind string, size int) {
	if m == nil {
		return
	}
	m.availableQuery.WithLabelValues(kind).Observe(float64(size))
}
