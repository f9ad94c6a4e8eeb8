package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
// Все методы Observe* безопасны для nil-получателя (метрики выключены)
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	ScheduleToggles   *prometheus.CounterVec
	ScheduleConflicts *prometheus.CounterVec
	ClickOutcomes     *prometheus.CounterVec
	CacheRequests     *prometheus.CounterVec
	Notifications     *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		ScheduleToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_toggles_total",
			Help:        "Closed-day toggles by applied action",
			ConstLabels: constLabels,
		}, []string{"action"}),

		ScheduleConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_conflicts_total",
			Help:        "Rejected schedule mutations by kind",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		ClickOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "click_outcomes_total",
			Help:        "Interpreted calendar clicks by view and outcome",
			ConstLabels: constLabels,
		}, []string{"view", "outcome"}),

		CacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_cache_requests_total",
			Help:        "Schedule snapshot cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_published_total",
			Help:        "Published notifications by status",
			ConstLabels: constLabels,
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBConnections,
		m.ScheduleToggles,
		m.ScheduleConflicts,
		m.ClickOutcomes,
		m.CacheRequests,
		m.Notifications,
	)

	return m
}

// Handler отдает метрики реестра в формате prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues("open").Set(float64(open))
	m.DBConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(idle))
}

func (m *Metrics) ObserveToggle(action string) {
	if m == nil {
		return
	}
	m.ScheduleToggles.WithLabelValues(action).Inc()
}

func (m *Metrics) ObserveConflict(kind string) {
	if m == nil {
		return
	}
	m.ScheduleConflicts.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveClick(view, outcome string) {
	if m == nil {
		return
	}
	m.ClickOutcomes.WithLabelValues(view, outcome).Inc()
}

func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveNotification(status string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(status).Inc()
}
