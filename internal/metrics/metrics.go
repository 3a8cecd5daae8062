package metrics

import (
	"time"

	"catalog-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Per-entity operation counters (brand, unit, packaging_type,
	// formula_product, category, product)
	EntityOperationsCounter prometheus.CounterVec

	// Guarded-delete rejections (category with children or products)
	GuardedDeleteCounter prometheus.CounterVec

	// Stock event metrics
	StockEventsCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	prefix := cfg.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	EntityOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_entity_operations_total",
			Help: "Total number of master-data and product operations",
		},
		[]string{"entity", "operation"},
	)

	GuardedDeleteCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_guarded_deletes_total",
			Help: "Total number of deletions blocked by dependent rows",
		},
		[]string{"entity", "reason"},
	)

	StockEventsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_stock_events_total",
			Help: "Total number of stock status events applied",
		},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordEntityOperation increments the counter for an entity operation
func RecordEntityOperation(entity, operation string) {
	EntityOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// RecordGuardedDelete increments the counter for a blocked deletion
func RecordGuardedDelete(entity, reason string) {
	GuardedDeleteCounter.WithLabelValues(entity, reason).Inc()
}
