package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"purchasing-service/pkg/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Purchase order lifecycle metrics
	POOperationsCounter     prometheus.CounterVec
	POStateConflictsCounter prometheus.Counter
	OpenPOsGauge            prometheus.Gauge

	// Receiving metrics
	ReceiptLinesCounter prometheus.Counter
	OverReceiptsCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

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

	AuthAttemptsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_auth_attempts_total",
		Help: "Total number of authentication attempts",
	})

	AuthSuccessCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_auth_success_total",
		Help: "Total number of successful authentications",
	})

	AuthErrorsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_auth_errors_total",
		Help: "Total number of failed authentications",
	})

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	POOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_po_operations_total",
			Help: "Total number of purchase order operations by type",
		},
		[]string{"operation"},
	)

	POStateConflictsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_po_state_conflicts_total",
		Help: "Total number of purchase order operations rejected for state conflicts",
	})

	OpenPOsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prefix + "_open_purchase_orders",
		Help: "Number of purchase orders not yet closed or cancelled",
	})

	ReceiptLinesCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_receipt_lines_total",
		Help: "Total number of goods receipt lines recorded",
	})

	OverReceiptsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: prefix + "_over_receipts_total",
		Help: "Total number of line items flagged over-received",
	})
}

// RecordPOOperation increments the counter for a PO operation type
func RecordPOOperation(operation string) {
	POOperationsCounter.WithLabelValues(operation).Inc()
}

// TrackDBOperation returns a function to be deferred that records the
// duration of a database operation:
//
//	defer prometheus.TrackDBOperation("query")(time.Now())
func TrackDBOperation(operation string) func(time.Time) {
	return func(start time.Time) {
		DbOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// UpdateOpenPOs sets the open purchase order gauge
func UpdateOpenPOs(count int) {
	OpenPOsGauge.Set(float64(count))
}

// Middleware records request count and duration for every HTTP request
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method
			path := c.Path()

			HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
			HttpRequestDuration.WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler returns an HTTP handler for exposing Prometheus metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
