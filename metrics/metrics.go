// Package metrics はPrometheusメトリクスの定義を提供します。
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP リクエスト処理時間（秒）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// データベース操作の処理時間（秒）
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"operation"},
	)

	// エラー応答の件数（validation, not_found, auth, internal）
	ErrorResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_error_responses_total",
			Help: "Total number of error responses by kind",
		},
		[]string{"kind"},
	)
)

// RecordHTTPRequestDuration は HTTP リクエスト処理時間を記録します。
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordDBQueryDuration はデータベース操作の処理時間を記録します。
func RecordDBQueryDuration(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncrementErrorResponse はエラー応答の件数を加算します。
func IncrementErrorResponse(kind string) {
	ErrorResponses.WithLabelValues(kind).Inc()
}
