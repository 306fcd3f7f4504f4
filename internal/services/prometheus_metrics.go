package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	notificationsIngested     *prometheus.CounterVec
	notificationsDeleted      prometheus.Counter
	ledgerNormalization       prometheus.Histogram
	ledgerTransactions        prometheus.Gauge
	exportsTotal              *prometheus.CounterVec
	rulesCreatedTotal         prometheus.Counter
	categoriesCreatedTotal    prometheus.Counter
	categoryFallbackTotal     prometheus.Counter
	authenticationEventsTotal *prometheus.CounterVec
	httpErrorsTotal           *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		notificationsIngested: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_ingested_total",
				Help: "Total number of notifications ingested by source",
			},
			[]string{"source"},
		),
		notificationsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "notifications_deleted_total",
				Help: "Total number of notifications deleted",
			},
		),
		ledgerNormalization: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_normalization_duration_milliseconds",
				Help:    "Ledger normalization duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		ledgerTransactions: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_transactions",
				Help: "Number of transactions in the last normalized ledger",
			},
		),
		exportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_exports_total",
				Help: "Total number of CSV exports",
			},
			[]string{"status"},
		),
		rulesCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rules_created_total",
				Help: "Total number of categorization rules created",
			},
		),
		categoriesCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "categories_created_total",
				Help: "Total number of categories created",
			},
		),
		categoryFallbackTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "category_fallback_total",
				Help: "Times the built-in category list was served because the store was unreachable",
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		httpErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_errors_total",
				Help: "Total number of HTTP error responses by error code",
			},
			[]string{"code"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "notification_ingested":
		m.notificationsIngested.WithLabelValues(tags["source"]).Inc()
	case "notification_deleted":
		m.notificationsDeleted.Inc()
	case "ledger_export":
		if status := tags["status"]; status != "" {
			m.exportsTotal.WithLabelValues(status).Inc()
		}
	case "rule_created":
		m.rulesCreatedTotal.Inc()
	case "category_created":
		m.categoriesCreatedTotal.Inc()
	case "category_fallback":
		m.categoryFallbackTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case "http_error":
		if code := tags["code"]; code != "" {
			m.httpErrorsTotal.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ledger_normalization":
		m.ledgerNormalization.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ledger_transactions":
		m.ledgerTransactions.Set(value)
	}
}
